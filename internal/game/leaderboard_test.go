package game

import (
	"strings"
	"testing"
)

func TestLeaderboard_SortedDescending(t *testing.T) {
	lb := NewLeaderboard()
	for i, s := range []int{3, 7, 5, 0} {
		lb.Record(i+1, s)
	}
	want := []int{7, 5, 3, 0}
	got := lb.Scores()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if lb.Best() != 7 {
		t.Fatalf("expected best 7, got %d", lb.Best())
	}
}

func TestLeaderboard_TiesKeepRecordOrder(t *testing.T) {
	lb := NewLeaderboard()
	lb.Record(1, 4)
	lb.Record(2, 9)
	rank := lb.Record(3, 4)
	if rank != 3 {
		t.Fatalf("expected tie to rank after the earlier round (3), got %d", rank)
	}
	top := lb.Top(0)
	if top[1].Round != 1 || top[2].Round != 3 {
		t.Fatalf("expected round 1 before round 3, got %+v", top)
	}
}

func TestLeaderboard_TopAndFormat(t *testing.T) {
	lb := NewLeaderboard()
	lb.Record(1, 2)
	lb.Record(2, 6)
	lb.Record(3, 4)

	if n := len(lb.Top(2)); n != 2 {
		t.Fatalf("expected 2 rows, got %d", n)
	}
	if n := len(lb.Top(10)); n != 3 {
		t.Fatalf("expected all 3 rows, got %d", n)
	}
	out := lb.Format(2)
	if !strings.HasPrefix(out, "1. 6  (round 2)\n2. 4  (round 3)\n") {
		t.Fatalf("unexpected format:\n%s", out)
	}
	if strings.Contains(out, "round 1") {
		t.Fatalf("expected round 1 cut from top 2:\n%s", out)
	}
}

func TestLeaderboard_Empty(t *testing.T) {
	lb := NewLeaderboard()
	if lb.Len() != 0 || lb.Best() != 0 || lb.Format(5) != "" {
		t.Fatal("expected empty board")
	}
}
