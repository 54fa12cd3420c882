package game

import (
	"math"
	"strings"
	"testing"
)

func TestGradeRounds_Weighted(t *testing.T) {
	grades := GradeRounds(BuildRoundReports(sampleSessionLog()))
	if len(grades) != 1 {
		t.Fatalf("expected only the finished round graded, got %d", len(grades))
	}
	g := grades[0]
	// volume 20, accuracy 50, touch 100
	if math.Abs(g.Score-54) > 1e-6 {
		t.Fatalf("expected score 54, got %.4f", g.Score)
	}
	if g.Grade != "D" {
		t.Fatalf("expected D, got %s", g.Grade)
	}
	if len(g.GoodTraits) != 0 || len(g.BadTraits) != 0 {
		t.Fatalf("expected no traits, got %v / %v", g.GoodTraits, g.BadTraits)
	}
}

func TestGradeRounds_TraitsAndOrder(t *testing.T) {
	sharp := RoundReport{Round: 1, Finished: true, Shots: 10, Hits: 8, MinPower: 325, MaxPower: 335, powerSum: 3300, Spawns: 10}
	empty := RoundReport{Round: 2, Finished: true}
	mash := RoundReport{Round: 3, Finished: true, Shots: 2, MinPower: 480, MaxPower: 500, powerSum: 980, Spawns: 2, SpawnRejected: 5}

	grades := GradeRounds([]RoundReport{empty, mash, sharp})
	if grades[0].Round != 1 {
		t.Fatalf("expected best round first, got round %d", grades[0].Round)
	}
	if grades[0].Grade != "A" {
		t.Fatalf("expected A for 8/10 at sweet power, got %s (%.1f)", grades[0].Grade, grades[0].Score)
	}
	want := []string{"sharpshooter", "volume_shooter", "consistent"}
	if strings.Join(grades[0].GoodTraits, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, grades[0].GoodTraits)
	}

	last := grades[len(grades)-1]
	if last.Round != 2 || last.Score != 0 || last.Grade != "F" {
		t.Fatalf("expected empty round last with F, got %+v", last)
	}
	if len(last.BadTraits) != 1 || last.BadTraits[0] != "no_shots" {
		t.Fatalf("expected no_shots, got %v", last.BadTraits)
	}

	m := grades[1]
	for _, trait := range []string{"button_masher", "overcharged", "bricklayer"} {
		if !strings.Contains(strings.Join(m.BadTraits, ","), trait) {
			t.Fatalf("expected %s in %v", trait, m.BadTraits)
		}
	}
}

func TestLetterGrade(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "A+"}, {93, "A+"}, {85, "A"}, {80, "B+"}, {70, "B"},
		{62, "C+"}, {55, "C"}, {45, "D"}, {44.9, "F"}, {0, "F"},
	}
	for _, c := range cases {
		if got := LetterGrade(c.score); got != c.want {
			t.Fatalf("score %.1f: expected %s, got %s", c.score, c.want, got)
		}
	}
}

func TestFormatGradesSummary(t *testing.T) {
	if got := FormatGradesSummary(nil); got != "  no graded rounds\n" {
		t.Fatalf("unexpected empty summary %q", got)
	}
	grades := []RoundGrade{
		{Round: 1, Score: 90, Grade: "A", BadTraits: []string{"overcharged", "bricklayer"}},
		{Round: 2, Score: 50, Grade: "D", BadTraits: []string{"bricklayer", "button_masher"}},
	}
	out := FormatGradesSummary(grades)
	if !strings.Contains(out, "avg_score=70.0 (B)") {
		t.Fatalf("expected average B, got:\n%s", out)
	}
	if !strings.Contains(out, "bricklayer(2), button_masher(1), overcharged(1)") {
		t.Fatalf("expected traits by count then name, got:\n%s", out)
	}
	table := FormatGrades(grades)
	if !strings.Contains(table, "round 1") || !strings.Contains(table, "Bad:") {
		t.Fatalf("unexpected grade table:\n%s", table)
	}
}
