package game

import (
	"math"
	"strings"
	"testing"
	"time"
)

func sampleSessionLog() *SimLog {
	sl := NewSimLog(false)
	sl.Add(0, "--", catBall, "spawn_rejected", "round idle", 0)
	sl.Add(1, "--", catRound, "start", "round 1", 1)
	sl.Add(2, "B1", catBall, "spawn", "queue=1", 1)
	sl.Add(3, "--", catBall, "spawn_rejected", "cooldown 100ms left", 100)
	sl.Add(4, "B1", catShot, "release", "power=300 held=333ms", 300)
	sl.Add(5, "B2", catShot, "release", "power=360 held=533ms", 360)
	sl.Add(6, "B1", catScore, "hit", "score=1", 1)
	sl.Add(7, "--", catShot, "charge_rejected", "queue empty", 0)
	sl.Add(8, "B2", catBall, "expire", "lifetime", 0)
	sl.Add(9, "--", catRound, "finish", "score=1 rank=1", 1)
	sl.Add(10, "--", catRound, "start", "round 2", 2)
	sl.Add(11, "B3", catShot, "release", "power=200 held=0ms", 200)
	return sl
}

func TestBuildRoundReports(t *testing.T) {
	reports := BuildRoundReports(sampleSessionLog())
	if len(reports) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(reports))
	}

	r := reports[0]
	if !r.Finished || r.StartTick != 1 || r.EndTick != 9 {
		t.Fatalf("unexpected round 1 bounds: %+v", r)
	}
	if r.Score != 1 || r.Shots != 2 || r.Hits != 1 {
		t.Fatalf("expected score 1 from 2 shots, got score=%d shots=%d hits=%d", r.Score, r.Shots, r.Hits)
	}
	if r.Spawns != 1 || r.SpawnRejected != 1 || r.ShotRejected != 1 || r.Expired != 1 {
		t.Fatalf("unexpected counters: %+v", r)
	}
	if math.Abs(r.AvgPower()-330) > 1e-9 || r.MinPower != 300 || r.MaxPower != 360 {
		t.Fatalf("unexpected power stats: avg=%.1f min=%.0f max=%.0f", r.AvgPower(), r.MinPower, r.MaxPower)
	}
	if r.Accuracy() != 0.5 {
		t.Fatalf("expected accuracy 0.5, got %.2f", r.Accuracy())
	}

	open := reports[1]
	if open.Finished || open.EndTick != -1 || open.Round != 2 {
		t.Fatalf("expected unfinished round 2, got %+v", open)
	}
	if !strings.Contains(open.Format(), "(running)") {
		t.Fatalf("expected running marker, got %q", open.Format())
	}
}

func TestSummarise(t *testing.T) {
	s := Summarise(BuildRoundReports(sampleSessionLog()))
	if s.Rounds != 2 || s.Finished != 1 {
		t.Fatalf("expected 2 rounds, 1 finished, got %+v", s)
	}
	if s.TotalScore != 1 || s.BestScore != 1 || s.Shots != 3 || s.Hits != 1 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.AvgScore() != 0.5 {
		t.Fatalf("expected avg 0.5, got %.2f", s.AvgScore())
	}
	if !strings.Contains(s.Format(), "accuracy=33.3%") {
		t.Fatalf("unexpected summary:\n%s", s.Format())
	}
	if (SessionSummary{}).AvgScore() != 0 {
		t.Fatal("expected zero average for an empty session")
	}
}

func TestBuildRoundReports_FromHarness(t *testing.T) {
	ts := NewTestSim(WithRoundLength(3*time.Second), WithStartedRound(), WithQueuedBalls(2))
	ts.Hold(0)
	ts.RunFor(300 * time.Millisecond)
	ts.Hold(0)
	ts.RunUntil(func(ts *TestSim) bool { return ts.Sim.State.Round.Phase == PhaseFinished }, 500)

	reports := BuildRoundReports(ts.SimLog)
	if len(reports) != 1 {
		t.Fatalf("expected 1 round, got %d", len(reports))
	}
	r := reports[0]
	if !r.Finished || r.Spawns != 2 || r.Shots != 2 {
		t.Fatalf("unexpected report: %s", r.Format())
	}
	if r.MinPower != 200 || r.MaxPower != 200 {
		t.Fatalf("expected taps at power 200, got %.0f..%.0f", r.MinPower, r.MaxPower)
	}
	if r.Score != 0 || r.Purged != 2 {
		t.Fatalf("expected no score and 2 purged, got score=%d purged=%d", r.Score, r.Purged)
	}
}
