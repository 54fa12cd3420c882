package game

import (
	"testing"
	"time"
)

func TestSpawner_RejectsWhenNotRunning(t *testing.T) {
	ts := NewTestSim()
	tb, res := ts.Sim.SpawnBall()
	if tb != nil || res != SpawnRejectedPhase {
		t.Fatalf("expected phase rejection, got %v / %s", tb, res)
	}
	if !ts.SimLog.HasEntry(catBall, "spawn_rejected", "round idle") {
		t.Fatalf("expected spawn_rejected entry, log:\n%s", ts.SimLog.Format())
	}
}

func TestSpawner_Cooldown(t *testing.T) {
	ts := NewTestSim(WithStartedRound())

	first, res := ts.Sim.SpawnBall()
	if first == nil || res != SpawnOK {
		t.Fatalf("expected first spawn ok, got %s", res)
	}
	if _, res := ts.Sim.SpawnBall(); res != SpawnRejectedCooldown {
		t.Fatalf("expected immediate respawn throttled, got %s", res)
	}

	ts.RunFor(280 * time.Millisecond)
	if _, res := ts.Sim.SpawnBall(); res != SpawnRejectedCooldown {
		t.Fatalf("expected spawn at 280ms throttled, got %s", res)
	}

	ts.RunFor(20 * time.Millisecond)
	second, res := ts.Sim.SpawnBall()
	if second == nil || res != SpawnOK {
		t.Fatalf("expected spawn at 300ms ok, got %s", res)
	}
	if ts.Sim.State.Queue.Len() != 2 {
		t.Fatalf("expected 2 queued balls, got %d", ts.Sim.State.Queue.Len())
	}
	if n := ts.SimLog.CountCategory(catBall, "spawn_rejected"); n != 2 {
		t.Fatalf("expected 2 rejected spawns, got %d", n)
	}
}

func TestSpawner_QueuedBallIsHeld(t *testing.T) {
	ts := NewTestSim(WithStartedRound())
	tb, _ := ts.Sim.SpawnBall()

	ts.RunFor(time.Second)

	if !tb.Body.Sleeping() {
		t.Fatal("expected queued ball asleep")
	}
	if tb.Body.Position != spawnPosition {
		t.Fatalf("expected queued ball held at %v, got %v", spawnPosition, tb.Body.Position)
	}
	if group, mask := tb.Body.CollisionFilter(); group != 0 || mask != 0 {
		t.Fatalf("expected cleared filter, got group=%d mask=%d", group, mask)
	}
	if tb.Launched() {
		t.Fatal("expected queued ball not launched")
	}
	if tb.Proxy.Position() != spawnPosition {
		t.Fatalf("expected proxy at spawn pose, got %v", tb.Proxy.Position())
	}
}

func TestSpawner_StartRoundClearsCooldown(t *testing.T) {
	ts := NewTestSim(WithRoundLength(time.Second), WithStartedRound())
	ts.RunFor(980 * time.Millisecond)
	if _, res := ts.Sim.SpawnBall(); res != SpawnOK {
		t.Fatalf("expected spawn ok, got %s", res)
	}
	ts.RunFor(20 * time.Millisecond)
	if ts.Sim.State.Round.Phase != PhaseFinished {
		t.Fatalf("expected finished round, got %s", ts.Sim.State.Round.Phase)
	}
	if !ts.Sim.StartRound() {
		t.Fatal("expected restart from finished")
	}
	if _, res := ts.Sim.SpawnBall(); res != SpawnOK {
		t.Fatalf("expected spawn right after restart, got %s", res)
	}
}
