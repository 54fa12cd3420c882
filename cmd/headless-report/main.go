package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Garsondee/Hoop-Sense/internal/config"
	"github.com/Garsondee/Hoop-Sense/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	firstShotTick int
	firstHitTick  int
	finishTick    int

	report game.RoundReport
	grades []game.RoundGrade
}

// shooter is the scripted player: spawn, hold, release, wait, repeat.
type shooter struct {
	holdBase time.Duration
	holdStep time.Duration
	interval time.Duration
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var sh shooter

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	flag.IntVar(&runs, "runs", 5, "number of headless rounds")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.DurationVar(&cfg.RoundLength, "round", cfg.RoundLength, "round length")
	flag.DurationVar(&sh.holdBase, "hold-base", 420*time.Millisecond, "centre hold time of the scripted shooter")
	flag.DurationVar(&sh.holdStep, "hold-step", 60*time.Millisecond, "hold variation between consecutive shots")
	flag.DurationVar(&sh.interval, "interval", 700*time.Millisecond, "pause between shots")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if sh.interval < cfg.SpawnCooldown {
		fmt.Printf("error: -interval must be >= spawn cooldown (%s)\n", cfg.SpawnCooldown)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Shooting Report ===\n")
	fmt.Printf("runs=%d round=%s seed_base=%d seed_step=%d hold=%s±%s interval=%s\n\n",
		runs, cfg.RoundLength, seedBase, seedStep, sh.holdBase, sh.holdStep, sh.interval)

	tuning := game.TuningFromConfig(cfg)
	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runRound(i+1, seed, tuning, sh)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runRound(runIndex int, seed int64, t game.Tuning, sh shooter) runStats {
	t.Seed = seed
	ts := game.NewTestSim(game.WithTuning(t), game.WithStartedRound())

	limit := int(t.RoundLength/ts.FrameStep) + 1
	for shot := 0; ts.Sim.State.Round.Running() && ts.CurrentTick() < limit; shot++ {
		ts.Sim.SpawnBall()
		before := ts.CurrentTick()
		ts.Hold(holdForShot(sh.holdBase, sh.holdStep, seed, shot))
		ts.RunFor(sh.interval)
		if ts.CurrentTick() == before {
			ts.RunFrames(1)
		}
	}
	ts.RunUntil(func(ts *game.TestSim) bool { return !ts.Sim.State.Round.Running() }, limit)

	entries := ts.SimLog.Entries()
	reports := game.BuildRoundReports(ts.SimLog)
	rs := runStats{
		runIndex:      runIndex,
		seed:          seed,
		firstShotTick: firstTick(entries, "shot", "release", ""),
		firstHitTick:  firstTick(entries, "score", "hit", ""),
		finishTick:    firstTick(entries, "round", "finish", ""),
		grades:        game.GradeRounds(reports),
	}
	if len(reports) > 0 {
		rs.report = reports[0]
	}
	return rs
}

// holdForShot cycles the hold time through base-step, base and base+step.
// The seed shifts where in the cycle a run starts.
func holdForShot(base, step time.Duration, seed int64, shot int) time.Duration {
	phase := (int64(shot) + seed) % 3
	if phase < 0 {
		phase += 3
	}
	h := base + time.Duration(phase-1)*step
	if h < 0 {
		return 0
	}
	return h
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_shot=%d first_hit=%d finish=%d\n",
		rs.firstShotTick, rs.firstHitTick, rs.finishTick)
	fmt.Println(rs.report.Format())
	fmt.Print(game.FormatGrades(rs.grades))
	fmt.Println()
}

func printAggregate(all []runStats) {
	reports := make([]game.RoundReport, 0, len(all))
	var grades []game.RoundGrade
	hitTicks := make([]int, 0, len(all))
	totalRejected := 0
	for _, rs := range all {
		reports = append(reports, rs.report)
		grades = append(grades, rs.grades...)
		if rs.firstHitTick >= 0 {
			hitTicks = append(hitTicks, rs.firstHitTick)
		}
		totalRejected += rs.report.SpawnRejected + rs.report.ShotRejected
	}

	fmt.Println("=== Aggregate ===")
	fmt.Print(game.Summarise(reports).Format())
	fmt.Printf("avg_rejected_per_run=%.1f first_hit_avg_tick=%s scoring_runs=%d/%d\n",
		avg(totalRejected, len(all)), avgTickString(hitTicks), len(hitTicks), len(all))
	fmt.Println("\n--- Grade Summary (across all runs) ---")
	fmt.Print(game.FormatGradesSummary(grades))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
