package game

import (
	"fmt"
	"strings"
)

// RoundReport aggregates one round's events from a SimLog.
type RoundReport struct {
	Round     int
	StartTick int
	EndTick   int // -1 while the round is unfinished
	Finished  bool

	Score         int
	Spawns        int
	SpawnRejected int
	Shots         int
	ShotRejected  int // charge or release rejected
	Hits          int
	Expired       int
	Purged        int

	powerSum float64
	MinPower float64
	MaxPower float64
}

// AvgPower is the mean launch power, or 0 with no shots.
func (r RoundReport) AvgPower() float64 {
	if r.Shots == 0 {
		return 0
	}
	return r.powerSum / float64(r.Shots)
}

// Accuracy is hits per shot in [0, 1], or 0 with no shots.
func (r RoundReport) Accuracy() float64 {
	if r.Shots == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Shots)
}

// BuildRoundReports walks sl and returns one report per started round.
// Events before the first round start are ignored.
func BuildRoundReports(sl *SimLog) []RoundReport {
	var out []RoundReport
	var cur *RoundReport
	for _, e := range sl.Entries() {
		if e.Category == catRound && e.Key == "start" {
			out = append(out, RoundReport{Round: int(e.NumVal), StartTick: e.Tick, EndTick: -1})
			cur = &out[len(out)-1]
			continue
		}
		if cur == nil {
			continue
		}
		switch e.Category {
		case catRound:
			if e.Key == "finish" {
				cur.Finished = true
				cur.EndTick = e.Tick
				cur.Score = int(e.NumVal)
			}
		case catBall:
			switch e.Key {
			case "spawn":
				cur.Spawns++
			case "spawn_rejected":
				cur.SpawnRejected++
			case "expire":
				cur.Expired++
			case "purge":
				cur.Purged += int(e.NumVal)
			}
		case catShot:
			switch e.Key {
			case "release":
				if cur.Shots == 0 || e.NumVal < cur.MinPower {
					cur.MinPower = e.NumVal
				}
				if e.NumVal > cur.MaxPower {
					cur.MaxPower = e.NumVal
				}
				cur.Shots++
				cur.powerSum += e.NumVal
			case "charge_rejected", "release_rejected":
				cur.ShotRejected++
			}
		case catScore:
			if e.Key == "hit" {
				cur.Hits++
				if !cur.Finished {
					cur.Score = int(e.NumVal)
				}
			}
		}
	}
	return out
}

// Format renders the report as one line.
func (r RoundReport) Format() string {
	state := "finished"
	if !r.Finished {
		state = "running"
	}
	return fmt.Sprintf("round %d (%s): score=%d shots=%d hits=%d acc=%.0f%% spawns=%d rejected=%d/%d power=%.0f..%.0f avg=%.0f expired=%d purged=%d",
		r.Round, state, r.Score, r.Shots, r.Hits, r.Accuracy()*100,
		r.Spawns, r.SpawnRejected, r.ShotRejected,
		r.MinPower, r.MaxPower, r.AvgPower(), r.Expired, r.Purged)
}

// SessionSummary totals a set of round reports.
type SessionSummary struct {
	Rounds     int
	Finished   int
	TotalScore int
	BestScore  int
	Shots      int
	Hits       int
}

// Summarise totals reports.
func Summarise(reports []RoundReport) SessionSummary {
	var s SessionSummary
	for _, r := range reports {
		s.Rounds++
		if r.Finished {
			s.Finished++
		}
		s.TotalScore += r.Score
		if r.Score > s.BestScore {
			s.BestScore = r.Score
		}
		s.Shots += r.Shots
		s.Hits += r.Hits
	}
	return s
}

// AvgScore is the mean score per round.
func (s SessionSummary) AvgScore() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.Rounds)
}

// Format renders the summary block.
func (s SessionSummary) Format() string {
	var sb strings.Builder
	sb.WriteString("=== Session ===\n")
	fmt.Fprintf(&sb, "rounds=%d finished=%d\n", s.Rounds, s.Finished)
	fmt.Fprintf(&sb, "score: total=%d best=%d avg=%.2f\n", s.TotalScore, s.BestScore, s.AvgScore())
	acc := 0.0
	if s.Shots > 0 {
		acc = float64(s.Hits) / float64(s.Shots) * 100
	}
	fmt.Fprintf(&sb, "shots=%d hits=%d accuracy=%.1f%%\n", s.Shots, s.Hits, acc)
	return sb.String()
}

// FormatRoundReports renders one line per report.
func FormatRoundReports(reports []RoundReport) string {
	var sb strings.Builder
	for _, r := range reports {
		sb.WriteString(r.Format())
		sb.WriteByte('\n')
	}
	return sb.String()
}
