package game

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
)

// RoundGrade is the graded result of one round.
type RoundGrade struct {
	Round int
	Grade string  // A+, A, B+, B, C+, C, D, F
	Score float64 // 0-100

	// Component scores (0-100; -1 = not enough data to grade).
	AccuracyScore float64
	VolumeScore   float64
	TouchScore    float64 // how close shots were to the sweet-spot power

	GoodTraits []string
	BadTraits  []string
}

// Grading constants.
const (
	gradeVolumeShots = 10    // shots in a round that earn a full volume score
	gradeSweetPower  = 330.0 // launch power that carries from the spawn pose to the rim
	gradeTouchRange  = 150.0 // power error that scores zero touch
)

// GradeRounds grades every finished round, best first.
func GradeRounds(reports []RoundReport) []RoundGrade {
	grades := make([]RoundGrade, 0, len(reports))
	for _, r := range reports {
		if !r.Finished {
			continue
		}
		grades = append(grades, gradeRound(r))
	}
	sort.SliceStable(grades, func(i, j int) bool {
		return grades[i].Score > grades[j].Score
	})
	return grades
}

func gradeRound(r RoundReport) RoundGrade {
	g := RoundGrade{
		Round:         r.Round,
		AccuracyScore: -1,
		VolumeScore:   clampScore(fraction(r.Shots, gradeVolumeShots) * 100),
		TouchScore:    -1,
	}
	if r.Shots > 0 {
		g.AccuracyScore = clampScore(r.Accuracy() * 100)
		miss := math.Abs(r.AvgPower() - gradeSweetPower)
		g.TouchScore = clampScore(100 * (1 - miss/gradeTouchRange))
	}

	// Accuracy dominates; an empty round grades on volume alone (zero).
	weighted, weight := g.VolumeScore*0.2, 0.2
	if g.AccuracyScore >= 0 {
		weighted += g.AccuracyScore * 0.6
		weight += 0.6
	}
	if g.TouchScore >= 0 {
		weighted += g.TouchScore * 0.2
		weight += 0.2
	}
	g.Score = clampScore(weighted / weight)
	if r.Shots == 0 {
		g.Score = 0
	}
	g.Grade = LetterGrade(g.Score)
	g.GoodTraits, g.BadTraits = gradeTraits(r)
	return g
}

func gradeTraits(r RoundReport) (good, bad []string) {
	if r.Shots == 0 {
		return nil, []string{"no_shots"}
	}
	if r.Accuracy() >= 0.6 {
		good = append(good, "sharpshooter")
	}
	if r.Shots >= gradeVolumeShots {
		good = append(good, "volume_shooter")
	}
	if r.MaxPower-r.MinPower < 20 && r.Shots >= 3 {
		good = append(good, "consistent")
	}
	if r.SpawnRejected > r.Spawns {
		bad = append(bad, "button_masher")
	}
	if r.AvgPower() > gradeSweetPower+gradeTouchRange/2 {
		bad = append(bad, "overcharged")
	}
	if r.AvgPower() < gradeSweetPower-gradeTouchRange/2 {
		bad = append(bad, "undercharged")
	}
	if r.Hits == 0 {
		bad = append(bad, "bricklayer")
	}
	return good, bad
}

// FormatGrades returns a human-readable grade table.
func FormatGrades(grades []RoundGrade) string {
	var sb strings.Builder
	sb.WriteString("\n=== Round Grades ===\n")
	for _, g := range grades {
		fmt.Fprintf(&sb, "  %-3s  round %-3d  score=%.0f\n", g.Grade, g.Round, g.Score)
		if len(g.GoodTraits) > 0 {
			fmt.Fprintf(&sb, "       Good: %s\n", strings.Join(g.GoodTraits, ", "))
		}
		if len(g.BadTraits) > 0 {
			fmt.Fprintf(&sb, "       Bad:  %s\n", strings.Join(g.BadTraits, ", "))
		}
		var scores []string
		if g.AccuracyScore >= 0 {
			scores = append(scores, fmt.Sprintf("Accuracy=%.0f", g.AccuracyScore))
		}
		scores = append(scores, fmt.Sprintf("Volume=%.0f", g.VolumeScore))
		if g.TouchScore >= 0 {
			scores = append(scores, fmt.Sprintf("Touch=%.0f", g.TouchScore))
		}
		fmt.Fprintf(&sb, "       Scores: %s\n", strings.Join(scores, "  "))
	}
	return sb.String()
}

// FormatGradesSummary returns the average grade and most common traits.
func FormatGradesSummary(grades []RoundGrade) string {
	if len(grades) == 0 {
		return "  no graded rounds\n"
	}
	sum := 0.0
	good, bad := map[string]int{}, map[string]int{}
	for _, g := range grades {
		sum += g.Score
		for _, t := range g.GoodTraits {
			good[t]++
		}
		for _, t := range g.BadTraits {
			bad[t]++
		}
	}
	avg := sum / float64(len(grades))
	var sb strings.Builder
	fmt.Fprintf(&sb, "  avg_score=%.1f (%s)  rounds=%d\n", avg, LetterGrade(avg), len(grades))
	if len(good) > 0 {
		fmt.Fprintf(&sb, "    Top good: %s\n", topTraits(good, 3))
	}
	if len(bad) > 0 {
		fmt.Fprintf(&sb, "    Top bad:  %s\n", topTraits(bad, 3))
	}
	return sb.String()
}

// fraction is num/denom, or 0 when denom is not positive.
func fraction(num, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

// clampScore limits s to the 0-100 grading scale.
func clampScore(s float64) float64 {
	return math.Max(0, math.Min(100, s))
}

// letterBands are the lowest scores that earn each letter, best first.
var letterBands = []struct {
	min    float64
	letter string
}{
	{93, "A+"}, {85, "A"}, {78, "B+"}, {70, "B"},
	{62, "C+"}, {55, "C"}, {45, "D"},
}

// LetterGrade maps a 0-100 score to a letter grade.
func LetterGrade(score float64) string {
	for _, b := range letterBands {
		if score >= b.min {
			return b.letter
		}
	}
	return "F"
}

// topTraits lists the n most frequent traits as "name(count)", most
// frequent first and alphabetical on ties.
func topTraits(counts map[string]int, n int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	if len(names) > n {
		names = names[:n]
	}
	for i, name := range names {
		names[i] = fmt.Sprintf("%s(%d)", name, counts[name])
	}
	return strings.Join(names, ", ")
}
