package game

import (
	"fmt"
	"sort"
	"strings"
)

// LeaderboardEntry is one finished round.
type LeaderboardEntry struct {
	Round int
	Score int
}

// Leaderboard keeps finished rounds ordered by score, highest first. Ties
// keep the order they were recorded in.
type Leaderboard struct {
	entries []LeaderboardEntry
}

// NewLeaderboard returns an empty board.
func NewLeaderboard() *Leaderboard {
	return &Leaderboard{}
}

// Record inserts a finished round and returns its 1-based rank.
func (lb *Leaderboard) Record(round, score int) int {
	i := sort.Search(len(lb.entries), func(i int) bool {
		return lb.entries[i].Score < score
	})
	lb.entries = append(lb.entries, LeaderboardEntry{})
	copy(lb.entries[i+1:], lb.entries[i:])
	lb.entries[i] = LeaderboardEntry{Round: round, Score: score}
	return i + 1
}

// Len returns the number of recorded rounds.
func (lb *Leaderboard) Len() int { return len(lb.entries) }

// Scores returns every score, highest first.
func (lb *Leaderboard) Scores() []int {
	out := make([]int, len(lb.entries))
	for i, e := range lb.entries {
		out[i] = e.Score
	}
	return out
}

// Top returns up to n best entries. n <= 0 returns all of them.
func (lb *Leaderboard) Top(n int) []LeaderboardEntry {
	if n <= 0 || n > len(lb.entries) {
		n = len(lb.entries)
	}
	out := make([]LeaderboardEntry, n)
	copy(out, lb.entries[:n])
	return out
}

// Best returns the highest score, or 0 if nothing has been recorded.
func (lb *Leaderboard) Best() int {
	if len(lb.entries) == 0 {
		return 0
	}
	return lb.entries[0].Score
}

// Format renders the top n rows, one per line:
//
//	1. 7  (round 3)
func (lb *Leaderboard) Format(n int) string {
	var sb strings.Builder
	for i, e := range lb.Top(n) {
		fmt.Fprintf(&sb, "%d. %d  (round %d)\n", i+1, e.Score, e.Round)
	}
	return sb.String()
}
