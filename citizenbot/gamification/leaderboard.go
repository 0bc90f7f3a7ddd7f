package gamification

import "sort"

// Standing is one citizen's position input for the leaderboard.
type Standing struct {
	UserID      string
	Username    string
	TotalPoints int64
	Level       int
	Rank        string
	BadgeCount  int
}

type LeaderboardEntry struct {
	Standing
	Position int
	Marker   string
}

var podiumMarkers = [...]string{"🥇", "🥈", "🥉"}

// CalculateLeaderboard orders a copy of standings by points, highest first.
// Ties keep their input order. Only the top three positions get a marker.
func CalculateLeaderboard(standings []Standing) []LeaderboardEntry {
	sorted := append([]Standing(nil), standings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalPoints > sorted[j].TotalPoints
	})

	entries := make([]LeaderboardEntry, len(sorted))
	for i, s := range sorted {
		entries[i] = LeaderboardEntry{
			Standing: s,
			Position: i + 1,
		}
		if i < len(podiumMarkers) {
			entries[i].Marker = podiumMarkers[i]
		}
	}
	return entries
}

// PositionOf returns the 1-based position of userID, or 0.
func PositionOf(entries []LeaderboardEntry, userID string) int {
	for _, e := range entries {
		if e.UserID == userID {
			return e.Position
		}
	}
	return 0
}
