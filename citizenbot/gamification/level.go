package gamification

import "math"

const pointsPerLevelSquare = 100

type LevelInfo struct {
	Level           int
	NextLevelPoints int64
}

// levelStep is the cost of entering level n from level n-1.
func levelStep(n int) int64 {
	return int64(n) * int64(n) * pointsPerLevelSquare
}

// addPoints adds n to total, stopping at math.MaxInt64.
func addPoints(total, n int64) int64 {
	if n > 0 && total > math.MaxInt64-n {
		return math.MaxInt64
	}
	return total + n
}

// LevelThreshold returns the total points at which level starts: the sum of k²·100 for k in 2..level.
// Thresholds past math.MaxInt64 saturate.
func LevelThreshold(level int) int64 {
	var total int64
	for k := 2; k <= level; k++ {
		step := levelStep(k)
		if step > math.MaxInt64-total {
			return math.MaxInt64
		}
		total += step
	}
	return total
}

// CalculateLevel returns the highest level whose threshold is at most points,
// and the points still missing to reach the next one. Negative points count as zero.
// When the next threshold does not fit in an int64 it is taken as math.MaxInt64.
func CalculateLevel(points int64) LevelInfo {
	if points < 0 {
		points = 0
	}

	level := 1
	next := levelStep(2)
	for next <= points {
		level++
		step := levelStep(level + 1)
		if step > math.MaxInt64-next {
			next = math.MaxInt64
			break
		}
		next += step
	}

	return LevelInfo{
		Level:           level,
		NextLevelPoints: next - points,
	}
}

// LevelProgress is how far points are through the current level, from 0 to 100.
func LevelProgress(points int64) int {
	info := CalculateLevel(points)
	span := levelStep(info.Level + 1)
	done := span - info.NextLevelPoints
	return int(done * 100 / span)
}

type RankTier struct {
	MinLevel int
	Title    string
}

// rankTiers are ordered from the highest cutoff down.
var rankTiers = []RankTier{
	{MinLevel: 50, Title: "Legendary Citizen"},
	{MinLevel: 40, Title: "Grand Leader"},
	{MinLevel: 30, Title: "Community Leader"},
	{MinLevel: 25, Title: "Senior Citizen"},
	{MinLevel: 20, Title: "Experienced Citizen"},
	{MinLevel: 15, Title: "Active Citizen"},
	{MinLevel: 10, Title: "Rising Citizen"},
	{MinLevel: 5, Title: "New Citizen"},
}

const lowestRank = "Candidate Citizen"

func CalculateRank(level int) string {
	for _, tier := range rankTiers {
		if level >= tier.MinLevel {
			return tier.Title
		}
	}
	return lowestRank
}

// RankTiers returns every tier from lowest to highest.
func RankTiers() []RankTier {
	out := []RankTier{{MinLevel: 1, Title: lowestRank}}
	for i := len(rankTiers) - 1; i >= 0; i-- {
		out = append(out, rankTiers[i])
	}
	return out
}
