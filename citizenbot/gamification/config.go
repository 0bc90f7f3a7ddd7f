package gamification

import "time"

type Config struct {
	// Streak bonuses, as percentages of the base award
	VotingStreakThreshold  int
	VotingBonusPercent     int64
	DailyVisitThreshold    int
	DailyVisitBonusPercent int64

	// Special badge predicates
	FirstCitizenLimit int64
	EarlyAdopterLimit int64
	BetaCutoff        time.Time

	// Recompute level and rank once more after badge points are added.
	// Off reproduces records written before the fix, where a badge could leave the level stale.
	RecomputeAfterBadges bool
}

func NewDefaultConfig() *Config {
	return &Config{
		VotingStreakThreshold:  7,
		VotingBonusPercent:     150, // x1.5
		DailyVisitThreshold:    30,
		DailyVisitBonusPercent: 120, // x1.2
		FirstCitizenLimit:      10,
		EarlyAdopterLimit:      100,
		BetaCutoff:             time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		RecomputeAfterBadges:   true,
	}
}
