package gamification

import (
	"slices"
	"time"
)

type Category string

const (
	CategoryCitizenship Category = "citizenship"
	CategoryDAO         Category = "dao"
	CategoryCommunity   Category = "community"
	CategorySocial      Category = "social"
	CategorySpecial     Category = "special"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryCitizenship,
	CategoryDAO,
	CategoryCommunity,
	CategorySocial,
	CategorySpecial,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCitizenship, CategoryDAO, CategoryCommunity, CategorySocial, CategorySpecial:
		return true
	}
	return false
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Badge is a catalog entry. Points are granted once, the first time it is earned.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    Category
	Rarity      Rarity
	Requirement Requirement
	Points      int64
}

type EarnedBadge struct {
	Badge
	EarnedAt time.Time
}

type AchievementReward struct {
	Points  int64  `json:"points"`
	BadgeID string `json:"badge_id,omitempty"`
}

// Achievement is carried on the stats record but not driven by the engine.
type Achievement struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	Progress    int64             `json:"progress"`
	MaxProgress int64             `json:"max_progress"`
	Completed   bool              `json:"completed"`
	Reward      AchievementReward `json:"reward"`
}

type Streaks struct {
	Voting           int `json:"voting"`
	DailyVisit       int `json:"daily_visit"`
	ProposalCreation int `json:"proposal_creation"`
}

// UserStats is the per-citizen gamification record.
type UserStats struct {
	TotalPoints     int64
	Level           int
	NextLevelPoints int64
	Rank            string
	Badges          []EarnedBadge
	Achievements    []Achievement
	Streaks         Streaks
}

// NewUserStats returns the record a citizen starts with on registration.
func NewUserStats() UserStats {
	info := CalculateLevel(0)
	return UserStats{
		Level:           info.Level,
		NextLevelPoints: info.NextLevelPoints,
		Rank:            CalculateRank(info.Level),
		Badges:          []EarnedBadge{},
		Achievements:    []Achievement{},
	}
}

// Clone returns a copy that shares no slices with s.
func (s UserStats) Clone() UserStats {
	out := s
	out.Badges = slices.Clone(s.Badges)
	out.Achievements = slices.Clone(s.Achievements)
	return out
}

func (s UserStats) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Activity is the externally tracked snapshot badge eligibility is evaluated against.
// A zero TokenID means no citizenship token has been issued.
type Activity struct {
	VotesCast        int64
	ProposalsCreated int64
	PostsCount       int64
	HelpfulComments  int64
	EventsOrganized  int64
	Followers        int64
	Referrals        int64
	JoinDate         time.Time
	HasCitizenship   bool
	TokenID          int64
}
