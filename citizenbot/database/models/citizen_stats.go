package models

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

type CitizenStats struct {
	bun.BaseModel `bun:"table:citizen_stats,alias:cs"`

	ID        int64  `bun:"id,pk,autoincrement"`
	DiscordID string `bun:"discord_id,notnull,unique"`
	Username  string `bun:"username,notnull"`

	TotalPoints     int64  `bun:"total_points,notnull,default:0"`
	Level           int    `bun:"level,notnull,default:1"`
	NextLevelPoints int64  `bun:"next_level_points,notnull,default:0"`
	Rank            string `bun:"rank,notnull"`

	// JSONB
	Badges       []BadgeRecord              `bun:"badges,type:jsonb"`
	Achievements []gamification.Achievement `bun:"achievements,type:jsonb"`
	Streaks      gamification.Streaks       `bun:"streaks,type:jsonb"`

	LastVisitAt time.Time `bun:"last_visit_at,nullzero"`
	Version     int64     `bun:"version,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// BadgeRecord is how an earned badge is stored. Badge details come from the catalog on load.
type BadgeRecord struct {
	ID       string    `json:"id"`
	EarnedAt time.Time `json:"earned_at"`
}

// NewCitizenStats is the row created on registration.
func NewCitizenStats(discordID, username string) *CitizenStats {
	s := &CitizenStats{
		DiscordID: discordID,
		Username:  username,
	}
	s.ApplyDomain(gamification.NewUserStats())
	return s
}

// ToDomain rebuilds the engine record. Badges missing from catalog keep their id as name.
func (s *CitizenStats) ToDomain(catalog *gamification.Catalog) gamification.UserStats {
	badges := make([]gamification.EarnedBadge, 0, len(s.Badges))
	for _, rec := range s.Badges {
		badge, ok := catalog.ByID(rec.ID)
		if !ok {
			badge = gamification.Badge{ID: rec.ID, Name: rec.ID}
		}
		badges = append(badges, gamification.EarnedBadge{Badge: badge, EarnedAt: rec.EarnedAt})
	}

	achievements := s.Achievements
	if achievements == nil {
		achievements = []gamification.Achievement{}
	}

	return gamification.UserStats{
		TotalPoints:     s.TotalPoints,
		Level:           s.Level,
		NextLevelPoints: s.NextLevelPoints,
		Rank:            s.Rank,
		Badges:          badges,
		Achievements:    append([]gamification.Achievement(nil), achievements...),
		Streaks:         s.Streaks,
	}
}

// ApplyDomain copies an engine record onto the row.
func (s *CitizenStats) ApplyDomain(stats gamification.UserStats) {
	s.TotalPoints = stats.TotalPoints
	s.Level = stats.Level
	s.NextLevelPoints = stats.NextLevelPoints
	s.Rank = stats.Rank
	s.Streaks = stats.Streaks
	s.Achievements = append([]gamification.Achievement{}, stats.Achievements...)

	s.Badges = make([]BadgeRecord, 0, len(stats.Badges))
	for _, b := range stats.Badges {
		s.Badges = append(s.Badges, BadgeRecord{ID: b.ID, EarnedAt: b.EarnedAt})
	}
}

func (s *CitizenStats) Standing() gamification.Standing {
	return gamification.Standing{
		UserID:      s.DiscordID,
		Username:    s.Username,
		TotalPoints: s.TotalPoints,
		Level:       s.Level,
		Rank:        s.Rank,
		BadgeCount:  len(s.Badges),
	}
}
