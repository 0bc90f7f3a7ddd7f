package migration

import (
	"math"
	"strings"
	"time"

	"github.com/worldcitizen/citizen-bot/citizenbot/database/models"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

// maxLegacyCount is the largest integer a JSON number holds exactly.
const maxLegacyCount = 1 << 53

// Numbers in the legacy store are JSON numbers; negatives and fractions are dropped
// and anything past maxLegacyCount is capped.
func toCount(v float64) int64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v >= maxLegacyCount {
		return maxLegacyCount
	}
	return int64(v)
}

func ToCitizen(doc LegacyCitizen) *models.Citizen {
	username := strings.TrimSpace(doc.Username)
	if username == "" {
		username = doc.DiscordID
	}
	tokenID := doc.TokenID
	if tokenID < 0 {
		tokenID = 0
	}
	return &models.Citizen{
		DiscordID:      doc.DiscordID,
		Username:       username,
		WalletAddress:  strings.TrimSpace(doc.WalletAddress),
		TokenID:        tokenID,
		HasCitizenship: doc.HasCitizenship,
		JoinedAt:       doc.JoinDate.UTC(),
	}
}

// ToActivity returns an all-zero row when the citizen has no activity document.
func ToActivity(discordID string, doc *LegacyActivity) *models.CitizenActivity {
	out := &models.CitizenActivity{DiscordID: discordID}
	if doc == nil {
		return out
	}
	out.VotesCast = toCount(doc.VotesCast)
	out.ProposalsCreated = toCount(doc.ProposalsCreated)
	out.PostsCount = toCount(doc.PostsCount)
	out.CommentsCount = toCount(doc.CommentsCount)
	out.HelpfulComments = toCount(doc.HelpfulComments)
	out.EventsOrganized = toCount(doc.EventsOrganized)
	out.Followers = toCount(doc.Followers)
	out.Referrals = toCount(doc.Referrals)
	return out
}

// ToUserStats carries over points, badges and streaks. Level and rank are left for the
// engine to recompute. Duplicate badge ids keep the earliest award.
func ToUserStats(doc *LegacyStats, catalog *gamification.Catalog) (gamification.UserStats, time.Time) {
	stats := gamification.NewUserStats()
	if doc == nil {
		return stats, time.Time{}
	}

	stats.TotalPoints = toCount(doc.TotalPoints)
	stats.Streaks = gamification.Streaks{
		Voting:           int(toCount(doc.Streaks.Voting)),
		DailyVisit:       int(toCount(doc.Streaks.DailyVisit)),
		ProposalCreation: int(toCount(doc.Streaks.ProposalCreation)),
	}

	seen := make(map[string]int, len(doc.Badges))
	for _, lb := range doc.Badges {
		if lb.ID == "" {
			continue
		}
		if i, ok := seen[lb.ID]; ok {
			if lb.EarnedAt.Before(stats.Badges[i].EarnedAt) {
				stats.Badges[i].EarnedAt = lb.EarnedAt.UTC()
			}
			continue
		}
		badge, ok := catalog.ByID(lb.ID)
		if !ok {
			badge = gamification.Badge{ID: lb.ID, Name: lb.ID}
		}
		seen[lb.ID] = len(stats.Badges)
		stats.Badges = append(stats.Badges, gamification.EarnedBadge{Badge: badge, EarnedAt: lb.EarnedAt.UTC()})
	}
	return stats, doc.LastVisit.UTC()
}
