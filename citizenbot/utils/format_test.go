package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-2500, "-2,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		filled  int
	}{
		{name: "Empty", percent: 0, filled: 0},
		{name: "Half", percent: 50, filled: config.ProgressBarLength / 2},
		{name: "Full", percent: 100, filled: config.ProgressBarLength},
		{name: "Clamped high", percent: 140, filled: config.ProgressBarLength},
		{name: "Clamped low", percent: -5, filled: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressBar(tt.percent)
			if n := strings.Count(got, config.ProgressFilled); n != tt.filled {
				t.Errorf("ProgressBar(%d) filled = %d, want %d", tt.percent, n, tt.filled)
			}
			if n := strings.Count(got, config.ProgressFilled) + strings.Count(got, config.ProgressEmpty); n != config.ProgressBarLength {
				t.Errorf("ProgressBar(%d) length = %d, want %d", tt.percent, n, config.ProgressBarLength)
			}
		})
	}
}

func TestFormatCooldown(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{42 * time.Second, "42s"},
		{90 * time.Second, "1m 30s"},
		{65 * time.Minute, "1h 5m"},
	}
	for _, tt := range tests {
		if got := FormatCooldown(tt.in); got != tt.want {
			t.Errorf("FormatCooldown(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{150, "1.5"},
		{120, "1.2"},
		{200, "2"},
		{105, "1.05"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.in); got != tt.want {
			t.Errorf("FormatPercent(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatOutcome(t *testing.T) {
	badge, _ := gamification.DefaultCatalog().ByID("active-voter")
	stats := gamification.NewUserStats()
	stats.TotalPoints = 1315
	stats.Level = 3
	stats.Rank = gamification.CalculateRank(3)

	got := FormatOutcome(gamification.Outcome{
		Stats:        stats,
		Action:       gamification.ActionVote,
		ActionPoints: 15,
		Bonuses:      []gamification.Bonus{{Name: "Voting streak", Percent: 150}},
		NewBadges:    []gamification.EarnedBadge{{Badge: badge}},
		BadgePoints:  200,
		LeveledUp:    true,
	})

	for _, want := range []string{"**+15**", "Voting streak ×1.5", "Active Voter", "(+200)", "level **3**", "**1,315**"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatOutcome() = %q, missing %q", got, want)
		}
	}

	if got := FormatOutcome(gamification.Outcome{Stats: gamification.NewUserStats()}); !strings.HasPrefix(got, "No new points") {
		t.Errorf("FormatOutcome(empty) = %q", got)
	}
}
