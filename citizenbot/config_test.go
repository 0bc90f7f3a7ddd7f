package citizenbot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcitizen/citizen-bot/citizenbot/config"
)

const minimalConfig = `
[bot]
token = "t"

[db]
host = "localhost"
user = "postgres"
database = "citizens"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, config.DefaultPostCooldown, cfg.Gamification.PostCooldown.Duration)
	assert.Equal(t, config.DefaultSnapshotSchedule, cfg.Snapshot.Schedule)

	engine, err := cfg.Gamification.EngineConfig()
	require.NoError(t, err)
	assert.True(t, engine.RecomputeAfterBadges)
	assert.Equal(t, 7, engine.VotingStreakThreshold)
	assert.Equal(t, int64(150), engine.VotingBonusPercent)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalConfig+`
[gamification]
recompute_after_badges = false
voting_streak_threshold = 3
post_cooldown = "5m"
beta_cutoff = "2024-06-30"
`))
	require.NoError(t, err)

	engine, err := cfg.Gamification.EngineConfig()
	require.NoError(t, err)
	assert.False(t, engine.RecomputeAfterBadges)
	assert.Equal(t, 3, engine.VotingStreakThreshold)
	assert.Equal(t, 5*time.Minute, cfg.Gamification.PostCooldown.Duration)
	assert.Equal(t, time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC), engine.BetaCutoff)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Missing token", body: `
[db]
host = "localhost"
user = "postgres"
database = "citizens"
`},
		{name: "Bonus below 100", body: minimalConfig + `
[gamification]
voting_bonus_percent = 50
`},
		{name: "Early adopters below first citizens", body: minimalConfig + `
[gamification]
first_citizen_limit = 50
early_adopter_limit = 10
`},
		{name: "Bad cutoff", body: minimalConfig + `
[gamification]
beta_cutoff = "April"
`},
		{name: "Snapshot without spaces", body: minimalConfig + `
[snapshot]
enabled = true
`},
		{name: "Bad schedule", body: minimalConfig + `
[spaces]
key = "k"
secret = "s"
region = "nyc3"
bucket = "b"

[snapshot]
enabled = true
schedule = "whenever"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
