package citizenbot

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"

	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/database"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

const betaCutoffLayout = "2006-01-02"

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyDefaults()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log          LogConfig          `toml:"log"`
	Bot          BotConfig          `toml:"bot"`
	DB           database.DBConfig  `toml:"db"`
	Spaces       SpacesConfig       `toml:"spaces"`
	Gamification GamificationConfig `toml:"gamification"`
	Snapshot     SnapshotConfig     `toml:"snapshot"`
}

type BotConfig struct {
	DevGuilds    []snowflake.ID `toml:"dev_guilds"`
	Token        string         `toml:"token" validate:"required"`
	FeedChannels []snowflake.ID `toml:"feed_channels"`
	AdminIDs     []snowflake.ID `toml:"admin_ids"`
	Activity     string         `toml:"activity"`
}

func (c BotConfig) IsAdmin(id snowflake.ID) bool {
	return slices.Contains(c.AdminIDs, id)
}

func (c BotConfig) IsFeedChannel(id snowflake.ID) bool {
	return slices.Contains(c.FeedChannels, id)
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type SpacesConfig struct {
	Key    string `toml:"key"`
	Secret string `toml:"secret"`
	Region string `toml:"region"`
	Bucket string `toml:"bucket"`
}

func (c SpacesConfig) Configured() bool {
	return c.Key != "" && c.Secret != "" && c.Region != "" && c.Bucket != ""
}

type SnapshotConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"`
	Prefix   string `toml:"prefix"`
	Size     int    `toml:"size" validate:"gte=1,lte=1000"`
}

// Duration reads "90s" style strings from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type GamificationConfig struct {
	RecomputeAfterBadges   *bool    `toml:"recompute_after_badges"`
	VotingStreakThreshold  int      `toml:"voting_streak_threshold" validate:"gte=1"`
	VotingBonusPercent     int64    `toml:"voting_bonus_percent" validate:"gte=100"`
	DailyVisitThreshold    int      `toml:"daily_visit_threshold" validate:"gte=1"`
	DailyVisitBonusPercent int64    `toml:"daily_visit_bonus_percent" validate:"gte=100"`
	FirstCitizenLimit      int64    `toml:"first_citizen_limit" validate:"gte=1"`
	EarlyAdopterLimit      int64    `toml:"early_adopter_limit" validate:"gtefield=FirstCitizenLimit"`
	BetaCutoff             string   `toml:"beta_cutoff"`
	PostCooldown           Duration `toml:"post_cooldown"`
	StatsCacheSize         int      `toml:"stats_cache_size" validate:"gte=1"`
	LeaderboardTTL         Duration `toml:"leaderboard_ttl"`
}

// EngineConfig converts the TOML section into scoring rules.
func (c GamificationConfig) EngineConfig() (*gamification.Config, error) {
	cfg := gamification.NewDefaultConfig()
	cfg.VotingStreakThreshold = c.VotingStreakThreshold
	cfg.VotingBonusPercent = c.VotingBonusPercent
	cfg.DailyVisitThreshold = c.DailyVisitThreshold
	cfg.DailyVisitBonusPercent = c.DailyVisitBonusPercent
	cfg.FirstCitizenLimit = c.FirstCitizenLimit
	cfg.EarlyAdopterLimit = c.EarlyAdopterLimit
	if c.RecomputeAfterBadges != nil {
		cfg.RecomputeAfterBadges = *c.RecomputeAfterBadges
	}

	if c.BetaCutoff != "" {
		cutoff, err := time.Parse(betaCutoffLayout, c.BetaCutoff)
		if err != nil {
			return nil, fmt.Errorf("invalid beta_cutoff %q: %w", c.BetaCutoff, err)
		}
		cfg.BetaCutoff = cutoff
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := gamification.NewDefaultConfig()
	g := &c.Gamification
	if g.VotingStreakThreshold == 0 {
		g.VotingStreakThreshold = def.VotingStreakThreshold
	}
	if g.VotingBonusPercent == 0 {
		g.VotingBonusPercent = def.VotingBonusPercent
	}
	if g.DailyVisitThreshold == 0 {
		g.DailyVisitThreshold = def.DailyVisitThreshold
	}
	if g.DailyVisitBonusPercent == 0 {
		g.DailyVisitBonusPercent = def.DailyVisitBonusPercent
	}
	if g.FirstCitizenLimit == 0 {
		g.FirstCitizenLimit = def.FirstCitizenLimit
	}
	if g.EarlyAdopterLimit == 0 {
		g.EarlyAdopterLimit = def.EarlyAdopterLimit
	}
	if g.PostCooldown.Duration == 0 {
		g.PostCooldown.Duration = config.DefaultPostCooldown
	}
	if g.StatsCacheSize == 0 {
		g.StatsCacheSize = config.DefaultStatsCacheSize
	}
	if g.LeaderboardTTL.Duration == 0 {
		g.LeaderboardTTL.Duration = config.DefaultLeaderboardTTL
	}

	if c.Snapshot.Schedule == "" {
		c.Snapshot.Schedule = config.DefaultSnapshotSchedule
	}
	if c.Snapshot.Prefix == "" {
		c.Snapshot.Prefix = config.DefaultSnapshotPrefix
	}
	if c.Snapshot.Size == 0 {
		c.Snapshot.Size = config.MaxLeaderboardSize
	}

	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.Bot.Activity == "" {
		c.Bot.Activity = "/profile"
	}
}

// Validate checks struct tags plus the rules tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := c.Gamification.EngineConfig(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Snapshot.Enabled {
		if !c.Spaces.Configured() {
			return fmt.Errorf("invalid config: snapshot export needs the [spaces] section")
		}
		if _, err := cron.ParseStandard(c.Snapshot.Schedule); err != nil {
			return fmt.Errorf("invalid config: snapshot schedule %q: %w", c.Snapshot.Schedule, err)
		}
	}
	return nil
}
