package citizenbot

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"
	"github.com/disgoorg/snowflake/v2"

	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/database"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/repositories"
	"github.com/worldcitizen/citizen-bot/citizenbot/services"
	"github.com/worldcitizen/citizen-bot/citizenbot/utils"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB

	CitizenRepository    repositories.CitizenRepository
	StatsRepository      repositories.StatsRepository
	ActivityRepository   repositories.ActivityRepository
	PointEventRepository repositories.PointEventRepository

	Scoring          *services.ScoringService
	BadgeSearch      *services.BadgeSearch
	LeaderboardImage *services.LeaderboardImageService
	Snapshots        *services.SnapshotExporter
	Background       *utils.BackgroundProcessManager
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds, gateway.IntentGuildMessages)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("Citizen bot is now ready",
		slog.String("type", "sys"),
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithListeningActivity(b.Cfg.Bot.Activity),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}

// StartBackground schedules the database health check and, when enabled, the leaderboard
// snapshot export.
func (b *Bot) StartBackground() error {
	b.Background = utils.NewBackgroundProcessManager()

	if b.DB != nil {
		err := b.Background.StartScheduled("db-health", "Database ping", config.DBHealthSchedule,
			func(ctx context.Context) {
				if err := b.DB.Ping(ctx); err != nil {
					slog.Error("Database health check failed",
						slog.String("type", "db"),
						slog.Any("error", err))
				}
			})
		if err != nil {
			return err
		}
	}

	if b.Snapshots == nil {
		return nil
	}

	return b.Background.StartScheduled("snapshot-export", "Leaderboard snapshot upload", b.Cfg.Snapshot.Schedule,
		func(ctx context.Context) {
			if _, err := b.Snapshots.Export(ctx); err != nil {
				slog.Error("Snapshot export failed",
					slog.String("type", "sys"),
					slog.Any("error", err))
			}
		})
}

// IsAdmin reports whether the user may run moderator commands.
func (b *Bot) IsAdmin(id snowflake.ID) bool {
	return b.Cfg.Bot.IsAdmin(id)
}
