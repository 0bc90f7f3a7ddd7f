package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/commands"
	"github.com/worldcitizen/citizen-bot/citizenbot/database"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/repositories"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
	"github.com/worldcitizen/citizen-bot/citizenbot/handlers"
	"github.com/worldcitizen/citizen-bot/citizenbot/logger"
	"github.com/worldcitizen/citizen-bot/citizenbot/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := citizenbot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.SetDefault(slog.New(logger.NewFromConfig(cfg.Log.Level, cfg.Log.Format, cfg.Log.AddSource)))
	slog.Info("Starting citizen bot",
		slog.String("version", version),
		slog.String("commit", commit))

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	if err = db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	b := citizenbot.New(*cfg, version, commit)
	b.DB = db

	b.CitizenRepository = repositories.NewCitizenRepository(db.BunDB())
	b.StatsRepository = repositories.NewStatsRepository(db.BunDB())
	b.ActivityRepository = repositories.NewActivityRepository(db.BunDB())
	b.PointEventRepository = repositories.NewPointEventRepository(db.BunDB())

	engineCfg, err := cfg.Gamification.EngineConfig()
	if err != nil {
		slog.Error("Invalid gamification config", slog.Any("error", err))
		os.Exit(-1)
	}
	catalog := gamification.DefaultCatalog()
	engine := gamification.NewEngine(catalog, engineCfg)

	b.Scoring = services.NewScoringService(
		b.CitizenRepository,
		b.StatsRepository,
		b.ActivityRepository,
		b.PointEventRepository,
		engine,
		services.ScoringOptions{
			StatsCacheSize: cfg.Gamification.StatsCacheSize,
			LeaderboardTTL: cfg.Gamification.LeaderboardTTL.Duration,
			PostCooldown:   cfg.Gamification.PostCooldown.Duration,
		},
	)
	b.BadgeSearch = services.NewBadgeSearch(catalog)
	b.LeaderboardImage = services.NewLeaderboardImageService()

	slog.Info("Scoring engine ready",
		slog.String("type", "sys"),
		slog.Int("badges", catalog.Len()),
		slog.Bool("recompute_after_badges", engineCfg.RecomputeAfterBadges))

	if cfg.Snapshot.Enabled {
		client, err := services.NewSpacesClient(ctx, cfg.Spaces.Key, cfg.Spaces.Secret, cfg.Spaces.Region)
		if err != nil {
			slog.Error("Failed to create Spaces client", slog.Any("error", err))
			os.Exit(-1)
		}
		b.Snapshots = services.NewSnapshotExporter(client, b.Scoring, cfg.Spaces.Bucket, cfg.Snapshot.Prefix, cfg.Snapshot.Size)
	}
	if err = b.StartBackground(); err != nil {
		slog.Error("Failed to start background processes", slog.Any("error", err))
		os.Exit(-1)
	}
	for _, p := range b.Background.ListProcesses() {
		slog.Info("Scheduled background process",
			slog.String("type", "sys"),
			slog.String("process", p.Name),
			slog.String("description", p.Description))
	}

	h := handler.New()
	commands.Register(h, b)

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady), handlers.MessageHandler(b)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("error_details", fmt.Sprintf("%+v", err)),
			slog.String("component", "bot_setup"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		slog.Info("Syncing commands",
			slog.String("type", "sys"),
			slog.Any("guild_ids", cfg.Bot.DevGuilds),
		)
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("component", "command_sync"),
				slog.String("status", "failed"),
			)
		}
	}

	gatewayCtx, gatewayCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer gatewayCancel()
	if err = b.Client.OpenGateway(gatewayCtx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err),
			slog.String("component", "gateway"),
			slog.String("status", "failed"),
		)
		os.Exit(-1)
	}

	slog.Info("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	slog.Info("Shutting down bot...")

	if err := b.Background.Shutdown(10 * time.Second); err != nil {
		slog.Warn("Background processes did not stop in time", slog.Any("error", err))
	}
}
