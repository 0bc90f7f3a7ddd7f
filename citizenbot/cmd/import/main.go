package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/database"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/repositories"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
	"github.com/worldcitizen/citizen-bot/citizenbot/logger"
	"github.com/worldcitizen/citizen-bot/citizenbot/migration"
)

var (
	configPath     string
	mongoURI       string
	mongoDB        string
	citizensColl   string
	activityColl   string
	dryRun         bool
	reset          bool
	workers        int
	connectTimeout = 30 * time.Second
)

var rootCmd = &cobra.Command{
	Use:   "import",
	Short: "Import citizens and activity from the legacy MongoDB store",
	RunE:  runImport,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "config.toml", "path to config")
	rootCmd.Flags().StringVar(&mongoURI, "mongo-uri", "mongodb://localhost:27017", "legacy MongoDB connection string")
	rootCmd.Flags().StringVar(&mongoDB, "mongo-db", "worldcitizen", "legacy database name")
	rootCmd.Flags().StringVar(&citizensColl, "citizens-collection", "citizens", "collection holding citizen documents")
	rootCmd.Flags().StringVar(&activityColl, "activity-collection", "activity", "collection holding activity counters")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "convert everything but write nothing")
	rootCmd.Flags().BoolVar(&reset, "reset", false, "truncate every application table before importing")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "concurrent citizen imports (default from config)")
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(slog.LevelInfo)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := citizenbot.LoadConfig(configPath)
	if err != nil {
		return err
	}

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		return err
	}
	defer db.Close()

	if err = db.InitializeSchema(ctx); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	if reset && !dryRun {
		slog.Warn("Resetting application tables", slog.String("type", "sys"))
		if err = db.ResetAppTables(ctx); err != nil {
			return err
		}
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer client.Disconnect(context.Background())
	if err = client.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	engineCfg, err := cfg.Gamification.EngineConfig()
	if err != nil {
		return err
	}
	engine := gamification.NewEngine(gamification.DefaultCatalog(), engineCfg)

	bunDB := db.BunDB()
	importer := migration.NewImporter(
		client.Database(mongoDB),
		repositories.NewCitizenRepository(bunDB),
		repositories.NewActivityRepository(bunDB),
		repositories.NewStatsRepository(bunDB),
		engine,
	)
	importer.SetWorkers(workers)
	importer.SetDryRun(dryRun)
	importer.SetCollectionName("citizens", citizensColl)
	importer.SetCollectionName("activity", activityColl)

	report, err := importer.Run(ctx)
	slog.Info("Import finished",
		slog.String("type", "sys"),
		slog.Bool("dry_run", dryRun),
		slog.Int64("read", report.Read),
		slog.Int64("imported", report.Imported),
		slog.Int64("skipped", report.Skipped),
		slog.Int64("failed", report.Failed),
		slog.Int64("badges_granted", report.Badges),
		slog.Duration("took", report.Finished.Sub(report.Started)))
	return err
}
