package migration

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/models"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/repositories"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

const importEventName = "import"

// Importer copies citizens and their activity from the legacy MongoDB store into PostgreSQL,
// then recomputes every imported record through the engine.
type Importer struct {
	source    *mongo.Database
	citizens  repositories.CitizenRepository
	activity  repositories.ActivityRepository
	stats     repositories.StatsRepository
	engine    *gamification.Engine
	workers   int
	dryRun    bool
	collNames map[string]string

	read, imported, skipped, failed, badges atomic.Int64
}

func NewImporter(
	source *mongo.Database,
	citizens repositories.CitizenRepository,
	activity repositories.ActivityRepository,
	stats repositories.StatsRepository,
	engine *gamification.Engine,
) *Importer {
	return &Importer{
		source:   source,
		citizens: citizens,
		activity: activity,
		stats:    stats,
		engine:   engine,
		workers:  config.DefaultImportWorkers,
		collNames: map[string]string{
			"citizens": "citizens",
			"activity": "activity",
		},
	}
}

func (im *Importer) SetWorkers(n int) {
	if n > 0 {
		im.workers = n
	}
}

// SetDryRun reads and converts everything but writes nothing.
func (im *Importer) SetDryRun(v bool) { im.dryRun = v }

// SetCollectionName overrides the collection used for kind ("citizens" or "activity").
func (im *Importer) SetCollectionName(kind, name string) {
	if kind != "" && name != "" {
		im.collNames[kind] = name
	}
}

func (im *Importer) Run(ctx context.Context) (ImportReport, error) {
	report := ImportReport{Started: time.Now()}

	activity, err := im.loadActivity(ctx)
	if err != nil {
		return report, err
	}
	slog.Info("Loaded legacy activity",
		slog.String("type", "sys"),
		slog.Int("documents", len(activity)))

	cursor, err := im.source.Collection(im.collNames["citizens"]).Find(ctx, bson.D{})
	if err != nil {
		return report, fmt.Errorf("failed to query citizens: %w", err)
	}
	defer cursor.Close(ctx)

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(im.workers))

	for cursor.Next(gctx) {
		var doc LegacyCitizen
		if err := cursor.Decode(&doc); err != nil {
			im.failed.Add(1)
			slog.Warn("Skipping undecodable citizen", slog.String("type", "sys"), slog.Any("error", err))
			continue
		}
		im.read.Add(1)
		if doc.DiscordID == "" {
			im.skipped.Add(1)
			continue
		}

		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		act := activity[doc.DiscordID]
		g.Go(func() error {
			defer sem.Release(1)
			if err := im.importOne(gctx, doc, act); err != nil {
				im.failed.Add(1)
				slog.Error("Failed to import citizen",
					slog.String("type", "sys"),
					slog.String("discord_id", doc.DiscordID),
					slog.Any("error", err))
			}
			return nil
		})

		if n := im.read.Load(); n%config.ImportBatchSize == 0 {
			logProgress(n, im.imported.Load())
		}
	}

	werr := g.Wait()
	report.Read = im.read.Load()
	report.Imported = im.imported.Load()
	report.Skipped = im.skipped.Load()
	report.Failed = im.failed.Load()
	report.Badges = im.badges.Load()
	report.Finished = time.Now()

	if err := cursor.Err(); err != nil {
		return report, fmt.Errorf("citizen cursor failed: %w", err)
	}
	if werr != nil {
		return report, werr
	}
	return report, ctx.Err()
}

func (im *Importer) loadActivity(ctx context.Context) (map[string]*LegacyActivity, error) {
	cursor, err := im.source.Collection(im.collNames["activity"]).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}

	var docs []LegacyActivity
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode activity: %w", err)
	}

	out := make(map[string]*LegacyActivity, len(docs))
	for i := range docs {
		out[docs[i].DiscordID] = &docs[i]
	}
	return out, nil
}

func (im *Importer) importOne(ctx context.Context, doc LegacyCitizen, legacyActivity *LegacyActivity) error {
	citizen := ToCitizen(doc)
	activity := ToActivity(doc.DiscordID, legacyActivity)
	legacy, lastVisit := ToUserStats(doc.Stats, im.engine.Catalog())

	outcome := im.engine.Sweep(legacy, activity.ToDomain(citizen))

	if im.dryRun {
		im.badges.Add(int64(len(outcome.NewBadges)))
		im.imported.Add(1)
		return nil
	}

	if err := im.citizens.Upsert(ctx, citizen); err != nil {
		return err
	}
	if err := im.activity.Upsert(ctx, activity); err != nil {
		return err
	}

	row, err := im.stats.GetByDiscordID(ctx, doc.DiscordID)
	switch {
	case repositories.IsNotFound(err):
		row = models.NewCitizenStats(citizen.DiscordID, citizen.Username)
		row.ApplyDomain(outcome.Stats)
		row.LastVisitAt = lastVisit
		if err := im.stats.Create(ctx, row); err != nil {
			return err
		}
		im.badges.Add(int64(len(outcome.NewBadges)))
	case err != nil:
		return err
	default:
		// Already imported or registered since; keep the live record and only sweep it.
		current := im.engine.Sweep(row.ToDomain(im.engine.Catalog()), activity.ToDomain(citizen))
		if len(current.NewBadges) == 0 && current.Stats.Level == row.Level {
			im.skipped.Add(1)
			return nil
		}
		row.ApplyDomain(current.Stats)
		event := &models.PointEvent{
			DiscordID:   row.DiscordID,
			Action:      importEventName,
			BadgePoints: current.BadgePoints,
			TotalAfter:  current.Stats.TotalPoints,
			LevelAfter:  current.Stats.Level,
		}
		for _, b := range current.NewBadges {
			event.Badges = append(event.Badges, b.ID)
		}
		if err := im.stats.Save(ctx, row, event); err != nil {
			return err
		}
		im.badges.Add(int64(len(current.NewBadges)))
	}

	im.imported.Add(1)
	return nil
}

func logProgress(read, imported int64) {
	slog.Info("Import progress",
		slog.String("type", "sys"),
		slog.Int64("read", read),
		slog.Int64("imported", imported))
}
