package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/models"
)

const entityStats = "citizen_stats"

type StatsRepository interface {
	Create(ctx context.Context, stats *models.CitizenStats) error
	GetByDiscordID(ctx context.Context, discordID string) (*models.CitizenStats, error)
	// Save writes stats if nobody saved since it was read, and appends event in the same
	// transaction. A counter named by the event is bumped in that transaction too.
	Save(ctx context.Context, stats *models.CitizenStats, event *models.PointEvent) error
	GetTop(ctx context.Context, limit int) ([]*models.CitizenStats, error)
	GetAll(ctx context.Context) ([]*models.CitizenStats, error)
	GetPosition(ctx context.Context, stats *models.CitizenStats) (int, error)
}

type statsRepository struct {
	*BaseRepository
	db *bun.DB
}

func NewStatsRepository(db *bun.DB) StatsRepository {
	return &statsRepository{BaseRepository: NewBaseRepository(db), db: db}
}

func (r *statsRepository) Create(ctx context.Context, stats *models.CitizenStats) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	stats.CreatedAt = now
	stats.UpdatedAt = now

	_, err := r.db.NewInsert().Model(stats).Exec(ctx)
	if isUniqueViolation(err) {
		return &ConflictError{Entity: entityStats, Field: "discord_id", Value: stats.DiscordID}
	}
	return r.HandleErrorWithID("create", entityStats, stats.DiscordID, err)
}

func (r *statsRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.CitizenStats, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	stats := new(models.CitizenStats)
	err := r.db.NewSelect().
		Model(stats).
		Where("discord_id = ?", discordID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", entityStats, discordID, err)
	}
	return stats, nil
}

func (r *statsRepository) Save(ctx context.Context, stats *models.CitizenStats, event *models.PointEvent) error {
	expected := stats.Version
	stats.Version = expected + 1
	stats.UpdatedAt = time.Now()

	err := r.Transaction(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(stats).
			WherePK().
			Where("version = ?", expected).
			Exec(ctx)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrVersionConflict
		}

		if event == nil {
			return nil
		}
		if event.Counter != "" {
			if err := incrementActivity(ctx, tx, stats.DiscordID, event.Counter, event.CounterDelta); err != nil {
				return err
			}
		}
		event.CreatedAt = stats.UpdatedAt
		_, err = tx.NewInsert().Model(event).Exec(ctx)
		return err
	})
	if err != nil {
		stats.Version = expected
		if errors.Is(err, ErrVersionConflict) {
			slog.Warn("Stats version conflict",
				slog.String("type", "db"),
				slog.String("discord_id", stats.DiscordID),
				slog.Int64("version", expected))
			return fmt.Errorf("save %s: %w", stats.DiscordID, ErrVersionConflict)
		}
		return r.HandleErrorWithID("save", entityStats, stats.DiscordID, err)
	}
	return nil
}

func (r *statsRepository) GetTop(ctx context.Context, limit int) ([]*models.CitizenStats, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	if limit <= 0 || limit > config.MaxLeaderboardSize {
		limit = config.MaxLeaderboardSize
	}

	var stats []*models.CitizenStats
	err := r.db.NewSelect().
		Model(&stats).
		OrderExpr("total_points DESC, id ASC").
		Limit(limit).
		Scan(ctx)
	return stats, r.HandleError("get_top", entityStats, err)
}

func (r *statsRepository) GetAll(ctx context.Context) ([]*models.CitizenStats, error) {
	ctx, cancel := r.WithCustomTimeout(ctx, config.BatchQueryTimeout)
	defer cancel()

	var stats []*models.CitizenStats
	err := r.db.NewSelect().
		Model(&stats).
		OrderExpr("total_points DESC, id ASC").
		Scan(ctx)
	return stats, r.HandleError("get_all", entityStats, err)
}

// GetPosition is the 1-based leaderboard position of stats, using the same ordering as GetTop.
func (r *statsRepository) GetPosition(ctx context.Context, stats *models.CitizenStats) (int, error) {
	ahead, err := r.Count(ctx, entityStats, r.db.NewSelect().
		Model((*models.CitizenStats)(nil)).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("total_points > ?", stats.TotalPoints).
				WhereOr("total_points = ? AND id < ?", stats.TotalPoints, stats.ID)
		}))
	if err != nil {
		return 0, err
	}
	return ahead + 1, nil
}
