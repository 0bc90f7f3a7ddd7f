package repositories

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"github.com/worldcitizen/citizen-bot/citizenbot/database/models"
)

const entityPointEvent = "point_event"

type PointEventRepository interface {
	Create(ctx context.Context, event *models.PointEvent) error
	GetRecent(ctx context.Context, discordID string, limit int) ([]*models.PointEvent, error)
	SumSince(ctx context.Context, discordID string, since time.Time) (int64, error)
}

type pointEventRepository struct {
	*BaseRepository
	db *bun.DB
}

func NewPointEventRepository(db *bun.DB) PointEventRepository {
	return &pointEventRepository{BaseRepository: NewBaseRepository(db), db: db}
}

func (r *pointEventRepository) Create(ctx context.Context, event *models.PointEvent) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	_, err := r.db.NewInsert().Model(event).Exec(ctx)
	return r.HandleErrorWithID("create", entityPointEvent, event.DiscordID, err)
}

func (r *pointEventRepository) GetRecent(ctx context.Context, discordID string, limit int) ([]*models.PointEvent, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var events []*models.PointEvent
	err := r.db.NewSelect().
		Model(&events).
		Where("discord_id = ?", discordID).
		OrderExpr("created_at DESC, id DESC").
		Limit(limit).
		Scan(ctx)
	return events, r.HandleErrorWithID("get_recent", entityPointEvent, discordID, err)
}

// SumSince totals the points awarded to discordID after since.
func (r *pointEventRepository) SumSince(ctx context.Context, discordID string, since time.Time) (int64, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.NewSelect().
		Model((*models.PointEvent)(nil)).
		ColumnExpr("COALESCE(SUM(action_points + badge_points), 0)").
		Where("discord_id = ?", discordID).
		Where("created_at >= ?", since).
		Scan(ctx, &total)
	return total, r.HandleErrorWithID("sum_since", entityPointEvent, discordID, err)
}
