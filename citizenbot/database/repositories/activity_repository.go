package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/worldcitizen/citizen-bot/citizenbot/database/models"
)

const entityActivity = "citizen_activity"

type ActivityRepository interface {
	Create(ctx context.Context, activity *models.CitizenActivity) error
	GetByDiscordID(ctx context.Context, discordID string) (*models.CitizenActivity, error)
	Upsert(ctx context.Context, activity *models.CitizenActivity) error
}

type activityRepository struct {
	*BaseRepository
	db *bun.DB
}

func NewActivityRepository(db *bun.DB) ActivityRepository {
	return &activityRepository{BaseRepository: NewBaseRepository(db), db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.CitizenActivity) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	activity.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(activity).Exec(ctx)
	if isUniqueViolation(err) {
		return &ConflictError{Entity: entityActivity, Field: "discord_id", Value: activity.DiscordID}
	}
	return r.HandleErrorWithID("create", entityActivity, activity.DiscordID, err)
}

func (r *activityRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.CitizenActivity, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	activity := new(models.CitizenActivity)
	err := r.db.NewSelect().
		Model(activity).
		Where("discord_id = ?", discordID).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", entityActivity, discordID, err)
	}
	return activity, nil
}

// incrementActivity adds delta to field, never going below zero. Callers run it inside the
// transaction that writes the matching ledger row.
func incrementActivity(ctx context.Context, db bun.IDB, discordID string, field models.ActivityField, delta int64) error {
	if !field.Valid() {
		return fmt.Errorf("unknown activity field %q", field)
	}

	col := bun.Ident(string(field))
	res, err := db.NewUpdate().
		Model((*models.CitizenActivity)(nil)).
		Set("? = GREATEST(? + ?, 0)", col, col, delta).
		Set("updated_at = ?", time.Now()).
		Where("discord_id = ?", discordID).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &NotFoundError{Entity: entityActivity, ID: discordID}
	}
	return nil
}

func (r *activityRepository) Upsert(ctx context.Context, activity *models.CitizenActivity) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	activity.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().
		Model(activity).
		On("CONFLICT (discord_id) DO UPDATE").
		Set("votes_cast = EXCLUDED.votes_cast").
		Set("proposals_created = EXCLUDED.proposals_created").
		Set("posts_count = EXCLUDED.posts_count").
		Set("comments_count = EXCLUDED.comments_count").
		Set("helpful_comments = EXCLUDED.helpful_comments").
		Set("events_organized = EXCLUDED.events_organized").
		Set("followers = EXCLUDED.followers").
		Set("referrals = EXCLUDED.referrals").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleErrorWithID("upsert", entityActivity, activity.DiscordID, err)
}
