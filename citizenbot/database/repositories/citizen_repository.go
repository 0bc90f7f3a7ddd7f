package repositories

import (
	"context"
	"log/slog"
	"time"

	"github.com/uptrace/bun"

	"github.com/worldcitizen/citizen-bot/citizenbot/database/models"
)

const entityCitizen = "citizen"

type CitizenRepository interface {
	Create(ctx context.Context, citizen *models.Citizen) error
	GetByDiscordID(ctx context.Context, discordID string) (*models.Citizen, error)
	GetByTokenID(ctx context.Context, tokenID int64) (*models.Citizen, error)
	Update(ctx context.Context, citizen *models.Citizen) error
	Upsert(ctx context.Context, citizen *models.Citizen) error
	Count(ctx context.Context) (int, error)
}

type citizenRepository struct {
	*BaseRepository
	db *bun.DB
}

func NewCitizenRepository(db *bun.DB) CitizenRepository {
	return &citizenRepository{BaseRepository: NewBaseRepository(db), db: db}
}

func (r *citizenRepository) Create(ctx context.Context, citizen *models.Citizen) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	citizen.CreatedAt = now
	citizen.UpdatedAt = now
	if citizen.JoinedAt.IsZero() {
		citizen.JoinedAt = now
	}

	_, err := r.db.NewInsert().Model(citizen).Exec(ctx)
	if isUniqueViolation(err) {
		return &ConflictError{Entity: entityCitizen, Field: "discord_id", Value: citizen.DiscordID}
	}
	return r.HandleErrorWithID("create", entityCitizen, citizen.DiscordID, err)
}

func (r *citizenRepository) GetByDiscordID(ctx context.Context, discordID string) (*models.Citizen, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	citizen := new(models.Citizen)
	err := r.db.NewSelect().
		Model(citizen).
		Where("discord_id = ?", discordID).
		Scan(ctx)
	if err != nil {
		slog.Debug("Citizen lookup failed",
			slog.String("type", "db"),
			slog.String("operation", "GetByDiscordID"),
			slog.String("discord_id", discordID),
			slog.Any("error", err))
		return nil, r.HandleErrorWithID("get", entityCitizen, discordID, err)
	}
	return citizen, nil
}

func (r *citizenRepository) GetByTokenID(ctx context.Context, tokenID int64) (*models.Citizen, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	citizen := new(models.Citizen)
	err := r.db.NewSelect().
		Model(citizen).
		Where("token_id = ?", tokenID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get_by_token", entityCitizen, tokenID, err)
	}
	return citizen, nil
}

func (r *citizenRepository) Update(ctx context.Context, citizen *models.Citizen) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	citizen.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(citizen).
		WherePK().
		Exec(ctx)
	return r.HandleErrorWithID("update", entityCitizen, citizen.DiscordID, err)
}

// Upsert inserts or refreshes a citizen by discord id, keeping the original join date.
func (r *citizenRepository) Upsert(ctx context.Context, citizen *models.Citizen) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	citizen.UpdatedAt = now
	if citizen.CreatedAt.IsZero() {
		citizen.CreatedAt = now
	}
	if citizen.JoinedAt.IsZero() {
		citizen.JoinedAt = now
	}

	_, err := r.db.NewInsert().
		Model(citizen).
		On("CONFLICT (discord_id) DO UPDATE").
		Set("username = EXCLUDED.username").
		Set("wallet_address = EXCLUDED.wallet_address").
		Set("token_id = EXCLUDED.token_id").
		Set("has_citizenship = EXCLUDED.has_citizenship").
		Set("joined_at = LEAST(c.joined_at, EXCLUDED.joined_at)").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return r.HandleErrorWithID("upsert", entityCitizen, citizen.DiscordID, err)
}

func (r *citizenRepository) Count(ctx context.Context) (int, error) {
	return r.BaseRepository.Count(ctx, entityCitizen, r.db.NewSelect().Model((*models.Citizen)(nil)))
}
