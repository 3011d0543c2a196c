package repository

import (
	"context"
	"errors"
	"fmt"

	"schnose/database"
	"schnose/models"

	"github.com/jackc/pgx/v5"
)

// queryable is satisfied by both the pool and a transaction
type queryable interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const userColumns = `discord_id, name, steam_id, mode, created_at, updated_at`

// UserRepository stores per-user preferences in the users table
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// GetByDiscordID returns the stored preferences, or nil when the user never
// wrote any
func (r *UserRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE discord_id = $1`

	user, err := scanUser(r.q.QueryRow(ctx, query, discordID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by discord ID %d: %w", discordID, err)
	}

	return user, nil
}

// Upsert creates the row on first write and otherwise updates the name plus
// whichever preference fields the update carries. Concurrent writers resolve
// last-write-wins inside Postgres.
func (r *UserRepository) Upsert(ctx context.Context, update *models.UserUpdate) (*models.User, error) {
	query := `
		INSERT INTO users (discord_id, name, steam_id, mode)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (discord_id) DO UPDATE SET
			name = EXCLUDED.name,
			steam_id = CASE WHEN $5 THEN EXCLUDED.steam_id ELSE users.steam_id END,
			mode = CASE WHEN $6 THEN EXCLUDED.mode ELSE users.mode END,
			updated_at = NOW()
		RETURNING ` + userColumns

	var mode *string
	if update.Mode != nil && !update.ClearMode {
		m := string(*update.Mode)
		mode = &m
	}

	user, err := scanUser(r.q.QueryRow(ctx, query,
		update.DiscordID,
		update.Name,
		update.SteamID,
		mode,
		update.SteamID != nil,
		update.Mode != nil || update.ClearMode,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user %d: %w", update.DiscordID, err)
	}

	return user, nil
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var mode *string

	err := row.Scan(
		&user.DiscordID,
		&user.Name,
		&user.SteamID,
		&mode,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if mode != nil {
		m, err := models.ParseMode(*mode)
		if err != nil {
			return nil, fmt.Errorf("stored mode for user %d: %w", user.DiscordID, err)
		}
		user.Mode = &m
	}

	return &user, nil
}
