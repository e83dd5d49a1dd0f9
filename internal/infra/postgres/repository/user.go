package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/infra/postgres"
)

// UserRepository provides access to user data in the database.
type UserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new UserRepository with the provided database pool.
func NewUserRepository(db postgres.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert inserts a new user or refreshes the profile fields of an existing
// one. Absent fields keep their stored value. Stored state (active deck,
// reminders) is loaded back into user.
func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) (bool, error) {
	query := `
		INSERT INTO users (id, username, first_name, last_name, reminders_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			username = COALESCE(EXCLUDED.username, users.username),
			first_name = COALESCE(EXCLUDED.first_name, users.first_name),
			last_name = COALESCE(EXCLUDED.last_name, users.last_name),
			updated_at = EXCLUDED.updated_at
		RETURNING active_deck_id, reminders_enabled, last_reminded_at, created_at, (xmax = 0) AS created
	`

	var created bool
	err := postgres.Conn(ctx, r.db).QueryRow(
		ctx,
		query,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.RemindersEnabled,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(
		&user.ActiveDeckID,
		&user.RemindersEnabled,
		&user.LastRemindedAt,
		&user.CreatedAt,
		&created,
	)
	if err != nil {
		return false, fmt.Errorf("upsert user: %w", err)
	}

	return created, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*entities.User, error) {
	query := `
		SELECT id, username, first_name, last_name, active_deck_id,
		       reminders_enabled, last_reminded_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user entities.User
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.ActiveDeckID,
		&user.RemindersEnabled,
		&user.LastRemindedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// SetActiveDeck points the user at deckID, or clears the pointer when deckID is nil.
func (r *UserRepository) SetActiveDeck(ctx context.Context, userID int64, deckID *int64) error {
	query := `UPDATE users SET active_deck_id = $2, updated_at = now() WHERE id = $1`

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, query, userID, deckID)
	if err != nil {
		return fmt.Errorf("set active deck: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SetReminders enables or disables due-card reminders for the user.
func (r *UserRepository) SetReminders(ctx context.Context, userID int64, enabled bool) error {
	query := `UPDATE users SET reminders_enabled = $2, updated_at = now() WHERE id = $1`

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, query, userID, enabled)
	if err != nil {
		return fmt.Errorf("set reminders: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// MarkReminded stores the time of the last reminder sent to the user.
func (r *UserRepository) MarkReminded(ctx context.Context, userID int64, at time.Time) error {
	query := `UPDATE users SET last_reminded_at = $2 WHERE id = $1`

	if _, err := postgres.Conn(ctx, r.db).Exec(ctx, query, userID, at); err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}

	return nil
}
