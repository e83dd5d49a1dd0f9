package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/infra/postgres"
)

// ReminderRepository selects users to remind about due cards.
type ReminderRepository struct {
	db postgres.DBTX
}

// NewReminderRepository creates a new ReminderRepository with the provided database pool.
func NewReminderRepository(db postgres.DBTX) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// GetDueBatch returns up to limit users with reminders enabled, at least
// one card due at asOf and no reminder since remindedBefore. Users are
// ordered by ID and start after afterUserID, so callers page by passing
// the last ID of the previous batch.
func (r *ReminderRepository) GetDueBatch(
	ctx context.Context,
	asOf, remindedBefore time.Time,
	afterUserID int64,
	limit int,
) ([]entities.DueSummary, error) {
	query := `
		SELECT u.id, COUNT(uc.id) AS due_count
		FROM users u
		JOIN user_cards uc ON uc.user_id = u.id AND uc.next_review_at <= $1
		WHERE u.reminders_enabled
		  AND (u.last_reminded_at IS NULL OR u.last_reminded_at < $2)
		  AND u.id > $3
		GROUP BY u.id
		ORDER BY u.id
		LIMIT $4
	`

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, asOf, remindedBefore, afterUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("get due reminders: %w", err)
	}
	defer rows.Close()

	var result []entities.DueSummary
	for rows.Next() {
		var s entities.DueSummary
		if err := rows.Scan(&s.UserID, &s.DueCount); err != nil {
			return nil, fmt.Errorf("scan due summary: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due summaries: %w", err)
	}

	return result, nil
}
