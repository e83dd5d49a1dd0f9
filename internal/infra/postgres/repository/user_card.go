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

const (
	userCardColumns = `
		uc.id, uc.user_id, uc.deck_id, uc.card_id, uc.last_rating,
		uc.interval_minutes, uc.review_count, uc.next_review_at,
		uc.last_reviewed_at, uc.created_at`

	userCardDetailsSelect = `
		SELECT ` + userCardColumns + `,` + cardColumns + `, d.name
		FROM user_cards uc
		JOIN cards c ON c.id = uc.card_id
		JOIN decks d ON d.id = uc.deck_id`
)

// UserCardRepository stores per-user scheduling state.
type UserCardRepository struct {
	db postgres.DBTX
}

// NewUserCardRepository creates a new UserCardRepository with the provided database pool.
func NewUserCardRepository(db postgres.DBTX) *UserCardRepository {
	return &UserCardRepository{db: db}
}

// Ensure inserts the assignment unless the (user, deck, card) triple
// already exists. In both cases uc ends up holding the stored row.
func (r *UserCardRepository) Ensure(ctx context.Context, uc *entities.UserCard) (bool, error) {
	conn := postgres.Conn(ctx, r.db)

	insert := `
		INSERT INTO user_cards (user_id, deck_id, card_id, interval_minutes, review_count, next_review_at, created_at)
		VALUES ($1, $2, $3, 0, 0, $4, $5)
		ON CONFLICT (user_id, deck_id, card_id) DO NOTHING
		RETURNING id
	`

	err := conn.QueryRow(ctx, insert, uc.UserID, uc.DeckID, uc.CardID, uc.NextReviewAt, uc.CreatedAt).Scan(&uc.ID)
	if err == nil {
		uc.LastRating = nil
		uc.IntervalMinutes = 0
		uc.ReviewCount = 0
		uc.LastReviewedAt = nil
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("insert user card: %w", err)
	}

	query := `
		SELECT ` + userCardColumns + `
		FROM user_cards uc
		WHERE uc.user_id = $1 AND uc.deck_id = $2 AND uc.card_id = $3
	`

	existing, err := scanUserCard(conn.QueryRow(ctx, query, uc.UserID, uc.DeckID, uc.CardID))
	if err != nil {
		return false, fmt.Errorf("get existing user card: %w", err)
	}
	*uc = *existing

	return false, nil
}

// NextDue returns the earliest due assignment of the user, optionally
// restricted to one deck. It returns nil, nil when nothing is due.
func (r *UserCardRepository) NextDue(ctx context.Context, userID int64, deckID *int64, asOf time.Time) (*entities.UserCardDetails, error) {
	query := userCardDetailsSelect + `
		WHERE uc.user_id = $1
		  AND uc.next_review_at <= $2
		  AND ($3::bigint IS NULL OR uc.deck_id = $3)
		ORDER BY uc.next_review_at, uc.created_at, uc.id
		LIMIT 1
	`

	details, err := scanUserCardDetails(postgres.Conn(ctx, r.db).QueryRow(ctx, query, userID, asOf, deckID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get next due user card: %w", err)
	}

	return details, nil
}

// GetByID returns the assignment if it belongs to userID.
func (r *UserCardRepository) GetByID(ctx context.Context, userID, id int64) (*entities.UserCardDetails, error) {
	query := userCardDetailsSelect + ` WHERE uc.id = $1 AND uc.user_id = $2`

	details, err := scanUserCardDetails(postgres.Conn(ctx, r.db).QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserCardNotFound
		}
		return nil, fmt.Errorf("get user card: %w", err)
	}

	return details, nil
}

// Lock loads the assignment for update if it belongs to userID.
func (r *UserCardRepository) Lock(ctx context.Context, userID, id int64) (*entities.UserCard, error) {
	query := `
		SELECT ` + userCardColumns + `
		FROM user_cards uc
		WHERE uc.id = $1 AND uc.user_id = $2
		FOR UPDATE
	`

	uc, err := scanUserCard(postgres.Conn(ctx, r.db).QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserCardNotFound
		}
		return nil, fmt.Errorf("lock user card: %w", err)
	}

	return uc, nil
}

// SaveReview persists the scheduling fields set by UserCard.ApplyReview.
func (r *UserCardRepository) SaveReview(ctx context.Context, uc *entities.UserCard) error {
	query := `
		UPDATE user_cards SET
			last_rating = $3,
			interval_minutes = $4,
			review_count = $5,
			next_review_at = $6,
			last_reviewed_at = $7
		WHERE id = $1 AND user_id = $2
	`

	tag, err := postgres.Conn(ctx, r.db).Exec(
		ctx,
		query,
		uc.ID,
		uc.UserID,
		ratingValue(uc.LastRating),
		uc.IntervalMinutes,
		uc.ReviewCount,
		uc.NextReviewAt,
		uc.LastReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("save review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserCardNotFound
	}

	return nil
}

// ListInDeck returns all assignments of the user in the deck, soonest due first.
func (r *UserCardRepository) ListInDeck(ctx context.Context, userID, deckID int64) ([]entities.UserCardDetails, error) {
	query := userCardDetailsSelect + `
		WHERE uc.user_id = $1 AND uc.deck_id = $2
		ORDER BY uc.next_review_at, uc.created_at, uc.id
	`

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, userID, deckID)
	if err != nil {
		return nil, fmt.Errorf("list user cards: %w", err)
	}
	defer rows.Close()

	var result []entities.UserCardDetails
	for rows.Next() {
		details, err := scanUserCardDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user card: %w", err)
		}
		result = append(result, *details)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user cards: %w", err)
	}

	return result, nil
}

// Remove unlinks one assignment from the deck. The card itself stays.
func (r *UserCardRepository) Remove(ctx context.Context, userID, deckID, id int64) error {
	query := `DELETE FROM user_cards WHERE id = $1 AND user_id = $2 AND deck_id = $3`

	tag, err := postgres.Conn(ctx, r.db).Exec(ctx, query, id, userID, deckID)
	if err != nil {
		return fmt.Errorf("remove user card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserCardNotFound
	}

	return nil
}

func scanUserCard(row pgx.Row) (*entities.UserCard, error) {
	var (
		uc     entities.UserCard
		rating *string
	)
	if err := row.Scan(userCardFields(&uc, &rating)...); err != nil {
		return nil, err
	}
	uc.LastRating = toRating(rating)
	return &uc, nil
}

func scanUserCardDetails(row pgx.Row) (*entities.UserCardDetails, error) {
	var (
		details entities.UserCardDetails
		rating  *string
	)

	dest := userCardFields(&details.UserCard, &rating)
	dest = append(dest, cardFields(&details.Card)...)
	dest = append(dest, &details.DeckName)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	details.LastRating = toRating(rating)
	return &details, nil
}

func userCardFields(uc *entities.UserCard, rating **string) []any {
	return []any{
		&uc.ID,
		&uc.UserID,
		&uc.DeckID,
		&uc.CardID,
		rating,
		&uc.IntervalMinutes,
		&uc.ReviewCount,
		&uc.NextReviewAt,
		&uc.LastReviewedAt,
		&uc.CreatedAt,
	}
}

func toRating(s *string) *entities.Rating {
	if s == nil {
		return nil
	}
	r := entities.Rating(*s)
	return &r
}

func ratingValue(r *entities.Rating) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}
