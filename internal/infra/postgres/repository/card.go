package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/infra/postgres"
)

const cardColumns = `
	c.id, c.source_text, c.source_lang, c.normalized_source_text,
	c.target_text, c.target_lang, c.normalized_target_text,
	c.example_sentence, c.example_translation, c.part_of_speech, c.extra,
	c.created_at, c.updated_at`

// CardRepository stores canonical cards. Cards are append-only.
type CardRepository struct {
	db postgres.DBTX
}

// NewCardRepository creates a new CardRepository with the provided database pool.
func NewCardRepository(db postgres.DBTX) *CardRepository {
	return &CardRepository{db: db}
}

// FindBySourceKey returns the card with the given normalized source text.
func (r *CardRepository) FindBySourceKey(ctx context.Context, key string) (*entities.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards c WHERE c.normalized_source_text = $1`

	card, err := scanCard(postgres.Conn(ctx, r.db).QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("find card by source: %w", err)
	}

	return card, nil
}

// FindByTargetKey returns the oldest card with the given normalized target text.
func (r *CardRepository) FindByTargetKey(ctx context.Context, key string) (*entities.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards c
		WHERE c.normalized_target_text = $1
		ORDER BY c.id
		LIMIT 1
	`

	card, err := scanCard(postgres.Conn(ctx, r.db).QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("find card by target: %w", err)
	}

	return card, nil
}

// Create inserts the card and sets its ID. If a card with the same
// normalized source text already exists, ErrDuplicateKey is returned
// and nothing is written.
func (r *CardRepository) Create(ctx context.Context, card *entities.Card) error {
	query := `
		INSERT INTO cards (
			source_text, source_lang, normalized_source_text,
			target_text, target_lang, normalized_target_text,
			example_sentence, example_translation, part_of_speech, extra,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (normalized_source_text) DO NOTHING
		RETURNING id
	`

	var extra any
	if len(card.Extra) > 0 {
		extra = card.Extra
	}

	err := postgres.Conn(ctx, r.db).QueryRow(
		ctx,
		query,
		card.SourceText,
		card.SourceLang,
		card.NormalizedSourceText,
		card.TargetText,
		card.TargetLang,
		card.NormalizedTargetText,
		card.ExampleSentence,
		card.ExampleTranslation,
		card.PartOfSpeech,
		extra,
		card.CreatedAt,
		card.UpdatedAt,
	).Scan(&card.ID)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows), postgres.IsUniqueViolation(err):
		return ErrDuplicateKey
	default:
		return fmt.Errorf("create card: %w", err)
	}
}

func scanCard(row pgx.Row) (*entities.Card, error) {
	var card entities.Card
	if err := row.Scan(cardFields(&card)...); err != nil {
		return nil, err
	}
	return &card, nil
}

func cardFields(card *entities.Card) []any {
	return []any{
		&card.ID,
		&card.SourceText,
		&card.SourceLang,
		&card.NormalizedSourceText,
		&card.TargetText,
		&card.TargetLang,
		&card.NormalizedTargetText,
		&card.ExampleSentence,
		&card.ExampleTranslation,
		&card.PartOfSpeech,
		&card.Extra,
		&card.CreatedAt,
		&card.UpdatedAt,
	}
}
