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
	deckColumns = `d.id, d.owner_id, d.slug, d.name, d.description, d.created_at`

	maxSlugAttempts = 1000
)

// DeckRepository provides access to decks in the database.
type DeckRepository struct {
	db postgres.DBTX
}

// NewDeckRepository creates a new DeckRepository with the provided database pool.
func NewDeckRepository(db postgres.DBTX) *DeckRepository {
	return &DeckRepository{db: db}
}

// EnsureDefault returns the owner's default deck, creating it on first use.
func (r *DeckRepository) EnsureDefault(ctx context.Context, ownerID int64, now time.Time) (*entities.Deck, error) {
	conn := postgres.Conn(ctx, r.db)
	deck := entities.NewDefaultDeck(ownerID, now)

	insert := `
		INSERT INTO decks (owner_id, slug, name, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id, slug) DO NOTHING
	`
	if _, err := conn.Exec(ctx, insert, ownerID, deck.Slug, deck.Name, now); err != nil {
		return nil, fmt.Errorf("insert default deck: %w", err)
	}

	query := `SELECT ` + deckColumns + ` FROM decks d WHERE d.owner_id = $1 AND d.slug = $2`

	deck, err := scanDeck(conn.QueryRow(ctx, query, ownerID, entities.DefaultDeckSlug))
	if err != nil {
		return nil, fmt.Errorf("get default deck: %w", err)
	}

	return deck, nil
}

// Create inserts the deck. When its slug is taken by another deck of the
// same owner, numeric suffixes are tried until one is free; the chosen
// slug and the new ID are set on deck.
func (r *DeckRepository) Create(ctx context.Context, deck *entities.Deck) error {
	query := `
		INSERT INTO decks (owner_id, slug, name, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_id, slug) DO NOTHING
		RETURNING id
	`

	conn := postgres.Conn(ctx, r.db)
	base := deck.Slug

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		slug := entities.SlugCandidate(base, attempt)

		err := conn.QueryRow(ctx, query, deck.OwnerID, slug, deck.Name, deck.Description, deck.CreatedAt).Scan(&deck.ID)
		if errors.Is(err, pgx.ErrNoRows) {
			continue // slug taken
		}
		if err != nil {
			return fmt.Errorf("create deck: %w", err)
		}

		deck.Slug = slug
		return nil
	}

	return fmt.Errorf("create deck %q: %w", base, ErrSlugExhausted)
}

// Get returns the deck if it exists and belongs to ownerID.
func (r *DeckRepository) Get(ctx context.Context, ownerID, deckID int64) (*entities.Deck, error) {
	query := `SELECT ` + deckColumns + ` FROM decks d WHERE d.id = $1 AND d.owner_id = $2`

	deck, err := scanDeck(postgres.Conn(ctx, r.db).QueryRow(ctx, query, deckID, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDeckNotFound
		}
		return nil, fmt.Errorf("get deck: %w", err)
	}

	return deck, nil
}

// Update changes the name and/or description. Nil arguments keep the
// stored value. The slug never changes.
func (r *DeckRepository) Update(ctx context.Context, ownerID, deckID int64, name, description *string) (*entities.Deck, error) {
	query := `
		UPDATE decks d SET
			name = COALESCE($3, d.name),
			description = COALESCE($4, d.description)
		WHERE d.id = $1 AND d.owner_id = $2
		RETURNING ` + deckColumns

	deck, err := scanDeck(postgres.Conn(ctx, r.db).QueryRow(ctx, query, deckID, ownerID, name, description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDeckNotFound
		}
		return nil, fmt.Errorf("update deck: %w", err)
	}

	return deck, nil
}

// Delete removes the deck together with its assignments and clears any
// active-deck pointer to it. Must run inside a transaction.
func (r *DeckRepository) Delete(ctx context.Context, ownerID, deckID int64) error {
	conn := postgres.Conn(ctx, r.db)

	// 1. Lock the deck and check ownership.
	var id int64
	err := conn.QueryRow(ctx, `SELECT id FROM decks WHERE id = $1 AND owner_id = $2 FOR UPDATE`, deckID, ownerID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrDeckNotFound
		}
		return fmt.Errorf("lock deck: %w", err)
	}

	// 2. Remove dependents.
	if _, err := conn.Exec(ctx, `DELETE FROM user_cards WHERE deck_id = $1`, deckID); err != nil {
		return fmt.Errorf("delete user_cards: %w", err)
	}
	if _, err := conn.Exec(ctx, `UPDATE users SET active_deck_id = NULL WHERE active_deck_id = $1`, deckID); err != nil {
		return fmt.Errorf("clear active deck: %w", err)
	}

	// 3. Remove the deck itself.
	if _, err := conn.Exec(ctx, `DELETE FROM decks WHERE id = $1`, deckID); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}

	return nil
}

// List returns the owner's decks with card and due counters, oldest first.
func (r *DeckRepository) List(ctx context.Context, ownerID int64, asOf time.Time) ([]entities.DeckSummary, error) {
	query := `
		SELECT ` + deckColumns + `,
		       COUNT(uc.id) AS card_count,
		       COUNT(uc.id) FILTER (WHERE uc.next_review_at <= $2) AS due_count
		FROM decks d
		LEFT JOIN user_cards uc ON uc.deck_id = d.id
		WHERE d.owner_id = $1
		GROUP BY d.id
		ORDER BY d.created_at, d.id
	`

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, ownerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	var summaries []entities.DeckSummary
	for rows.Next() {
		var s entities.DeckSummary
		if err := rows.Scan(append(deckFields(&s.Deck), &s.CardCount, &s.DueCount)...); err != nil {
			return nil, fmt.Errorf("scan deck summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decks: %w", err)
	}

	return summaries, nil
}

// Stats counts all and due assignments of one deck.
func (r *DeckRepository) Stats(ctx context.Context, deckID int64, asOf time.Time) (cardCount, dueCount int, err error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE next_review_at <= $2)
		FROM user_cards
		WHERE deck_id = $1
	`

	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, deckID, asOf).Scan(&cardCount, &dueCount); err != nil {
		return 0, 0, fmt.Errorf("deck stats: %w", err)
	}

	return cardCount, dueCount, nil
}

func scanDeck(row pgx.Row) (*entities.Deck, error) {
	var deck entities.Deck
	if err := row.Scan(deckFields(&deck)...); err != nil {
		return nil, err
	}
	return &deck, nil
}

func deckFields(deck *entities.Deck) []any {
	return []any{
		&deck.ID,
		&deck.OwnerID,
		&deck.Slug,
		&deck.Name,
		&deck.Description,
		&deck.CreatedAt,
	}
}
