package repository

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

var testNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

// setupTestDB creates a pgxmock pool that is checked for unmet expectations on cleanup.
func setupTestDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock
}

func ptr[T any](v T) *T {
	return &v
}

var (
	cardRowColumns = []string{
		"id", "source_text", "source_lang", "normalized_source_text",
		"target_text", "target_lang", "normalized_target_text",
		"example_sentence", "example_translation", "part_of_speech", "extra",
		"created_at", "updated_at",
	}
	deckRowColumns     = []string{"id", "owner_id", "slug", "name", "description", "created_at"}
	userCardRowColumns = []string{
		"id", "user_id", "deck_id", "card_id", "last_rating",
		"interval_minutes", "review_count", "next_review_at",
		"last_reviewed_at", "created_at",
	}
)

func cardRowValues(c entities.Card) []any {
	return []any{
		c.ID, c.SourceText, c.SourceLang, c.NormalizedSourceText,
		c.TargetText, c.TargetLang, c.NormalizedTargetText,
		c.ExampleSentence, c.ExampleTranslation, c.PartOfSpeech, nil,
		c.CreatedAt, c.UpdatedAt,
	}
}

func userCardRowValues(uc entities.UserCard) []any {
	return []any{
		uc.ID, uc.UserID, uc.DeckID, uc.CardID, ratingValue(uc.LastRating),
		uc.IntervalMinutes, uc.ReviewCount, uc.NextReviewAt,
		uc.LastReviewedAt, uc.CreatedAt,
	}
}

func cardRows(cards ...entities.Card) *pgxmock.Rows {
	rows := pgxmock.NewRows(cardRowColumns)
	for _, c := range cards {
		rows.AddRow(cardRowValues(c)...)
	}
	return rows
}

func userCardRows(ucs ...entities.UserCard) *pgxmock.Rows {
	rows := pgxmock.NewRows(userCardRowColumns)
	for _, uc := range ucs {
		rows.AddRow(userCardRowValues(uc)...)
	}
	return rows
}

func detailsRows(items ...entities.UserCardDetails) *pgxmock.Rows {
	columns := append(append(append([]string{}, userCardRowColumns...), cardRowColumns...), "deck_name")

	rows := pgxmock.NewRows(columns)
	for _, d := range items {
		values := append(userCardRowValues(d.UserCard), cardRowValues(d.Card)...)
		rows.AddRow(append(values, d.DeckName)...)
	}
	return rows
}

func testCard(id int64, source, target string) entities.Card {
	card := entities.NewCard(entities.CardContent{
		SourceText:         source,
		TargetText:         target,
		ExampleSentence:    "example",
		ExampleTranslation: "пример",
	}, "ru", "el", testNow)
	card.ID = id
	return *card
}
