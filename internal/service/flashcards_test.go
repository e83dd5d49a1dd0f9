package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	mock_service "github.com/aliskhannn/flashcards-bot/internal/service/mocks"
)

var t0 = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestService(t *testing.T, setupMock func(*mock_service.MockContentGenerator)) (*FlashcardService, *memStore, *testClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gen := mock_service.NewMockContentGenerator(ctrl)
	if setupMock != nil {
		setupMock(gen)
	}

	store := newMemStore()
	clock := &testClock{t: t0}

	svc := NewFlashcardService(store, store.repos(), gen, Languages{Source: "ru", Target: "el"}, zap.NewNop())
	svc.now = clock.Now
	svc.flipCoin = func() bool { return true }

	return svc, store, clock
}

func content(source, target string) *entities.CardContent {
	return &entities.CardContent{
		SourceText:         source,
		TargetText:         target,
		ExampleSentence:    "Пример с " + source + ".",
		ExampleTranslation: "Παράδειγμα με " + target + ".",
	}
}

func profile(id int64) entities.Profile {
	return entities.NewProfile(id, "user", "Test", "")
}

func TestFlashcardService_AddWords_EmptyBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		words []string
	}{
		{name: "nil", words: nil},
		{name: "blank entries", words: []string{"", "  ", "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, store, _ := newTestService(t, nil)

			results, err := svc.AddWords(context.Background(), profile(1), tt.words)

			require.NoError(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, MsgNoWords, results[0].Error)
			assert.True(t, results[0].Failed())
			assert.Empty(t, store.users)
			assert.Empty(t, store.decks)
			assert.Empty(t, store.cards)
		})
	}
}

func TestFlashcardService_AddWords_FreshWordScenario(t *testing.T) {
	t.Parallel()

	svc, store, clock := newTestService(t, func(g *mock_service.MockContentGenerator) {
		g.EXPECT().Generate(gomock.Any(), "привет").Return(content("привет", "γεια"), nil).Times(1)
	})
	ctx := context.Background()

	results, err := svc.AddWords(ctx, profile(1), []string{"привет"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	assert.Empty(t, res.Error)
	assert.True(t, res.CreatedCard)
	assert.False(t, res.ReusedExistingCard)
	assert.True(t, res.LinkedToUser)
	assert.Equal(t, "γεια", res.Card.TargetText)

	ucs := store.userCardsOf(1)
	require.Len(t, ucs, 1)
	assert.Equal(t, 0, ucs[0].IntervalMinutes)
	assert.Equal(t, t0, ucs[0].NextReviewAt)

	// Lands in the implicit default deck.
	deck := store.decks[ucs[0].DeckID]
	assert.Equal(t, entities.DefaultDeckSlug, deck.Slug)

	clock.Advance(time.Minute)
	uc, err := svc.RecordReview(ctx, 1, res.UserCardID, entities.RatingAgain)
	require.NoError(t, err)
	assert.Equal(t, 10, uc.IntervalMinutes)
	assert.Equal(t, 1, uc.ReviewCount)
	assert.Equal(t, clock.Now().Add(10*time.Minute), uc.NextReviewAt)

	clock.Advance(10 * time.Minute)
	uc, err = svc.RecordReview(ctx, 1, res.UserCardID, entities.RatingEasy)
	require.NoError(t, err)
	assert.Equal(t, 4320, uc.IntervalMinutes)
	assert.Equal(t, 2, uc.ReviewCount)
	require.NotNil(t, uc.LastRating)
	assert.Equal(t, entities.RatingEasy, *uc.LastRating)
	assert.Equal(t, clock.Now().Add(72*time.Hour), uc.NextReviewAt)
}

func TestFlashcardService_AddWords_Dedup(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t, func(g *mock_service.MockContentGenerator) {
		g.EXPECT().Generate(gomock.Any(), "Доброе утро").Return(content("доброе утро", "καλημέρα"), nil).Times(1)
	})
	ctx := context.Background()

	first, err := svc.AddWords(ctx, profile(1), []string{"Доброе утро"})
	require.NoError(t, err)
	second, err := svc.AddWords(ctx, profile(2), []string{"  доброе   УТРО "})
	require.NoError(t, err)

	assert.True(t, first[0].CreatedCard)
	assert.False(t, second[0].CreatedCard)
	assert.True(t, second[0].ReusedExistingCard)
	assert.True(t, second[0].LinkedToUser)
	assert.Equal(t, "доброе   УТРО", second[0].Input)
	assert.Equal(t, first[0].Card.ID, second[0].Card.ID)
	assert.Len(t, store.cards, 1)
}

func TestFlashcardService_AddWords_AlreadyLinked(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t, nil)
	card := store.insertCard("кот", "γάτα", t0)
	ctx := context.Background()

	first, err := svc.AddWords(ctx, profile(1), []string{"кот"})
	require.NoError(t, err)
	second, err := svc.AddWords(ctx, profile(1), []string{"Кот"})
	require.NoError(t, err)

	assert.True(t, first[0].LinkedToUser)
	assert.False(t, second[0].LinkedToUser)
	assert.Equal(t, first[0].UserCardID, second[0].UserCardID)
	assert.Equal(t, card.ID, second[0].Card.ID)
	assert.Len(t, store.userCardsOf(1), 1)
}

func TestFlashcardService_AddWords_PartialFailure(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t, func(g *mock_service.MockContentGenerator) {
		gomock.InOrder(
			g.EXPECT().Generate(gomock.Any(), "дом").Return(content("дом", "σπίτι"), nil),
			g.EXPECT().Generate(gomock.Any(), "ыыы").Return(nil, errors.New("model refused")),
			g.EXPECT().Generate(gomock.Any(), "пусто").Return(content("пусто", " "), nil),
			g.EXPECT().Generate(gomock.Any(), "море").Return(content("море", "θάλασσα"), nil),
		)
	})

	results, err := svc.AddWords(context.Background(), profile(1), []string{"дом", "ыыы", "", "пусто", "море"})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, "дом", results[0].Input)
	assert.False(t, results[0].Failed())

	assert.Equal(t, "ыыы", results[1].Input)
	assert.Contains(t, results[1].Error, "model refused")

	assert.Equal(t, "пусто", results[2].Input)
	assert.True(t, results[2].Failed())

	assert.Equal(t, "море", results[3].Input)
	assert.False(t, results[3].Failed())

	assert.Len(t, store.cards, 2)
	assert.Len(t, store.userCardsOf(1), 2)
}

func TestFlashcardService_AddWords_TooLong(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("а", entities.MaxKeyLength+1)
	svc, store, _ := newTestService(t, func(g *mock_service.MockContentGenerator) {
		g.EXPECT().Generate(gomock.Any(), "кот").Return(content("кот", "γάτος"), nil)
	})

	results, err := svc.AddWords(context.Background(), profile(1), []string{long, "кот"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, long, results[0].Input)
	assert.Contains(t, results[0].Error, "text too long")
	assert.False(t, results[1].Failed())
	assert.Len(t, store.cards, 1)
}

func TestFlashcardService_AddWords_CreateRace(t *testing.T) {
	t.Parallel()

	var store *memStore
	svc, store, _ := newTestService(t, func(g *mock_service.MockContentGenerator) {
		g.EXPECT().Generate(gomock.Any(), "окно").DoAndReturn(func(context.Context, string) (*entities.CardContent, error) {
			// Another request stores the same card while generation runs.
			store.insertCard("окно", "παράθυρο", t0)
			return content("окно", "παράθυρο"), nil
		})
	})

	results, err := svc.AddWords(context.Background(), profile(1), []string{"окно"})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Empty(t, results[0].Error)
	assert.False(t, results[0].CreatedCard)
	assert.True(t, results[0].ReusedExistingCard)
	assert.True(t, results[0].LinkedToUser)
	assert.Len(t, store.cards, 1)
}

func TestFlashcardService_AddWords_UsesActiveDeck(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t, nil)
	store.insertCard("книга", "βιβλίο", t0)
	ctx := context.Background()

	deck, err := svc.CreateDeck(ctx, profile(1), "Чтение", nil)
	require.NoError(t, err)
	_, err = svc.SetActiveDeck(ctx, profile(1), deck.ID)
	require.NoError(t, err)

	_, err = svc.AddWords(ctx, profile(1), []string{"книга"})
	require.NoError(t, err)

	ucs := store.userCardsOf(1)
	require.Len(t, ucs, 1)
	assert.Equal(t, deck.ID, ucs[0].DeckID)

	// Deleting the active deck falls back to the default deck.
	require.NoError(t, svc.DeleteDeck(ctx, profile(1), deck.ID))

	_, err = svc.AddWords(ctx, profile(1), []string{"книга"})
	require.NoError(t, err)

	ucs = store.userCardsOf(1)
	require.Len(t, ucs, 1)
	assert.Equal(t, entities.DefaultDeckSlug, store.decks[ucs[0].DeckID].Slug)
}

func TestFlashcardService_AddWords_InvalidUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t, nil)

	_, err := svc.AddWords(context.Background(), profile(0), []string{"слово"})

	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFlashcardService_CreateCardForDeck(t *testing.T) {
	t.Parallel()

	type fixture struct {
		svc    *FlashcardService
		store  *memStore
		deckID int64
	}

	tests := []struct {
		name      string
		prompt    string
		setupMock func(*mock_service.MockContentGenerator)
		deckOwner int64
		assertFn  func(t *testing.T, f fixture, res *CreationResult)
		wantErr   error
	}{
		{
			name:   "found by target text",
			prompt: "Γάτα",
			assertFn: func(t *testing.T, f fixture, res *CreationResult) {
				assert.True(t, res.ReusedExistingCard)
				assert.Equal(t, "кошка", res.Card.SourceText)
				assert.Len(t, f.store.cards, 1)
			},
		},
		{
			name:   "generated",
			prompt: "собака",
			setupMock: func(g *mock_service.MockContentGenerator) {
				g.EXPECT().Generate(gomock.Any(), "собака").Return(content("собака", "σκύλος"), nil)
			},
			assertFn: func(t *testing.T, f fixture, res *CreationResult) {
				assert.True(t, res.CreatedCard)
				assert.True(t, res.LinkedToUser)
				assert.Len(t, f.store.userCardsOf(1), 1)
				assert.Equal(t, f.deckID, f.store.userCardsOf(1)[0].DeckID)
			},
		},
		{
			name:    "blank prompt",
			prompt:  "   ",
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "prompt too long",
			prompt:  strings.Repeat("слово ", entities.MaxKeyLength),
			wantErr: ErrInvalidArgument,
		},
		{
			name:   "generated translation too long",
			prompt: "тест",
			setupMock: func(g *mock_service.MockContentGenerator) {
				g.EXPECT().Generate(gomock.Any(), "тест").
					Return(content("тест", strings.Repeat("α", entities.MaxKeyLength+1)), nil)
			},
			wantErr: ErrGenerationFailed,
		},
		{
			name:      "foreign deck",
			prompt:    "кошка",
			deckOwner: 2,
			wantErr:   ErrNotFound,
		},
		{
			name:   "generator failure",
			prompt: "стол",
			setupMock: func(g *mock_service.MockContentGenerator) {
				g.EXPECT().Generate(gomock.Any(), "стол").Return(nil, errors.New("timeout"))
			},
			wantErr: ErrGenerationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, store, _ := newTestService(t, tt.setupMock)
			ctx := context.Background()
			store.insertCard("кошка", "γάτα", t0)

			owner := int64(1)
			if tt.deckOwner != 0 {
				owner = tt.deckOwner
			}
			deck, err := svc.CreateDeck(ctx, profile(owner), "Животные", nil)
			require.NoError(t, err)

			res, err := svc.CreateCardForDeck(ctx, profile(1), deck.ID, tt.prompt)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
				assert.Empty(t, store.userCardsOf(1))
				return
			}
			require.NoError(t, err)
			tt.assertFn(t, fixture{svc: svc, store: store, deckID: deck.ID}, res)
		})
	}
}

func TestFlashcardService_CreateCardForDeck_FinalSigma(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t, nil)
	store.insertCard("солнце", "ήλιος", t0)
	ctx := context.Background()

	deck, err := svc.CreateDeck(ctx, profile(1), "Небо", nil)
	require.NoError(t, err)

	res, err := svc.CreateCardForDeck(ctx, profile(1), deck.ID, "ΉΛΙΟΣ")

	require.NoError(t, err)
	assert.True(t, res.ReusedExistingCard)
	assert.Equal(t, "солнце", res.Card.SourceText)
	assert.Len(t, store.cards, 1)
}

func TestFlashcardService_IndependentScheduling(t *testing.T) {
	t.Parallel()

	svc, store, clock := newTestService(t, nil)
	store.insertCard("вода", "νερό", t0)
	ctx := context.Background()

	a, err := svc.CreateDeck(ctx, profile(1), "A", nil)
	require.NoError(t, err)
	b, err := svc.CreateDeck(ctx, profile(1), "B", nil)
	require.NoError(t, err)

	resA, err := svc.CreateCardForDeck(ctx, profile(1), a.ID, "вода")
	require.NoError(t, err)
	resB, err := svc.CreateCardForDeck(ctx, profile(1), b.ID, "вода")
	require.NoError(t, err)

	assert.Equal(t, resA.Card.ID, resB.Card.ID)
	assert.NotEqual(t, resA.UserCardID, resB.UserCardID)

	clock.Advance(time.Hour)
	_, err = svc.RecordReview(ctx, 1, resA.UserCardID, entities.RatingEasy)
	require.NoError(t, err)

	other := store.userCards[resB.UserCardID]
	assert.Equal(t, t0, other.NextReviewAt)
	assert.Equal(t, 0, other.ReviewCount)
	assert.Nil(t, other.LastRating)
}

func TestFlashcardService_OwnershipIsolation(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t, nil)
	store.insertCard("хлеб", "ψωμί", t0)
	ctx := context.Background()

	results, err := svc.AddWords(ctx, profile(2), []string{"хлеб"})
	require.NoError(t, err)
	foreignID := results[0].UserCardID

	card, err := svc.GetUserCard(ctx, 1, foreignID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, card)

	_, err = svc.RecordReview(ctx, 1, foreignID, entities.RatingEasy)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.userCards[foreignID].ReviewCount)

	own, err := svc.GetUserCard(ctx, 2, foreignID)
	require.NoError(t, err)
	assert.Equal(t, "хлеб", own.Card.SourceText)
}

func TestFlashcardService_DueOrdering(t *testing.T) {
	t.Parallel()

	svc, store, clock := newTestService(t, nil)
	ctx := context.Background()

	words := []string{"один", "два", "три"}
	for _, w := range words {
		store.insertCard(w, w+"-el", t0)
		_, err := svc.AddWords(ctx, profile(1), []string{w})
		require.NoError(t, err)
		clock.Advance(time.Minute)
	}

	for _, want := range words {
		next, err := svc.GetNextCard(ctx, 1, nil)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, want, next.Card.SourceText)

		_, err = svc.RecordReview(ctx, 1, next.UserCardID, entities.RatingReview)
		require.NoError(t, err)
	}

	next, err := svc.GetNextCard(ctx, 1, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestFlashcardService_GetNextCard_DeckFilter(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t, nil)
	store.insertCard("солнце", "ήλιος", t0)
	store.insertCard("луна", "φεγγάρι", t0)
	ctx := context.Background()

	_, err := svc.AddWords(ctx, profile(1), []string{"солнце"})
	require.NoError(t, err)
	sky, err := svc.CreateDeck(ctx, profile(1), "Небо", nil)
	require.NoError(t, err)
	_, err = svc.CreateCardForDeck(ctx, profile(1), sky.ID, "луна")
	require.NoError(t, err)

	next, err := svc.GetNextCard(ctx, 1, &sky.ID)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "луна", next.Card.SourceText)
	assert.Equal(t, "Небо", next.DeckName)
	assert.Equal(t, sky.ID, next.DeckID)
}

func TestFlashcardService_RecordReview_InvalidRating(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t, nil)

	_, err := svc.RecordReview(context.Background(), 1, 1, entities.Rating("hard"))

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, entities.ErrInvalidRating)
}

func TestFlashcardService_ChooseDisplaySide(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t, nil)
	card := &entities.Card{CardContent: entities.CardContent{SourceText: "мир", TargetText: "ειρήνη"}}

	svc.flipCoin = func() bool { return true }
	prompt, hidden, side := svc.ChooseDisplaySide(card)
	assert.Equal(t, []string{"мир", "ειρήνη"}, []string{prompt, hidden})
	assert.Equal(t, entities.SideSource, side)

	svc.flipCoin = func() bool { return false }
	prompt, hidden, side = svc.ChooseDisplaySide(card)
	assert.Equal(t, []string{"ειρήνη", "мир"}, []string{prompt, hidden})
	assert.Equal(t, entities.SideTarget, side)
}

func TestFlashcardService_SetReminders(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.EnsureUser(ctx, profile(5)))
	assert.True(t, store.users[5].RemindersEnabled)

	require.NoError(t, svc.SetReminders(ctx, profile(5), false))
	assert.False(t, store.users[5].RemindersEnabled)

	// A later profile refresh keeps the preference.
	require.NoError(t, svc.EnsureUser(ctx, profile(5)))
	assert.False(t, store.users[5].RemindersEnabled)
}
