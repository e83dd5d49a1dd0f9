package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/infra/postgres/repository"
)

// MsgNoWords is the result error for a batch without usable words.
const MsgNoWords = "Не удалось распознать слова для добавления."

// Repositories groups the stores used by FlashcardService.
type Repositories struct {
	Users     UserRepository
	Cards     CardRepository
	Decks     DeckRepository
	UserCards UserCardRepository
}

// FlashcardService orchestrates cards, decks and review scheduling.
// Every exported method runs in one transaction and reads the clock once.
type FlashcardService struct {
	tx        Transactor
	users     UserRepository
	cards     CardRepository
	decks     DeckRepository
	userCards UserCardRepository
	generator ContentGenerator
	langs     Languages
	logger    *zap.Logger

	now      func() time.Time
	flipCoin func() bool
}

// NewFlashcardService creates a new flashcard service.
func NewFlashcardService(
	tx Transactor,
	repos Repositories,
	generator ContentGenerator,
	langs Languages,
	logger *zap.Logger,
) *FlashcardService {
	return &FlashcardService{
		tx:        tx,
		users:     repos.Users,
		cards:     repos.Cards,
		decks:     repos.Decks,
		userCards: repos.UserCards,
		generator: generator,
		langs:     langs,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		flipCoin:  func() bool { return rand.IntN(2) == 0 },
	}
}

// EnsureUser creates or refreshes the user record.
func (s *FlashcardService) EnsureUser(ctx context.Context, profile entities.Profile) error {
	now := s.now()
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		_, err := s.upsertUser(ctx, profile, now)
		return err
	})
}

// AddWords adds every non-blank word to the user's active deck, falling
// back to the default deck. Failures are reported per word; one bad word
// never aborts the batch.
func (s *FlashcardService) AddWords(ctx context.Context, profile entities.Profile, words []string) ([]CreationResult, error) {
	cleaned := cleanWords(words)
	if len(cleaned) == 0 {
		return []CreationResult{{Error: MsgNoWords}}, nil
	}

	now := s.now()
	var results []CreationResult

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		results = make([]CreationResult, 0, len(cleaned))

		user, err := s.upsertUser(ctx, profile, now)
		if err != nil {
			return err
		}

		deck, err := s.targetDeck(ctx, user, now)
		if err != nil {
			return err
		}

		for _, word := range cleaned {
			var res CreationResult

			err := checkWord(word)
			if err == nil {
				// Each word gets its own savepoint.
				err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
					var linkErr error
					res, linkErr = s.linkWord(ctx, user.ID, deck.ID, word, false, now)
					return linkErr
				})
			}
			if err != nil {
				s.logger.Warn("failed to add word",
					zap.Int64("user_id", user.ID),
					zap.String("word", word),
					zap.Error(err),
				)
				res = CreationResult{Input: word, Error: err.Error()}
			}

			results = append(results, res)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// CreateCardForDeck adds a single word or phrase to the given deck. The
// prompt may be written in either language.
func (s *FlashcardService) CreateCardForDeck(
	ctx context.Context,
	profile entities.Profile,
	deckID int64,
	prompt string,
) (*CreationResult, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, invalidArgument("prompt is empty")
	}
	if err := checkWord(prompt); err != nil {
		return nil, err
	}

	now := s.now()
	var res CreationResult

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.upsertUser(ctx, profile, now)
		if err != nil {
			return err
		}

		if _, err := s.decks.Get(ctx, user.ID, deckID); err != nil {
			return mapNotFound(err)
		}

		res, err = s.linkWord(ctx, user.ID, deckID, prompt, true, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// GetNextCard returns the earliest due card, or nil when nothing is due.
func (s *FlashcardService) GetNextCard(ctx context.Context, userID int64, deckID *int64) (*StudyCard, error) {
	now := s.now()
	var card *StudyCard

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		details, err := s.userCards.NextDue(ctx, userID, deckID, now)
		if err != nil {
			return err
		}
		if details != nil {
			card = s.studyCard(details)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// GetUserCard returns one of the user's assignments.
func (s *FlashcardService) GetUserCard(ctx context.Context, userID, userCardID int64) (*StudyCard, error) {
	var card *StudyCard

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		details, err := s.userCards.GetByID(ctx, userID, userCardID)
		if err != nil {
			return mapNotFound(err)
		}
		card = s.studyCard(details)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// RecordReview applies a rating to the user's assignment and schedules
// the next review.
func (s *FlashcardService) RecordReview(
	ctx context.Context,
	userID, userCardID int64,
	rating entities.Rating,
) (*entities.UserCard, error) {
	if !rating.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, entities.ErrInvalidRating)
	}

	now := s.now()
	var uc *entities.UserCard

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		uc, err = s.userCards.Lock(ctx, userID, userCardID)
		if err != nil {
			return mapNotFound(err)
		}

		interval := entities.NextInterval(uc.IntervalMinutes, uc.ReviewCount, rating)
		uc.ApplyReview(rating, interval, now)

		if err := s.userCards.SaveReview(ctx, uc); err != nil {
			return mapNotFound(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("review recorded",
		zap.Int64("user_id", userID),
		zap.Int64("user_card_id", userCardID),
		zap.String("rating", rating.String()),
		zap.Int("interval_minutes", uc.IntervalMinutes),
	)

	return uc, nil
}

// ChooseDisplaySide picks which side of the card is shown first.
func (s *FlashcardService) ChooseDisplaySide(card *entities.Card) (prompt, hidden string, side entities.CardSide) {
	side = entities.SideTarget
	if s.flipCoin() {
		side = entities.SideSource
	}

	prompt, hidden = card.Sides(side)
	return prompt, hidden, side
}

// SetReminders turns due-card reminders on or off for the user.
func (s *FlashcardService) SetReminders(ctx context.Context, profile entities.Profile, enabled bool) error {
	now := s.now()
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.upsertUser(ctx, profile, now)
		if err != nil {
			return err
		}
		return s.users.SetReminders(ctx, user.ID, enabled)
	})
}

// linkWord finds or creates the card for text and assigns it to the deck.
func (s *FlashcardService) linkWord(
	ctx context.Context,
	userID, deckID int64,
	text string,
	byTarget bool,
	now time.Time,
) (CreationResult, error) {
	card, created, err := s.resolveCard(ctx, text, byTarget, now)
	if err != nil {
		return CreationResult{}, err
	}

	uc := entities.NewUserCard(userID, deckID, card.ID, now)
	linked, err := s.userCards.Ensure(ctx, uc)
	if err != nil {
		return CreationResult{}, fmt.Errorf("ensure user card: %w", err)
	}

	return CreationResult{
		Input:              text,
		UserCardID:         uc.ID,
		Card:               card,
		CreatedCard:        created,
		ReusedExistingCard: !created,
		LinkedToUser:       linked,
	}, nil
}

// resolveCard returns the canonical card for text, generating it when no
// card matches. The bool reports whether a new card was created.
func (s *FlashcardService) resolveCard(
	ctx context.Context,
	text string,
	byTarget bool,
	now time.Time,
) (*entities.Card, bool, error) {
	key := entities.Normalize(text)

	// 1. Look up by the source side.
	card, err := s.cards.FindBySourceKey(ctx, key)
	if err == nil {
		return card, false, nil
	}
	if !errors.Is(err, repository.ErrCardNotFound) {
		return nil, false, err
	}

	// 2. The user may have typed the foreign word.
	if byTarget {
		card, err = s.cards.FindByTargetKey(ctx, key)
		if err == nil {
			return card, false, nil
		}
		if !errors.Is(err, repository.ErrCardNotFound) {
			return nil, false, err
		}
	}

	// 3. Generate new content.
	content, err := s.generator.Generate(ctx, text)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	if strings.TrimSpace(content.SourceText) == "" {
		content.SourceText = text
	}
	if strings.TrimSpace(content.TargetText) == "" {
		return nil, false, fmt.Errorf("%w: empty translation for %q", ErrGenerationFailed, text)
	}

	card = entities.NewCard(*content, s.langs.Source, s.langs.Target, now)
	for _, text := range []string{card.SourceText, card.TargetText} {
		if err := entities.CheckKeyLength(text); err != nil {
			return nil, false, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		}
	}

	// 4. Insert in a savepoint so a unique violation does not poison the
	// enclosing transaction.
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.cards.Create(ctx, card)
	})
	if errors.Is(err, repository.ErrDuplicateKey) {
		// Someone created it first, or the generator normalized the word
		// into an existing card.
		existing, err := s.cards.FindBySourceKey(ctx, card.NormalizedSourceText)
		if err != nil {
			return nil, false, fmt.Errorf("find card after conflict: %w", err)
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return card, true, nil
}

// targetDeck returns the active deck, or the default deck when none is
// set or the active one is gone.
func (s *FlashcardService) targetDeck(ctx context.Context, user *entities.User, now time.Time) (*entities.Deck, error) {
	if user.ActiveDeckID != nil {
		deck, err := s.decks.Get(ctx, user.ID, *user.ActiveDeckID)
		if err == nil {
			return deck, nil
		}
		if !errors.Is(err, repository.ErrDeckNotFound) {
			return nil, err
		}
	}

	return s.decks.EnsureDefault(ctx, user.ID, now)
}

func (s *FlashcardService) upsertUser(ctx context.Context, profile entities.Profile, now time.Time) (*entities.User, error) {
	if profile.UserID <= 0 {
		return nil, invalidArgument("user id must be positive")
	}

	user := entities.NewUser(profile, now)
	if _, err := s.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *FlashcardService) studyCard(details *entities.UserCardDetails) *StudyCard {
	prompt, hidden, side := s.ChooseDisplaySide(&details.Card)

	return &StudyCard{
		UserCardID: details.ID,
		DeckID:     details.DeckID,
		DeckName:   details.DeckName,
		Card:       details.Card,
		Prompt:     prompt,
		Hidden:     hidden,
		PromptSide: side,
	}
}

// checkWord rejects input that cannot become a card key, before any
// generator call is paid for.
func checkWord(word string) error {
	if err := entities.CheckKeyLength(word); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

func cleanWords(words []string) []string {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			cleaned = append(cleaned, w)
		}
	}
	return cleaned
}
