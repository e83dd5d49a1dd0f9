package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

// CreateDeck creates a deck owned by the user. A taken slug gets a
// numeric suffix.
func (s *FlashcardService) CreateDeck(
	ctx context.Context,
	profile entities.Profile,
	name string,
	description *string,
) (*entities.DeckSummary, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalidArgument("deck name is empty")
	}

	now := s.now()
	var summary *entities.DeckSummary

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.upsertUser(ctx, profile, now)
		if err != nil {
			return err
		}

		deck := entities.NewDeck(user.ID, name, trimmedOrNil(description), now)
		if err := s.decks.Create(ctx, deck); err != nil {
			return err
		}

		summary = &entities.DeckSummary{Deck: *deck}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("deck created",
		zap.Int64("user_id", profile.UserID),
		zap.Int64("deck_id", summary.ID),
		zap.String("slug", summary.Slug),
	)

	return summary, nil
}

// UpdateDeck renames the deck and/or changes its description. Nil
// arguments keep the stored values.
func (s *FlashcardService) UpdateDeck(
	ctx context.Context,
	profile entities.Profile,
	deckID int64,
	name, description *string,
) (*entities.DeckSummary, error) {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, invalidArgument("deck name is empty")
		}
		name = &trimmed
	}

	now := s.now()
	var summary *entities.DeckSummary

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.upsertUser(ctx, profile, now)
		if err != nil {
			return err
		}

		deck, err := s.decks.Update(ctx, user.ID, deckID, name, trimmedOrNil(description))
		if err != nil {
			return mapNotFound(err)
		}

		cardCount, dueCount, err := s.decks.Stats(ctx, deck.ID, now)
		if err != nil {
			return err
		}

		summary = &entities.DeckSummary{
			Deck:      *deck,
			CardCount: cardCount,
			DueCount:  dueCount,
			Active:    isActive(user, deck.ID),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// DeleteDeck removes the deck with all of its assignments.
func (s *FlashcardService) DeleteDeck(ctx context.Context, profile entities.Profile, deckID int64) error {
	now := s.now()

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.upsertUser(ctx, profile, now)
		if err != nil {
			return err
		}
		return mapNotFound(s.decks.Delete(ctx, user.ID, deckID))
	})
	if err != nil {
		return err
	}

	s.logger.Info("deck deleted", zap.Int64("user_id", profile.UserID), zap.Int64("deck_id", deckID))
	return nil
}

// ListUserDecks returns the user's decks with counters. The default deck
// is created on first use so the list is never empty.
func (s *FlashcardService) ListUserDecks(ctx context.Context, profile entities.Profile) ([]entities.DeckSummary, error) {
	now := s.now()
	var decks []entities.DeckSummary

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.upsertUser(ctx, profile, now)
		if err != nil {
			return err
		}

		if _, err := s.decks.EnsureDefault(ctx, user.ID, now); err != nil {
			return err
		}

		decks, err = s.decks.List(ctx, user.ID, now)
		if err != nil {
			return err
		}

		for i := range decks {
			decks[i].Active = isActive(user, decks[i].ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return decks, nil
}

// SetActiveDeck makes the deck the target of plain-text word additions.
func (s *FlashcardService) SetActiveDeck(ctx context.Context, profile entities.Profile, deckID int64) (*entities.Deck, error) {
	now := s.now()
	var deck *entities.Deck

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.upsertUser(ctx, profile, now)
		if err != nil {
			return err
		}

		deck, err = s.decks.Get(ctx, user.ID, deckID)
		if err != nil {
			return mapNotFound(err)
		}

		return s.users.SetActiveDeck(ctx, user.ID, &deck.ID)
	})
	if err != nil {
		return nil, err
	}

	return deck, nil
}

// ListDeckCards returns every assignment in the deck, soonest due first.
func (s *FlashcardService) ListDeckCards(
	ctx context.Context,
	profile entities.Profile,
	deckID int64,
) ([]entities.UserCardDetails, error) {
	now := s.now()
	var cards []entities.UserCardDetails

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.upsertUser(ctx, profile, now)
		if err != nil {
			return err
		}

		if _, err := s.decks.Get(ctx, user.ID, deckID); err != nil {
			return mapNotFound(err)
		}

		cards, err = s.userCards.ListInDeck(ctx, user.ID, deckID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return cards, nil
}

// RemoveCardFromDeck detaches one assignment. The canonical card stays.
func (s *FlashcardService) RemoveCardFromDeck(
	ctx context.Context,
	profile entities.Profile,
	deckID, userCardID int64,
) error {
	now := s.now()

	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err := s.upsertUser(ctx, profile, now)
		if err != nil {
			return err
		}

		if _, err := s.decks.Get(ctx, user.ID, deckID); err != nil {
			return mapNotFound(err)
		}

		return mapNotFound(s.userCards.Remove(ctx, user.ID, deckID, userCardID))
	})
}

func isActive(user *entities.User, deckID int64) bool {
	return user.ActiveDeckID != nil && *user.ActiveDeckID == deckID
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
