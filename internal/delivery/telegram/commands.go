package telegram

import (
	"context"
	"strings"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/service"
)

func (h *Handler) startHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, welcomeMarkdownV2()))
	}
}

func (h *Handler) helpHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgHelp))
	}
}

// addHandler adds the words in text to the user's active deck.
func (h *Handler) addHandler(profile entities.Profile, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if strings.TrimSpace(text) == "" {
			return h.send(newPlainMessage(chatID, msgUseAdd))
		}

		results, err := h.flashcards.AddWords(ctx, profile, splitWords(text))
		if err != nil {
			return err
		}
		if len(results) == 1 && results[0].Input == "" {
			return h.send(newPlainMessage(chatID, service.MsgNoWords))
		}

		msg := newMessage(chatID, formatAddResults(results))
		msg.ReplyMarkup = buildNextKeyboard(msgStartReview)
		return h.send(msg)
	}
}

// nextHandler sends the next due card, optionally limited to one deck.
func (h *Handler) nextHandler(userID int64, deckID *int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		card, err := h.flashcards.GetNextCard(ctx, userID, deckID)
		if err != nil {
			return err
		}
		if card == nil {
			return h.send(newPlainMessage(chatID, msgNothingDue))
		}

		msg := newMessage(chatID, formatPrompt(card))
		msg.ReplyMarkup = buildRevealKeyboard(card.UserCardID, card.PromptSide, deckID)
		return h.send(msg)
	}
}

func (h *Handler) decksHandler(profile entities.Profile) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		decks, err := h.flashcards.ListUserDecks(ctx, profile)
		if err != nil {
			return err
		}
		if len(decks) == 0 {
			return h.send(newPlainMessage(chatID, msgNoDecks))
		}

		msg := newMessage(chatID, formatDecks(decks))
		msg.ReplyMarkup = buildDecksKeyboard(decks)
		return h.send(msg)
	}
}

// newDeckHandler creates a deck and makes it active.
func (h *Handler) newDeckHandler(profile entities.Profile, name string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		name = strings.TrimSpace(name)
		if name == "" {
			return h.send(newPlainMessage(chatID, msgUseNewDeck))
		}

		deck, err := h.flashcards.CreateDeck(ctx, profile, name, nil)
		if err != nil {
			return err
		}
		if _, err := h.flashcards.SetActiveDeck(ctx, profile, deck.ID); err != nil {
			return err
		}

		return h.send(newMessage(chatID, formatDeckCreated(deck)))
	}
}

func (h *Handler) remindersHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newPlainMessage(chatID, msgReminders)
		msg.ReplyMarkup = buildRemindersKeyboard()
		return h.send(msg)
	}
}
