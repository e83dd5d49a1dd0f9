package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	defer h.answerCallback(cb.ID)

	if cb.Message == nil || cb.From == nil {
		h.logger.Debug("callback without message or sender", zap.String("data", cb.Data))
		return
	}
	h.logger.Debug("callback sender", zap.Int64("user_id", cb.From.ID))

	chatID := cb.Message.Chat.ID
	msgID := cb.Message.MessageID
	profile := profileOf(cb.From)
	data := decodeCallback(cb.Data)

	var fn HandlerFunc

	switch data.Action {
	case actionReveal:
		fn = h.revealCallback(profile.UserID, msgID, data)
	case actionRate:
		fn = h.rateCallback(profile.UserID, msgID, data)
	case actionDeck:
		fn = h.deckCallback(profile, data)
	case actionReminders:
		fn = h.remindersCallback(profile, msgID, data)
	case actionNext:
		fn = h.nextHandler(profile.UserID, nil)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		return
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) answerCallback(id string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, "")); err != nil {
		h.logger.Warn("callback answer error", zap.Error(err))
	}
}

// revealCallback shows the hidden side of a card and the rating buttons.
func (h *Handler) revealCallback(userID int64, msgID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		userCardID, ok := data.int64Param(0)
		if !ok {
			return fmt.Errorf("%w: bad callback %q", service.ErrInvalidArgument, data.Raw)
		}

		side := entities.CardSide(data.param(1))
		if side != entities.SideTarget {
			side = entities.SideSource
		}

		card, err := h.flashcards.GetUserCard(ctx, userID, userCardID)
		if err != nil {
			return err
		}

		edit := newEdit(chatID, msgID, formatRevealed(card, side))
		kb := buildRatingKeyboard(userCardID, data.deckScope(2))
		edit.ReplyMarkup = &kb
		return h.send(edit)
	}
}

// rateCallback records the rating, freezes the rated message and sends
// the next due card.
func (h *Handler) rateCallback(userID int64, msgID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		userCardID, ok := data.int64Param(0)
		if !ok {
			return fmt.Errorf("%w: bad callback %q", service.ErrInvalidArgument, data.Raw)
		}

		rating, err := entities.ParseRating(data.param(1))
		if err != nil {
			return fmt.Errorf("%w: %w", service.ErrInvalidArgument, err)
		}

		uc, err := h.flashcards.RecordReview(ctx, userID, userCardID, rating)
		if err != nil {
			return err
		}

		card, err := h.flashcards.GetUserCard(ctx, userID, userCardID)
		if err != nil {
			return err
		}

		text := formatRated(formatRevealed(card, entities.SideSource), rating, uc.IntervalMinutes)
		if err := h.send(newEdit(chatID, msgID, text)); err != nil {
			return err
		}

		return h.nextHandler(userID, data.deckScope(2))(ctx, chatID)
	}
}

func (h *Handler) deckCallback(profile entities.Profile, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		deckID, ok := data.int64Param(1)
		if !ok {
			return fmt.Errorf("%w: bad callback %q", service.ErrInvalidArgument, data.Raw)
		}

		switch data.param(0) {
		case deckUse:
			deck, err := h.flashcards.SetActiveDeck(ctx, profile, deckID)
			if err != nil {
				return err
			}
			return h.send(newMessage(chatID, formatDeckActivated(deck)))

		case deckTrain:
			return h.nextHandler(profile.UserID, &deckID)(ctx, chatID)

		default:
			return fmt.Errorf("%w: bad callback %q", service.ErrInvalidArgument, data.Raw)
		}
	}
}

func (h *Handler) remindersCallback(profile entities.Profile, msgID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		var enabled bool
		switch data.param(0) {
		case remindersOn:
			enabled = true
		case remindersOff:
		default:
			return fmt.Errorf("%w: bad callback %q", service.ErrInvalidArgument, data.Raw)
		}

		if err := h.flashcards.SetReminders(ctx, profile, enabled); err != nil {
			return err
		}

		text := msgRemindersOff
		if enabled {
			text = msgRemindersOn
		}
		return h.send(tgbotapi.NewEditMessageText(chatID, msgID, text))
	}
}
