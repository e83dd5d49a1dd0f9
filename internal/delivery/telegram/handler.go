package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

type Handler struct {
	bot        Bot
	logger     *zap.Logger
	flashcards FlashcardService
}

func NewHandler(bot Bot, logger *zap.Logger, flashcards FlashcardService) *Handler {
	return &Handler{
		bot:        bot,
		logger:     logger,
		flashcards: flashcards,
	}
}

// Run processes updates until ctx is cancelled or the channel is closed.
func (h *Handler) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received", zap.String("data", update.CallbackQuery.Data))
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	profile := profileOf(update.Message.From)
	if err := h.flashcards.EnsureUser(ctx, profile); err != nil {
		h.logger.Error("failed to ensure user",
			zap.Int64("user_id", profile.UserID),
			zap.Error(err),
		)
	}

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		args := update.Message.CommandArguments()

		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.startHandler())(ctx, chatID)

		case "help":
			_ = h.withErrorHandling(h.helpHandler())(ctx, chatID)

		case "add":
			_ = h.withErrorHandling(h.addHandler(profile, args))(ctx, chatID)

		case "next":
			_ = h.withErrorHandling(h.nextHandler(profile.UserID, nil))(ctx, chatID)

		case "decks":
			_ = h.withErrorHandling(h.decksHandler(profile))(ctx, chatID)

		case "newdeck":
			_ = h.withErrorHandling(h.newDeckHandler(profile, args))(ctx, chatID)

		case "reminders":
			_ = h.withErrorHandling(h.remindersHandler())(ctx, chatID)

		default:
			h.sendError(chatID, msgUnknownCommand)
		}

		return
	}

	_ = h.withErrorHandling(h.addHandler(profile, update.Message.Text))(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}

func profileOf(u *tgbotapi.User) entities.Profile {
	return entities.NewProfile(u.ID, u.UserName, u.FirstName, u.LastName)
}

// splitWords splits free text into words on commas, semicolons and newlines.
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})
}
