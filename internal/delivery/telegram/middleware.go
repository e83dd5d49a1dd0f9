package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs handler errors and replies with a user-facing message.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		switch {
		case errors.Is(err, service.ErrNotFound):
			h.logger.Debug("not found", zap.Int64("chat_id", chatID), zap.Error(err))
			h.sendError(chatID, msgNotFound)
		case errors.Is(err, service.ErrInvalidArgument):
			h.logger.Debug("invalid argument", zap.Int64("chat_id", chatID), zap.Error(err))
			h.sendError(chatID, msgInvalidInput)
		default:
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}
