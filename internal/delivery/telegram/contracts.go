package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/service"
)

//go:generate mockgen -destination=mock/mock_contracts.go -package=mock . FlashcardService

// Bot is the subset of the Telegram API client used by the handler.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// FlashcardService is implemented by service.FlashcardService.
type FlashcardService interface {
	EnsureUser(ctx context.Context, profile entities.Profile) error
	AddWords(ctx context.Context, profile entities.Profile, words []string) ([]service.CreationResult, error)
	GetNextCard(ctx context.Context, userID int64, deckID *int64) (*service.StudyCard, error)
	GetUserCard(ctx context.Context, userID, userCardID int64) (*service.StudyCard, error)
	RecordReview(ctx context.Context, userID, userCardID int64, rating entities.Rating) (*entities.UserCard, error)
	ListUserDecks(ctx context.Context, profile entities.Profile) ([]entities.DeckSummary, error)
	CreateDeck(ctx context.Context, profile entities.Profile, name string, description *string) (*entities.DeckSummary, error)
	SetActiveDeck(ctx context.Context, profile entities.Profile, deckID int64) (*entities.Deck, error)
	SetReminders(ctx context.Context, profile entities.Profile, enabled bool) error
}
