package httpapi

import (
	"context"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/service"
)

//go:generate mockgen -destination=mock/mock_contracts.go -package=mock . FlashcardService

// FlashcardService is implemented by service.FlashcardService.
type FlashcardService interface {
	ListUserDecks(ctx context.Context, profile entities.Profile) ([]entities.DeckSummary, error)
	CreateDeck(ctx context.Context, profile entities.Profile, name string, description *string) (*entities.DeckSummary, error)
	UpdateDeck(ctx context.Context, profile entities.Profile, deckID int64, name, description *string) (*entities.DeckSummary, error)
	DeleteDeck(ctx context.Context, profile entities.Profile, deckID int64) error
	ListDeckCards(ctx context.Context, profile entities.Profile, deckID int64) ([]entities.UserCardDetails, error)
	CreateCardForDeck(ctx context.Context, profile entities.Profile, deckID int64, prompt string) (*service.CreationResult, error)
	RemoveCardFromDeck(ctx context.Context, profile entities.Profile, deckID, userCardID int64) error
	GetNextCard(ctx context.Context, userID int64, deckID *int64) (*service.StudyCard, error)
	GetUserCard(ctx context.Context, userID, userCardID int64) (*service.StudyCard, error)
	RecordReview(ctx context.Context, userID, userCardID int64, rating entities.Rating) (*entities.UserCard, error)
}
