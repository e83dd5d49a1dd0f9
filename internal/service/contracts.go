package service

import (
	"context"
	"time"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mock_service . ContentGenerator,ReminderNotifier,ReminderRepository,UserRepository

// Transactor runs fn atomically. Nested calls must be isolated from the
// enclosing call, so that a failing inner fn leaves the outer one usable.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	Upsert(ctx context.Context, user *entities.User) (bool, error)
	GetByID(ctx context.Context, userID int64) (*entities.User, error)
	SetActiveDeck(ctx context.Context, userID int64, deckID *int64) error
	SetReminders(ctx context.Context, userID int64, enabled bool) error
	MarkReminded(ctx context.Context, userID int64, at time.Time) error
}

type CardRepository interface {
	FindBySourceKey(ctx context.Context, key string) (*entities.Card, error)
	FindByTargetKey(ctx context.Context, key string) (*entities.Card, error)
	Create(ctx context.Context, card *entities.Card) error
}

type DeckRepository interface {
	EnsureDefault(ctx context.Context, ownerID int64, now time.Time) (*entities.Deck, error)
	Create(ctx context.Context, deck *entities.Deck) error
	Get(ctx context.Context, ownerID, deckID int64) (*entities.Deck, error)
	Update(ctx context.Context, ownerID, deckID int64, name, description *string) (*entities.Deck, error)
	Delete(ctx context.Context, ownerID, deckID int64) error
	List(ctx context.Context, ownerID int64, asOf time.Time) ([]entities.DeckSummary, error)
	Stats(ctx context.Context, deckID int64, asOf time.Time) (cardCount, dueCount int, err error)
}

type UserCardRepository interface {
	Ensure(ctx context.Context, uc *entities.UserCard) (bool, error)
	NextDue(ctx context.Context, userID int64, deckID *int64, asOf time.Time) (*entities.UserCardDetails, error)
	GetByID(ctx context.Context, userID, id int64) (*entities.UserCardDetails, error)
	Lock(ctx context.Context, userID, id int64) (*entities.UserCard, error)
	SaveReview(ctx context.Context, uc *entities.UserCard) error
	ListInDeck(ctx context.Context, userID, deckID int64) ([]entities.UserCardDetails, error)
	Remove(ctx context.Context, userID, deckID, id int64) error
}

type ReminderRepository interface {
	GetDueBatch(ctx context.Context, asOf, remindedBefore time.Time, afterUserID int64, limit int) ([]entities.DueSummary, error)
}

// ContentGenerator produces card content for a word typed by the user.
type ContentGenerator interface {
	Generate(ctx context.Context, word string) (*entities.CardContent, error)
}

// ReminderNotifier delivers due-card reminders to users.
type ReminderNotifier interface {
	SendDueReminder(userID int64, dueCount int) error
}
