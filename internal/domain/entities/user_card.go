package entities

import "time"

// UserCard is the per-user scheduling record of one card in one deck.
// The same card may be assigned to several decks of one user; every
// assignment keeps its own interval and due date.
type UserCard struct {
	ID     int64
	UserID int64
	DeckID int64
	CardID int64

	// Scheduling fields.
	LastRating      *Rating    // nil until the first review
	IntervalMinutes int        // current interval, always >= 0
	ReviewCount     int        // incremented on every review
	NextReviewAt    time.Time  // due date
	LastReviewedAt  *time.Time // nil until the first review

	CreatedAt time.Time
}

// UserCardDetails is an assignment joined with its card and deck name.
type UserCardDetails struct {
	UserCard
	Card     Card
	DeckName string
}

// NewUserCard creates a fresh assignment that is due immediately.
func NewUserCard(userID, deckID, cardID int64, now time.Time) *UserCard {
	return &UserCard{
		UserID:       userID,
		DeckID:       deckID,
		CardID:       cardID,
		NextReviewAt: now,
		CreatedAt:    now,
	}
}

// ApplyReview records a review at the given time and moves the due date
// forward by intervalMinutes.
func (uc *UserCard) ApplyReview(rating Rating, intervalMinutes int, at time.Time) {
	intervalMinutes = max(intervalMinutes, 0)

	uc.LastRating = &rating
	uc.IntervalMinutes = intervalMinutes
	uc.ReviewCount++
	uc.LastReviewedAt = &at
	uc.NextReviewAt = at.Add(time.Duration(intervalMinutes) * time.Minute)
}

// IsDue reports whether the assignment is due at asOf.
func (uc *UserCard) IsDue(asOf time.Time) bool {
	return !uc.NextReviewAt.After(asOf)
}
