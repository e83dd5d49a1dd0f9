package entities

import (
	"strconv"
	"strings"
	"time"
	"unicode"
)

const (
	DefaultDeckSlug = "default"
	DefaultDeckName = "Основная колода"

	fallbackDeckSlug = "deck"
)

// Deck is a named, owned collection of card assignments.
type Deck struct {
	ID          int64
	OwnerID     *int64 // nil when the owner was removed and the deck is orphaned
	Slug        string
	Name        string
	Description *string
	CreatedAt   time.Time
}

// DeckSummary is a deck together with its assignment counters.
type DeckSummary struct {
	Deck
	CardCount int
	DueCount  int
	Active    bool
}

// NewDeck creates a deck owned by ownerID. The slug is derived from name.
func NewDeck(ownerID int64, name string, description *string, now time.Time) *Deck {
	name = strings.TrimSpace(name)
	return &Deck{
		OwnerID:     &ownerID,
		Slug:        Slugify(name),
		Name:        name,
		Description: description,
		CreatedAt:   now,
	}
}

// NewDefaultDeck creates the implicit deck used when the user has no active one.
func NewDefaultDeck(ownerID int64, now time.Time) *Deck {
	return &Deck{
		OwnerID:   &ownerID,
		Slug:      DefaultDeckSlug,
		Name:      DefaultDeckName,
		CreatedAt: now,
	}
}

// IsOwnedBy reports whether the deck belongs to userID.
func (d *Deck) IsOwnedBy(userID int64) bool {
	return d.OwnerID != nil && *d.OwnerID == userID
}

// Slugify derives a slug from a display name: lower-cased letters, digits
// and underscores are kept, every other run collapses into one "-".
func Slugify(name string) string {
	var b strings.Builder
	pendingDash := false

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	if b.Len() == 0 {
		return fallbackDeckSlug
	}
	return b.String()
}

// SlugCandidate returns the slug to try on the given attempt:
// base for the first attempt, then base-2, base-3 and so on.
func SlugCandidate(base string, attempt int) string {
	if attempt <= 1 {
		return base
	}
	return base + "-" + strconv.Itoa(attempt)
}
