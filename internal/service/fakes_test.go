package service

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/infra/postgres/repository"
)

// memStore is an in-memory database shared by the fake repositories.
// WithinTx restores the previous state when fn fails, which mimics both
// transactions and savepoints.
type memStore struct {
	mu sync.Mutex

	users     map[int64]entities.User
	cards     map[int64]entities.Card
	decks     map[int64]entities.Deck
	userCards map[int64]entities.UserCard
	lastID    int64
}

type memSnapshot struct {
	users     map[int64]entities.User
	cards     map[int64]entities.Card
	decks     map[int64]entities.Deck
	userCards map[int64]entities.UserCard
}

func newMemStore() *memStore {
	return &memStore{
		users:     map[int64]entities.User{},
		cards:     map[int64]entities.Card{},
		decks:     map[int64]entities.Deck{},
		userCards: map[int64]entities.UserCard{},
	}
}

func (s *memStore) repos() Repositories {
	return Repositories{
		Users:     memUsers{s},
		Cards:     memCards{s},
		Decks:     memDecks{s},
		UserCards: memUserCards{s},
	}
}

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	snap := memSnapshot{
		users:     maps.Clone(s.users),
		cards:     maps.Clone(s.cards),
		decks:     maps.Clone(s.decks),
		userCards: maps.Clone(s.userCards),
	}
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.users, s.cards, s.decks, s.userCards = snap.users, snap.cards, snap.decks, snap.userCards
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) nextID() int64 {
	s.lastID++
	return s.lastID
}

// insertCard stores a card directly, bypassing the service.
func (s *memStore) insertCard(source, target string, now time.Time) entities.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := entities.NewCard(entities.CardContent{SourceText: source, TargetText: target}, "ru", "el", now)
	card.ID = s.nextID()
	s.cards[card.ID] = *card
	return *card
}

func (s *memStore) userCardsOf(userID int64) []entities.UserCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entities.UserCard
	for _, id := range slices.Sorted(maps.Keys(s.userCards)) {
		if uc := s.userCards[id]; uc.UserID == userID {
			out = append(out, uc)
		}
	}
	return out
}

type memUsers struct{ s *memStore }

func (r memUsers) Upsert(_ context.Context, user *entities.User) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.users[user.ID]
	if ok {
		user.ActiveDeckID = existing.ActiveDeckID
		user.RemindersEnabled = existing.RemindersEnabled
		user.LastRemindedAt = existing.LastRemindedAt
		user.CreatedAt = existing.CreatedAt
	}
	r.s.users[user.ID] = *user
	return !ok, nil
}

func (r memUsers) GetByID(_ context.Context, userID int64) (*entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (r memUsers) SetActiveDeck(_ context.Context, userID int64, deckID *int64) error {
	return r.update(userID, func(u *entities.User) { u.ActiveDeckID = deckID })
}

func (r memUsers) SetReminders(_ context.Context, userID int64, enabled bool) error {
	return r.update(userID, func(u *entities.User) { u.RemindersEnabled = enabled })
}

func (r memUsers) MarkReminded(_ context.Context, userID int64, at time.Time) error {
	return r.update(userID, func(u *entities.User) { u.LastRemindedAt = &at })
}

func (r memUsers) update(userID int64, fn func(u *entities.User)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	fn(&u)
	r.s.users[userID] = u
	return nil
}

type memCards struct{ s *memStore }

func (r memCards) FindBySourceKey(_ context.Context, key string) (*entities.Card, error) {
	return r.find(func(c entities.Card) bool { return c.NormalizedSourceText == key })
}

func (r memCards) FindByTargetKey(_ context.Context, key string) (*entities.Card, error) {
	return r.find(func(c entities.Card) bool { return c.NormalizedTargetText == key })
}

func (r memCards) find(match func(c entities.Card) bool) (*entities.Card, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, id := range slices.Sorted(maps.Keys(r.s.cards)) {
		if c := r.s.cards[id]; match(c) {
			return &c, nil
		}
	}
	return nil, repository.ErrCardNotFound
}

func (r memCards) Create(_ context.Context, card *entities.Card) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.cards {
		if c.NormalizedSourceText == card.NormalizedSourceText {
			return repository.ErrDuplicateKey
		}
	}

	card.ID = r.s.nextID()
	r.s.cards[card.ID] = *card
	return nil
}

type memDecks struct{ s *memStore }

func (r memDecks) EnsureDefault(_ context.Context, ownerID int64, now time.Time) (*entities.Deck, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if d, ok := r.bySlug(ownerID, entities.DefaultDeckSlug); ok {
		return &d, nil
	}

	d := entities.NewDefaultDeck(ownerID, now)
	d.ID = r.s.nextID()
	r.s.decks[d.ID] = *d
	return d, nil
}

func (r memDecks) Create(_ context.Context, deck *entities.Deck) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	base := deck.Slug
	for attempt := 1; attempt <= 1000; attempt++ {
		slug := entities.SlugCandidate(base, attempt)
		if _, taken := r.bySlug(*deck.OwnerID, slug); taken {
			continue
		}
		deck.Slug = slug
		deck.ID = r.s.nextID()
		r.s.decks[deck.ID] = *deck
		return nil
	}
	return repository.ErrSlugExhausted
}

func (r memDecks) Get(_ context.Context, ownerID, deckID int64) (*entities.Deck, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.decks[deckID]
	if !ok || !d.IsOwnedBy(ownerID) {
		return nil, repository.ErrDeckNotFound
	}
	return &d, nil
}

func (r memDecks) Update(_ context.Context, ownerID, deckID int64, name, description *string) (*entities.Deck, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.decks[deckID]
	if !ok || !d.IsOwnedBy(ownerID) {
		return nil, repository.ErrDeckNotFound
	}
	if name != nil {
		d.Name = *name
	}
	if description != nil {
		d.Description = description
	}
	r.s.decks[deckID] = d
	return &d, nil
}

func (r memDecks) Delete(_ context.Context, ownerID, deckID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.decks[deckID]
	if !ok || !d.IsOwnedBy(ownerID) {
		return repository.ErrDeckNotFound
	}

	for id, uc := range r.s.userCards {
		if uc.DeckID == deckID {
			delete(r.s.userCards, id)
		}
	}
	for id, u := range r.s.users {
		if u.ActiveDeckID != nil && *u.ActiveDeckID == deckID {
			u.ActiveDeckID = nil
			r.s.users[id] = u
		}
	}
	delete(r.s.decks, deckID)
	return nil
}

func (r memDecks) List(_ context.Context, ownerID int64, asOf time.Time) ([]entities.DeckSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []entities.DeckSummary
	for _, d := range r.s.decks {
		if !d.IsOwnedBy(ownerID) {
			continue
		}
		cardCount, dueCount := r.stats(d.ID, asOf)
		out = append(out, entities.DeckSummary{Deck: d, CardCount: cardCount, DueCount: dueCount})
	}

	slices.SortFunc(out, func(a, b entities.DeckSummary) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return int(a.ID - b.ID)
	})
	return out, nil
}

func (r memDecks) Stats(_ context.Context, deckID int64, asOf time.Time) (int, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cardCount, dueCount := r.stats(deckID, asOf)
	return cardCount, dueCount, nil
}

func (r memDecks) stats(deckID int64, asOf time.Time) (cardCount, dueCount int) {
	for _, uc := range r.s.userCards {
		if uc.DeckID != deckID {
			continue
		}
		cardCount++
		if uc.IsDue(asOf) {
			dueCount++
		}
	}
	return cardCount, dueCount
}

func (r memDecks) bySlug(ownerID int64, slug string) (entities.Deck, bool) {
	for _, d := range r.s.decks {
		if d.IsOwnedBy(ownerID) && d.Slug == slug {
			return d, true
		}
	}
	return entities.Deck{}, false
}

type memUserCards struct{ s *memStore }

func (r memUserCards) Ensure(_ context.Context, uc *entities.UserCard) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.userCards {
		if existing.UserID == uc.UserID && existing.DeckID == uc.DeckID && existing.CardID == uc.CardID {
			*uc = existing
			return false, nil
		}
	}

	uc.ID = r.s.nextID()
	r.s.userCards[uc.ID] = *uc
	return true, nil
}

func (r memUserCards) NextDue(_ context.Context, userID int64, deckID *int64, asOf time.Time) (*entities.UserCardDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	due := r.filter(func(uc entities.UserCard) bool {
		return uc.UserID == userID && (deckID == nil || uc.DeckID == *deckID) && uc.IsDue(asOf)
	})
	if len(due) == 0 {
		return nil, nil
	}
	return &due[0], nil
}

func (r memUserCards) GetByID(_ context.Context, userID, id int64) (*entities.UserCardDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	uc, ok := r.s.userCards[id]
	if !ok || uc.UserID != userID {
		return nil, repository.ErrUserCardNotFound
	}
	d := r.details(uc)
	return &d, nil
}

func (r memUserCards) Lock(_ context.Context, userID, id int64) (*entities.UserCard, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	uc, ok := r.s.userCards[id]
	if !ok || uc.UserID != userID {
		return nil, repository.ErrUserCardNotFound
	}
	return &uc, nil
}

func (r memUserCards) SaveReview(_ context.Context, uc *entities.UserCard) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.userCards[uc.ID]
	if !ok || stored.UserID != uc.UserID {
		return repository.ErrUserCardNotFound
	}
	r.s.userCards[uc.ID] = *uc
	return nil
}

func (r memUserCards) ListInDeck(_ context.Context, userID, deckID int64) ([]entities.UserCardDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return r.filter(func(uc entities.UserCard) bool {
		return uc.UserID == userID && uc.DeckID == deckID
	}), nil
}

func (r memUserCards) Remove(_ context.Context, userID, deckID, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	uc, ok := r.s.userCards[id]
	if !ok || uc.UserID != userID || uc.DeckID != deckID {
		return repository.ErrUserCardNotFound
	}
	delete(r.s.userCards, id)
	return nil
}

// filter returns matching assignments ordered by due date, creation time and id.
func (r memUserCards) filter(match func(uc entities.UserCard) bool) []entities.UserCardDetails {
	var out []entities.UserCardDetails
	for _, uc := range r.s.userCards {
		if match(uc) {
			out = append(out, r.details(uc))
		}
	}

	slices.SortFunc(out, func(a, b entities.UserCardDetails) int {
		if c := a.NextReviewAt.Compare(b.NextReviewAt); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return int(a.ID - b.ID)
	})
	return out
}

func (r memUserCards) details(uc entities.UserCard) entities.UserCardDetails {
	return entities.UserCardDetails{
		UserCard: uc,
		Card:     r.s.cards[uc.CardID],
		DeckName: r.s.decks[uc.DeckID].Name,
	}
}
