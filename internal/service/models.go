package service

import "github.com/aliskhannn/flashcards-bot/internal/domain/entities"

// CreationResult describes what happened to one requested word.
type CreationResult struct {
	Input              string
	UserCardID         int64
	Card               *entities.Card
	CreatedCard        bool // a new canonical card was generated
	ReusedExistingCard bool // an existing canonical card was linked
	LinkedToUser       bool // a new assignment was created
	Error              string
}

// Failed reports whether the word could not be added.
func (r CreationResult) Failed() bool {
	return r.Error != ""
}

// StudyCard is an assignment prepared for display.
type StudyCard struct {
	UserCardID int64
	DeckID     int64
	DeckName   string
	Card       entities.Card
	Prompt     string
	Hidden     string
	PromptSide entities.CardSide
}

// Languages are the language tags stored on new cards.
type Languages struct {
	Source string
	Target string
}
