package httpapi

import (
	"time"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/service"
)

type createDeckRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type updateDeckRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type createCardRequest struct {
	Prompt string `json:"prompt" validate:"required,max=200"`
}

type reviewRequest struct {
	Rating string `json:"rating" validate:"required,oneof=again review easy"`
}

type deckResponse struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CardCount   int       `json:"card_count"`
	DueCount    int       `json:"due_count"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type cardResponse struct {
	CardID             int64   `json:"card_id"`
	SourceText         string  `json:"source_text"`
	TargetText         string  `json:"target_text"`
	ExampleSentence    string  `json:"example_sentence"`
	ExampleTranslation string  `json:"example_translation"`
	PartOfSpeech       *string `json:"part_of_speech"`
}

type deckCardResponse struct {
	UserCardID      int64            `json:"user_card_id"`
	DeckID          int64            `json:"deck_id"`
	Card            cardResponse     `json:"card"`
	LastRating      *entities.Rating `json:"last_rating"`
	IntervalMinutes int              `json:"interval_minutes"`
	ReviewCount     int              `json:"review_count"`
	NextReviewAt    time.Time        `json:"next_review_at"`
	LastReviewedAt  *time.Time       `json:"last_reviewed_at"`
}

type creationResponse struct {
	UserCardID         int64        `json:"user_card_id"`
	Card               cardResponse `json:"card"`
	CreatedCard        bool         `json:"created_card"`
	ReusedExistingCard bool         `json:"reused_existing_card"`
	LinkedToUser       bool         `json:"linked_to_user"`
}

type trainingCardResponse struct {
	UserCardID int64             `json:"user_card_id"`
	DeckID     int64             `json:"deck_id"`
	DeckName   string            `json:"deck_name"`
	Prompt     string            `json:"prompt"`
	Hidden     string            `json:"hidden"`
	PromptSide entities.CardSide `json:"prompt_side"`
	Card       cardResponse      `json:"card"`
}

func toDeckResponse(d entities.DeckSummary) deckResponse {
	return deckResponse{
		ID:          d.ID,
		Slug:        d.Slug,
		Name:        d.Name,
		Description: d.Description,
		CardCount:   d.CardCount,
		DueCount:    d.DueCount,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
	}
}

func toCardResponse(c *entities.Card) cardResponse {
	return cardResponse{
		CardID:             c.ID,
		SourceText:         c.SourceText,
		TargetText:         c.TargetText,
		ExampleSentence:    c.ExampleSentence,
		ExampleTranslation: c.ExampleTranslation,
		PartOfSpeech:       c.PartOfSpeech,
	}
}

func toDeckCardResponse(d *entities.UserCardDetails) deckCardResponse {
	return deckCardResponse{
		UserCardID:      d.ID,
		DeckID:          d.DeckID,
		Card:            toCardResponse(&d.Card),
		LastRating:      d.LastRating,
		IntervalMinutes: d.IntervalMinutes,
		ReviewCount:     d.ReviewCount,
		NextReviewAt:    d.NextReviewAt,
		LastReviewedAt:  d.LastReviewedAt,
	}
}

func toCreationResponse(r *service.CreationResult) creationResponse {
	return creationResponse{
		UserCardID:         r.UserCardID,
		Card:               toCardResponse(r.Card),
		CreatedCard:        r.CreatedCard,
		ReusedExistingCard: r.ReusedExistingCard,
		LinkedToUser:       r.LinkedToUser,
	}
}

func toTrainingCardResponse(c *service.StudyCard) trainingCardResponse {
	return trainingCardResponse{
		UserCardID: c.UserCardID,
		DeckID:     c.DeckID,
		DeckName:   c.DeckName,
		Prompt:     c.Prompt,
		Hidden:     c.Hidden,
		PromptSide: c.PromptSide,
		Card:       toCardResponse(&c.Card),
	}
}
