package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// MaxKeyLength is the longest normalized text, in characters, that fits a
// card lookup key.
const MaxKeyLength = 512

var ErrTextTooLong = errors.New("text too long")

// CardContent is the generated vocabulary content of a card.
type CardContent struct {
	SourceText         string
	TargetText         string
	ExampleSentence    string
	ExampleTranslation string
	PartOfSpeech       *string
	Extra              map[string]any
}

// Card is canonical vocabulary content shared by all users.
// It is created once per normalized source text and never updated.
type Card struct {
	ID int64
	CardContent

	SourceLang           string
	TargetLang           string
	NormalizedSourceText string // unique dedup key
	NormalizedTargetText string // reverse lookup key, not unique

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCard builds a card from content and computes both lookup keys.
func NewCard(content CardContent, sourceLang, targetLang string, now time.Time) *Card {
	content.SourceText = strings.TrimSpace(content.SourceText)
	content.TargetText = strings.TrimSpace(content.TargetText)

	return &Card{
		CardContent:          content,
		SourceLang:           sourceLang,
		TargetLang:           targetLang,
		NormalizedSourceText: Normalize(content.SourceText),
		NormalizedTargetText: Normalize(content.TargetText),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// CardSide identifies which side of a card is shown first.
type CardSide string

const (
	SideSource CardSide = "source"
	SideTarget CardSide = "target"
)

// Sides returns the prompt and hidden text for the given prompt side.
func (c *Card) Sides(side CardSide) (prompt, hidden string) {
	if side == SideTarget {
		return c.TargetText, c.SourceText
	}
	return c.SourceText, c.TargetText
}

// Normalize folds text into the dedup key: trimmed, inner whitespace
// collapsed to single spaces, Unicode case-folded. Folding is locale
// independent, so final sigma and sharp s match their upper-case forms.
func Normalize(text string) string {
	// A Caser keeps state between calls and must not be shared.
	return cases.Fold().String(strings.Join(strings.Fields(text), " "))
}

// CheckKeyLength rejects text whose normalized key does not fit the
// store. Folding may lengthen text ("ß" becomes "ss"), so the key is
// measured, not the input.
func CheckKeyLength(text string) error {
	if n := utf8.RuneCountInString(Normalize(text)); n > MaxKeyLength {
		return fmt.Errorf("%w: %d characters, max %d", ErrTextTooLong, n, MaxKeyLength)
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
