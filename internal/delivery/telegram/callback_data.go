package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionReveal    = "reveal"
	actionRate      = "rate"
	actionDeck      = "deck"
	actionReminders = "reminders"
	actionNext      = "next"
)

// Deck sub-actions.
const (
	deckUse   = "use"
	deckTrain = "train"
)

// Reminder sub-actions.
const (
	remindersOn  = "on"
	remindersOff = "off"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// int64Param returns the i-th parameter as an int64.
func (cd callbackData) int64Param(i int) (int64, bool) {
	if i >= len(cd.Params) {
		return 0, false
	}
	v, err := strconv.ParseInt(cd.Params[i], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// deckScope returns the optional deck id at position i. A missing or
// malformed value means no deck filter.
func (cd callbackData) deckScope(i int) *int64 {
	id, ok := cd.int64Param(i)
	if !ok || id <= 0 {
		return nil
	}
	return &id
}

func (cd callbackData) param(i int) string {
	if i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// Reveal and rate callbacks carry the deck being trained as an optional
// trailing parameter, so the session stays within that deck.
func buildRevealCallback(userCardID int64, side entities.CardSide, deckID *int64) string {
	return callbackData{
		Action: actionReveal,
		Params: withDeckScope([]string{strconv.FormatInt(userCardID, 10), string(side)}, deckID),
	}.encode()
}

func buildRateCallback(userCardID int64, rating entities.Rating, deckID *int64) string {
	return callbackData{
		Action: actionRate,
		Params: withDeckScope([]string{strconv.FormatInt(userCardID, 10), rating.String()}, deckID),
	}.encode()
}

func withDeckScope(params []string, deckID *int64) []string {
	if deckID == nil {
		return params
	}
	return append(params, strconv.FormatInt(*deckID, 10))
}

func buildDeckCallback(subAction string, deckID int64) string {
	return callbackData{
		Action: actionDeck,
		Params: []string{subAction, strconv.FormatInt(deckID, 10)},
	}.encode()
}

func buildRemindersCallback(enabled bool) string {
	value := remindersOff
	if enabled {
		value = remindersOn
	}
	return callbackData{Action: actionReminders, Params: []string{value}}.encode()
}

func buildNextCallback() string {
	return actionNext
}
