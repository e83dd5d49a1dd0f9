package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
)

var ratingLabels = map[entities.Rating]string{
	entities.RatingAgain:  "🔁 Снова",
	entities.RatingReview: "🤔 Повторить",
	entities.RatingEasy:   "✅ Легко",
}

// buildRevealKeyboard builds the keyboard under a hidden card.
func buildRevealKeyboard(userCardID int64, side entities.CardSide, deckID *int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👀 Показать ответ", buildRevealCallback(userCardID, side, deckID)),
		),
	)
}

// buildRatingKeyboard builds the keyboard under a revealed card.
func buildRatingKeyboard(userCardID int64, deckID *int64) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(entities.Ratings))
	for _, r := range entities.Ratings {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(ratingLabels[r], buildRateCallback(userCardID, r, deckID)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

// buildDecksKeyboard builds one row per deck with "use" and "train" buttons.
func buildDecksKeyboard(decks []entities.DeckSummary) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(decks))
	for _, d := range decks {
		label := d.Name
		if d.Active {
			label = "⭐ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildDeckCallback(deckUse, d.ID)),
			tgbotapi.NewInlineKeyboardButtonData("🎯 Учить", buildDeckCallback(deckTrain, d.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildRemindersKeyboard builds the reminders on/off keyboard.
func buildRemindersKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔔 Включить", buildRemindersCallback(true)),
			tgbotapi.NewInlineKeyboardButtonData("🔕 Выключить", buildRemindersCallback(false)),
		),
	)
}

// buildNextKeyboard builds a single "next card" button.
func buildNextKeyboard(label string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildNextCallback()),
		),
	)
}
