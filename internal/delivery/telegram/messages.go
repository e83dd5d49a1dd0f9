// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/flashcards-bot/internal/domain/entities"
	"github.com/aliskhannn/flashcards-bot/internal/service"
)

// Error messages.
const (
	msgInternalError  = "Что-то пошло не так. Попробуйте позже."
	msgNotFound       = "Карточка или колода не найдена."
	msgInvalidInput   = "Некорректный ввод. Проверьте данные и попробуйте снова."
	msgUnknownCommand = "Неизвестная команда. Список команд: /help"
	msgUseAdd         = "Используйте: /add слово1, слово2"
	msgUseNewDeck     = "Используйте: /newdeck Название колоды"
)

// Informational messages.
const (
	msgNothingDue   = "🎉 Все карточки повторены. Загляните позже или добавьте новые слова."
	msgNoDecks      = "У вас пока нет колод. Создайте первую: /newdeck Название"
	msgReminders    = "🔔 Напоминания о карточках к повторению:"
	msgRemindersOn  = "🔔 Напоминания включены."
	msgRemindersOff = "🔕 Напоминания выключены."
	msgStartReview  = "🎯 Начать тренировку"
)

const msgHelp = `Как пользоваться ботом:

Отправьте слово или несколько слов через запятую, и бот создаст карточки с переводом и примером.

/add слова — добавить слова в активную колоду
/next — следующая карточка к повторению
/decks — ваши колоды
/newdeck название — создать колоду
/reminders — настроить напоминания

После ответа оцените себя:
🔁 Снова — карточка вернётся через 10 минут
🤔 Повторить — интервал растёт в полтора раза
✅ Легко — интервал растёт в два с половиной раза`

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

func italic(s string) string {
	return "_" + md(s) + "_"
}

func spoiler(s string) string {
	return "||" + md(s) + "||"
}

// newMessage creates a message with MarkdownV2 parse mode.
func newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	return msg
}

// newPlainMessage creates a plain message without MarkdownV2 parse mode.
func newPlainMessage(chatID int64, text string) tgbotapi.MessageConfig {
	return tgbotapi.NewMessage(chatID, text)
}

// newEdit creates an edit with MarkdownV2 parse mode.
func newEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	return edit
}

// welcomeMarkdownV2 builds the /start message.
func welcomeMarkdownV2() string {
	var sb strings.Builder

	sb.WriteString(bold("Flashcards Bot"))
	sb.WriteString(md(" помогает учить слова по карточкам с интервальными повторениями."))
	sb.WriteString("\n\n")

	sb.WriteString(md("Чтобы начать:"))
	sb.WriteString("\n\n")
	sb.WriteString(md("1. Отправьте слово, например «привет»."))
	sb.WriteString("\n")
	sb.WriteString(md("2. Нажмите /next, чтобы повторить карточки."))
	sb.WriteString("\n")
	sb.WriteString(md("3. Используйте /decks, чтобы разложить слова по колодам."))
	sb.WriteString("\n\n")

	sb.WriteString(md("Все команды: /help"))

	return sb.String()
}

// formatAddResults formats the outcome of adding a batch of words.
func formatAddResults(results []service.CreationResult) string {
	var sb strings.Builder

	for i, r := range results {
		if i > 0 {
			sb.WriteString("\n")
		}

		if r.Failed() {
			sb.WriteString(md("⚠️ " + r.Input + ": не удалось добавить"))
			continue
		}

		status := "добавлено"
		switch {
		case !r.LinkedToUser:
			status = "уже в колоде"
		case r.CreatedCard:
			status = "новая карточка"
		}

		sb.WriteString(md("✅ "))
		sb.WriteString(bold(r.Card.SourceText))
		sb.WriteString(md(" → " + r.Card.TargetText + " (" + status + ")"))
	}

	return sb.String()
}

// formatPrompt formats the front of a card with the answer hidden.
func formatPrompt(card *service.StudyCard) string {
	return fmt.Sprintf("%s\n\n%s",
		italic(card.DeckName),
		bold(card.Prompt),
	)
}

// formatRevealed formats a card with both sides and the example.
func formatRevealed(card *service.StudyCard, side entities.CardSide) string {
	prompt, hidden := card.Card.Sides(side)

	var sb strings.Builder
	sb.WriteString(italic(card.DeckName))
	sb.WriteString("\n\n")
	sb.WriteString(bold(prompt))
	sb.WriteString(md(" → "))
	sb.WriteString(bold(hidden))

	if card.Card.PartOfSpeech != nil {
		sb.WriteString(md(" (" + *card.Card.PartOfSpeech + ")"))
	}

	if card.Card.ExampleSentence != "" {
		sb.WriteString("\n\n")
		sb.WriteString(md(card.Card.ExampleSentence))
		if card.Card.ExampleTranslation != "" {
			sb.WriteString("\n")
			sb.WriteString(spoiler(card.Card.ExampleTranslation))
		}
	}

	return sb.String()
}

// formatRated appends the rating and the next interval to a revealed card.
func formatRated(revealed string, rating entities.Rating, intervalMinutes int) string {
	return revealed + "\n\n" + md(ratingLabels[rating]+". Следующее повторение через "+formatInterval(intervalMinutes))
}

// formatInterval renders minutes in the largest whole unit.
func formatInterval(minutes int) string {
	switch {
	case minutes >= 24*60 && minutes%(24*60) == 0:
		return strconv.Itoa(minutes/(24*60)) + " дн."
	case minutes >= 24*60:
		return fmt.Sprintf("%.1f дн.", float64(minutes)/(24*60))
	case minutes >= 60 && minutes%60 == 0:
		return strconv.Itoa(minutes/60) + " ч."
	case minutes >= 60:
		return fmt.Sprintf("%.1f ч.", float64(minutes)/60)
	default:
		return strconv.Itoa(minutes) + " мин."
	}
}

// formatDecks formats the deck list with counters.
func formatDecks(decks []entities.DeckSummary) string {
	var sb strings.Builder
	sb.WriteString(bold("Ваши колоды"))
	sb.WriteString("\n")

	for _, d := range decks {
		sb.WriteString("\n")
		if d.Active {
			sb.WriteString(md("⭐ "))
		}
		sb.WriteString(bold(d.Name))
		sb.WriteString(md(fmt.Sprintf(": %d карт., к повторению %d", d.CardCount, d.DueCount)))
	}

	sb.WriteString("\n\n")
	sb.WriteString(md("⭐ отмечена активная колода, в неё попадают новые слова."))

	return sb.String()
}

func formatDeckCreated(d *entities.DeckSummary) string {
	return md("Колода ") + bold(d.Name) + md(" создана и выбрана активной.")
}

func formatDeckActivated(d *entities.Deck) string {
	return md("Новые слова будут добавляться в колоду ") + bold(d.Name) + md(".")
}

func formatReminder(dueCount int) string {
	return md("⏰ Карточек к повторению: ") + bold(strconv.Itoa(dueCount)) + md(". Самое время потренироваться!")
}
