package telegram

// SendDueReminder tells the user how many cards are due and offers to
// start a review. In a private chat the chat id equals the user id.
func (h *Handler) SendDueReminder(userID int64, dueCount int) error {
	msg := newMessage(userID, formatReminder(dueCount))
	msg.ReplyMarkup = buildNextKeyboard(msgStartReview)

	_, err := h.bot.Send(msg)
	return err
}
