package handler

import (
	"strings"
	"time"

	"chaosguard/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const failureNotice = "⚠️ Something went wrong. Please try again."

// handleText runs the moderation pipeline for every plain text message.
// The three checks are independent: a single message can earn a spam mute,
// a content deletion and a competition win at once.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	chatID := c.Chat().ID
	// Raw text on purpose: answer matching must see the message as sent
	text := c.Text()

	// Commands are handled by their own handlers
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	outcome, err := h.moderator.Process(userID, chatID, text)
	if err != nil {
		// Stage errors are already logged by the moderator; the user gets
		// a generic notice and unrelated events keep flowing
		if sendErr := c.Send(failureNotice); sendErr != nil {
			h.logger.Error("Failed to send failure notice", zap.Error(sendErr))
		}
	}

	if outcome.Spam.Muted() {
		h.applyMute(c, c.Sender(), outcome.Spam.MuteFor)
		h.reply(c, outcome.Spam.Notice)
	}

	if outcome.Content.Action != domain.ActionNone {
		if outcome.Content.DeleteMessage {
			if err := c.Delete(); err != nil {
				h.logger.Warn("Failed to delete message",
					zap.Int64("chat_id", chatID),
					zap.Error(err),
				)
			}
		}
		if outcome.Content.Muted() {
			h.applyMute(c, c.Sender(), outcome.Content.MuteFor)
		}
		h.reply(c, outcome.Content.Notice)
	}

	if outcome.Answer != nil {
		h.reply(c, outcome.Answer.Notice)
	}

	return nil
}

// applyMute restricts the user's send permission for the given duration
func (h *Handler) applyMute(c tele.Context, user *tele.User, d time.Duration) {
	member := &tele.ChatMember{
		User:            user,
		Rights:          tele.Rights{CanSendMessages: false},
		RestrictedUntil: time.Now().Add(d).Unix(),
	}
	if err := h.bot.Restrict(c.Chat(), member); err != nil {
		h.logger.Error("Failed to mute user",
			zap.Int64("user_id", user.ID),
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
	}
}

// reply sends a notice into the chat, logging delivery failures
func (h *Handler) reply(c tele.Context, notice string) {
	if notice == "" {
		return
	}
	if err := c.Send(notice); err != nil {
		h.logger.Error("Failed to send notice",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
	}
}
