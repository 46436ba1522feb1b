package handler

import (
	"fmt"
	"strings"

	"chaosguard/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStartCompetition handles /competition question | answer
func (h *Handler) handleStartCompetition(c tele.Context) error {
	payload := c.Message().Payload

	if !strings.Contains(payload, "|") {
		return c.Send("Usage:\n/competition question | answer")
	}

	parts := strings.SplitN(payload, "|", 2)
	question, err := h.competitions.Start(c.Chat().ID, parts[0], parts[1])
	if err != nil {
		h.logger.Error("Failed to start competition",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
		return c.Send(failureNotice)
	}

	return c.Send(fmt.Sprintf("🎯 New competition:\n%s", question))
}

// handleStopCompetition handles /stop
func (h *Handler) handleStopCompetition(c tele.Context) error {
	if err := h.competitions.Stop(c.Chat().ID); err != nil {
		h.logger.Error("Failed to stop competition",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
		return c.Send(failureNotice)
	}

	return c.Send("🛑 Competition stopped.")
}

// handleBan handles /ban, acting on the replied-to user
func (h *Handler) handleBan(c tele.Context) error {
	target := repliedUser(c)
	if target == nil {
		return nil
	}

	if err := h.bot.Ban(c.Chat(), &tele.ChatMember{User: target}); err != nil {
		h.logger.Error("Failed to ban user",
			zap.Int64("user_id", target.ID),
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
		return c.Send(failureNotice)
	}

	return c.Send("✅ User banned.")
}

// handleMute handles /mute, restricting the replied-to user indefinitely
func (h *Handler) handleMute(c tele.Context) error {
	target := repliedUser(c)
	if target == nil {
		return nil
	}

	member := &tele.ChatMember{
		User:   target,
		Rights: tele.Rights{CanSendMessages: false},
	}
	if err := h.bot.Restrict(c.Chat(), member); err != nil {
		h.logger.Error("Failed to mute user",
			zap.Int64("user_id", target.ID),
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
		return c.Send(failureNotice)
	}

	return c.Send("🔇 User muted.")
}

// handleUnmute handles /unmute, restoring the replied-to user's send permission
func (h *Handler) handleUnmute(c tele.Context) error {
	target := repliedUser(c)
	if target == nil {
		return nil
	}

	member := &tele.ChatMember{
		User:   target,
		Rights: tele.Rights{CanSendMessages: true},
	}
	if err := h.bot.Restrict(c.Chat(), member); err != nil {
		h.logger.Error("Failed to unmute user",
			zap.Int64("user_id", target.ID),
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
		return c.Send(failureNotice)
	}

	return c.Send("🔊 User unmuted.")
}

// handlePoints handles /points (self lookup)
func (h *Handler) handlePoints(c tele.Context) error {
	points, err := h.scores.Points(c.Sender().ID, c.Chat().ID)
	if err != nil {
		h.logger.Error("Failed to get points",
			zap.Int64("user_id", c.Sender().ID),
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
		return c.Send(failureNotice)
	}

	return c.Send(fmt.Sprintf("🏆 Your points: %d", points))
}

// handleTop handles /top (chat leaderboard)
func (h *Handler) handleTop(c tele.Context) error {
	entries, err := h.scores.Leaderboard(c.Chat().ID, h.leaderboardSize)
	if err != nil {
		h.logger.Error("Failed to get leaderboard",
			zap.Int64("chat_id", c.Chat().ID),
			zap.Error(err),
		)
		return c.Send(failureNotice)
	}

	return c.Send(formatLeaderboard(entries, h.leaderboardSize))
}

// formatLeaderboard renders the /top reply
func formatLeaderboard(entries []domain.LeaderboardEntry, size int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏆 Top %d players:\n", size)
	for i, e := range entries {
		fmt.Fprintf(&sb, "%d. %d points\n", i+1, e.Points)
	}
	return sb.String()
}

// repliedUser returns the sender of the replied-to message, nil when the
// command was not a reply. Commands without a target are silently skipped.
func repliedUser(c tele.Context) *tele.User {
	reply := c.Message().ReplyTo
	if reply == nil || reply.Sender == nil {
		return nil
	}
	return reply.Sender
}
