package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleHelp confirms in the chat and sends the menu to the user privately
func (h *Handler) handleHelp(c tele.Context) error {
	if err := c.Send("📩 The menu was sent to you in private."); err != nil {
		h.logger.Error("Failed to send help confirmation", zap.Error(err))
	}

	_, err := h.bot.Send(c.Sender(), "🔥 ChaosGuard menu", helpMenuMarkup())
	if err != nil {
		h.logger.Error("Failed to send help menu",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
	}
	return err
}

// handleHelpGames shows the competition commands
func (h *Handler) handleHelpGames(c tele.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}
	return c.Edit("/competition question | answer\n/stop")
}

// handleHelpPoints shows the points commands
func (h *Handler) handleHelpPoints(c tele.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}
	return c.Edit("/points\n/top")
}

// handleHelpAdmin shows the admin commands
func (h *Handler) handleHelpAdmin(c tele.Context) error {
	if err := c.Respond(); err != nil {
		return err
	}
	return c.Edit("/ban (reply to a user)\n/mute\n/unmute")
}
