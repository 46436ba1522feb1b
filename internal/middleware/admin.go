package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly gates a handler to chat administrators and the chat creator.
// Non-admin invocations are dropped without any reply.
func AdminOnly(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			member, err := c.Bot().ChatMemberOf(c.Chat(), c.Sender())
			if err != nil {
				logger.Error("Failed to check admin status",
					zap.Int64("user_id", c.Sender().ID),
					zap.Int64("chat_id", c.Chat().ID),
					zap.Error(err),
				)
				return nil
			}

			if member.Role != tele.Administrator && member.Role != tele.Creator {
				// Silently ignore non-admins
				return nil
			}

			return next(c)
		}
	}
}
