package handler

import (
	"chaosguard/internal/middleware"
	"chaosguard/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot             *tele.Bot
	moderator       *service.Moderator
	competitions    *service.CompetitionService
	scores          *service.ScoreService
	leaderboardSize int
	logger          *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	moderator *service.Moderator,
	competitions *service.CompetitionService,
	scores *service.ScoreService,
	leaderboardSize int,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:             bot,
		moderator:       moderator,
		competitions:    competitions,
		scores:          scores,
		leaderboardSize: leaderboardSize,
		logger:          logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	adminOnly := middleware.AdminOnly(h.logger)

	// Admin commands
	h.bot.Handle("/competition", h.handleStartCompetition, adminOnly)
	h.bot.Handle("/stop", h.handleStopCompetition, adminOnly)
	h.bot.Handle("/ban", h.handleBan, adminOnly)
	h.bot.Handle("/mute", h.handleMute, adminOnly)
	h.bot.Handle("/unmute", h.handleUnmute, adminOnly)

	// Public commands
	h.bot.Handle("/points", h.handlePoints)
	h.bot.Handle("/top", h.handleTop)
	h.bot.Handle("/help", h.handleHelp)

	// Moderation pipeline for plain text
	h.bot.Handle(tele.OnText, h.handleText)

	// Help menu buttons
	h.bot.Handle(&btnHelpGames, h.handleHelpGames)
	h.bot.Handle(&btnHelpPoints, h.handleHelpPoints)
	h.bot.Handle(&btnHelpAdmin, h.handleHelpAdmin)
}

// Inline keyboard buttons
var (
	btnHelpGames = tele.Btn{
		Unique: "help_games",
		Text:   "🎮 Games",
	}
	btnHelpPoints = tele.Btn{
		Unique: "help_points",
		Text:   "💰 Points",
	}
	btnHelpAdmin = tele.Btn{
		Unique: "help_admin",
		Text:   "👮 Admin",
	}
)

// helpMenuMarkup returns the help menu keyboard
func helpMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnHelpGames),
		menu.Row(btnHelpPoints),
		menu.Row(btnHelpAdmin),
	)
	return menu
}
