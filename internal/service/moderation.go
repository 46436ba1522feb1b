package service

import (
	"errors"

	"chaosguard/internal/domain"

	"go.uber.org/zap"
)

// Outcome collects the independent decisions of one message event.
// All three checks always run; one verdict does not suppress another, so
// a single message can be muted for spam, deleted for content and still
// win the competition.
type Outcome struct {
	Spam    domain.Verdict
	Content domain.Verdict
	Answer  *domain.AnswerResult
}

// Moderator runs the moderation pipeline for incoming text messages
type Moderator struct {
	spam        *SpamDetector
	filter      *ContentFilter
	competition *CompetitionService
	logger      *zap.Logger
}

// NewModerator creates a new moderation coordinator
func NewModerator(
	spam *SpamDetector,
	filter *ContentFilter,
	competition *CompetitionService,
	logger *zap.Logger,
) *Moderator {
	return &Moderator{
		spam:        spam,
		filter:      filter,
		competition: competition,
		logger:      logger,
	}
}

// Process runs the spam check, content check and competition answer check
// for one message, in that order. A failing stage is logged and reported
// in the joined error, but never stops the remaining stages.
func (m *Moderator) Process(userID, chatID int64, text string) (Outcome, error) {
	out := Outcome{
		Spam:    m.spam.Check(userID),
		Content: domain.NoAction(),
	}

	var errs []error

	content, err := m.filter.Check(userID, chatID, text)
	if err != nil {
		m.logger.Error("Content check failed",
			zap.Int64("user_id", userID),
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		errs = append(errs, err)
	} else {
		out.Content = content
	}

	answer, err := m.competition.CheckAnswer(chatID, userID, text)
	if err != nil {
		m.logger.Error("Answer check failed",
			zap.Int64("user_id", userID),
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		errs = append(errs, err)
	} else {
		out.Answer = answer
	}

	return out, errors.Join(errs...)
}
