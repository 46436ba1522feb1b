package service

import (
	"fmt"
	"time"

	"chaosguard/internal/domain"
	"chaosguard/internal/repository"

	"go.uber.org/zap"
)

// Classifier decides whether message text contains disallowed content
type Classifier interface {
	ContainsDisallowed(text string) bool
}

// FilterConfig holds the escalation parameters
type FilterConfig struct {
	WarnThreshold int           // warnings at which a violation escalates to mute
	MuteDuration  time.Duration // mute length on escalation
}

// ContentFilter deletes disallowed messages and escalates repeat offenders.
// Warnings are permanent; there is no decay or reset.
type ContentFilter struct {
	classifier Classifier
	scores     repository.ScoreRepository
	cfg        FilterConfig
	logger     *zap.Logger
}

// NewContentFilter creates a new content filter
func NewContentFilter(
	classifier Classifier,
	scores repository.ScoreRepository,
	cfg FilterConfig,
	logger *zap.Logger,
) *ContentFilter {
	return &ContentFilter{
		classifier: classifier,
		scores:     scores,
		cfg:        cfg,
		logger:     logger,
	}
}

// Check classifies the message text. On a violation it records a warning
// for (user, chat) and returns a delete-plus-warn verdict, escalating to
// a mute once the warning count reaches the threshold.
func (f *ContentFilter) Check(userID, chatID int64, text string) (domain.Verdict, error) {
	if !f.classifier.ContainsDisallowed(text) {
		return domain.NoAction(), nil
	}

	if err := f.scores.AddWarning(userID, chatID); err != nil {
		return domain.NoAction(), fmt.Errorf("add warning: %w", err)
	}

	warnings, err := f.scores.GetWarnings(userID, chatID)
	if err != nil {
		return domain.NoAction(), fmt.Errorf("get warnings: %w", err)
	}

	f.logger.Info("Disallowed content detected",
		zap.Int64("user_id", userID),
		zap.Int64("chat_id", chatID),
		zap.Int("warnings", warnings),
	)

	if warnings >= f.cfg.WarnThreshold {
		return domain.Verdict{
			Action:        domain.ActionMute,
			Notice:        "🚫 You have been muted for repeated offensive language.",
			MuteFor:       f.cfg.MuteDuration,
			DeleteMessage: true,
		}, nil
	}

	return domain.Verdict{
		Action:        domain.ActionWarn,
		Notice:        "⚠️ Warning: offensive language is not allowed.",
		DeleteMessage: true,
	}, nil
}
