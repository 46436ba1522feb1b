package testutil

import (
	"chaosguard/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestCompetition creates a test competition row
func NewTestCompetition(chatID int64, question, answer string, active bool) *domain.Competition {
	return &domain.Competition{
		ChatID:   chatID,
		Question: question,
		Answer:   answer,
		Active:   active,
	}
}
