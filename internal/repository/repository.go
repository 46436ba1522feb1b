package repository

import (
	"chaosguard/internal/domain"
)

// ScoreRepository defines the persistent points/warnings ledger.
// Increments must be atomic upserts, safe under concurrent events.
type ScoreRepository interface {
	AddPoints(userID, chatID int64, amount int) error
	GetPoints(userID, chatID int64) (int, error)
	AddWarning(userID, chatID int64) error
	GetWarnings(userID, chatID int64) (int, error)
	TopByPoints(chatID int64, limit int) ([]domain.LeaderboardEntry, error)
}

// CompetitionRepository defines competition row operations
type CompetitionRepository interface {
	Replace(comp domain.Competition) error
	Get(chatID int64) (*domain.Competition, error)
	Deactivate(chatID int64) error
}
