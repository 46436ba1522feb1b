package service

import (
	"chaosguard/internal/domain"
	"chaosguard/internal/repository"
)

// ScoreService exposes the points ledger to the command surface
type ScoreService struct {
	scores repository.ScoreRepository
}

// NewScoreService creates a new score service
func NewScoreService(scores repository.ScoreRepository) *ScoreService {
	return &ScoreService{scores: scores}
}

// Points returns the user's points in the chat, 0 for unknown users
func (s *ScoreService) Points(userID, chatID int64) (int, error) {
	return s.scores.GetPoints(userID, chatID)
}

// Leaderboard returns up to limit top scorers of the chat
func (s *ScoreService) Leaderboard(chatID int64, limit int) ([]domain.LeaderboardEntry, error) {
	if limit < 1 {
		limit = 1
	}
	return s.scores.TopByPoints(chatID, limit)
}
