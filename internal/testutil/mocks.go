package testutil

import (
	"chaosguard/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockScoreRepository is a mock for ScoreRepository
type MockScoreRepository struct {
	mock.Mock
}

func (m *MockScoreRepository) AddPoints(userID, chatID int64, amount int) error {
	args := m.Called(userID, chatID, amount)
	return args.Error(0)
}

func (m *MockScoreRepository) GetPoints(userID, chatID int64) (int, error) {
	args := m.Called(userID, chatID)
	return args.Int(0), args.Error(1)
}

func (m *MockScoreRepository) AddWarning(userID, chatID int64) error {
	args := m.Called(userID, chatID)
	return args.Error(0)
}

func (m *MockScoreRepository) GetWarnings(userID, chatID int64) (int, error) {
	args := m.Called(userID, chatID)
	return args.Int(0), args.Error(1)
}

func (m *MockScoreRepository) TopByPoints(chatID int64, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(chatID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// MockCompetitionRepository is a mock for CompetitionRepository
type MockCompetitionRepository struct {
	mock.Mock
}

func (m *MockCompetitionRepository) Replace(comp domain.Competition) error {
	args := m.Called(comp)
	return args.Error(0)
}

func (m *MockCompetitionRepository) Get(chatID int64) (*domain.Competition, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Competition), args.Error(1)
}

func (m *MockCompetitionRepository) Deactivate(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

// MockClassifier is a mock for service.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) ContainsDisallowed(text string) bool {
	args := m.Called(text)
	return args.Bool(0)
}
