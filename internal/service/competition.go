package service

import (
	"fmt"
	"strings"

	"chaosguard/internal/domain"
	"chaosguard/internal/repository"

	"go.uber.org/zap"
)

// CompetitionService runs the per-chat question/answer round
type CompetitionService struct {
	competitions repository.CompetitionRepository
	scores       repository.ScoreRepository
	reward       int
	logger       *zap.Logger
}

// NewCompetitionService creates a new competition service
func NewCompetitionService(
	competitions repository.CompetitionRepository,
	scores repository.ScoreRepository,
	reward int,
	logger *zap.Logger,
) *CompetitionService {
	return &CompetitionService{
		competitions: competitions,
		scores:       scores,
		reward:       reward,
		logger:       logger,
	}
}

// Start activates a new round for the chat, silently replacing any
// existing one. The answer is stored lowercased and trimmed. Returns the
// question text for broadcast.
func (s *CompetitionService) Start(chatID int64, question, answer string) (string, error) {
	question = strings.TrimSpace(question)
	answer = strings.ToLower(strings.TrimSpace(answer))

	if question == "" || answer == "" {
		return "", fmt.Errorf("question and answer cannot be empty")
	}

	comp := domain.Competition{
		ChatID:   chatID,
		Question: question,
		Answer:   answer,
		Active:   true,
	}
	if err := s.competitions.Replace(comp); err != nil {
		return "", fmt.Errorf("start competition: %w", err)
	}

	s.logger.Info("Competition started", zap.Int64("chat_id", chatID))
	return question, nil
}

// Stop deactivates the chat's round. Idempotent: stopping an inactive or
// absent round succeeds the same way.
func (s *CompetitionService) Stop(chatID int64) error {
	if err := s.competitions.Deactivate(chatID); err != nil {
		return fmt.Errorf("stop competition: %w", err)
	}

	s.logger.Info("Competition stopped", zap.Int64("chat_id", chatID))
	return nil
}

// CheckAnswer compares the message text against the active round's answer.
// The candidate is lowercased but not trimmed; only an exact full-string
// match wins. On a match the round deactivates and the user is awarded
// points. Returns nil when there is no active round or no match.
func (s *CompetitionService) CheckAnswer(chatID, userID int64, text string) (*domain.AnswerResult, error) {
	comp, err := s.competitions.Get(chatID)
	if err != nil {
		return nil, fmt.Errorf("get competition: %w", err)
	}
	if comp == nil || !comp.Active {
		return nil, nil
	}

	if strings.ToLower(text) != comp.Answer {
		return nil, nil
	}

	if err := s.scores.AddPoints(userID, chatID, s.reward); err != nil {
		return nil, fmt.Errorf("award points: %w", err)
	}
	if err := s.competitions.Deactivate(chatID); err != nil {
		return nil, fmt.Errorf("deactivate competition: %w", err)
	}

	s.logger.Info("Competition answered",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", userID),
		zap.Int("points", s.reward),
	)

	return &domain.AnswerResult{
		UserID: userID,
		ChatID: chatID,
		Points: s.reward,
		Notice: fmt.Sprintf("🎉 Correct answer! +%d points", s.reward),
	}, nil
}
