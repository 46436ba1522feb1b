package postgres

import (
	"database/sql"

	"chaosguard/internal/domain"
)

// CompetitionRepo implements repository.CompetitionRepository
type CompetitionRepo struct {
	db *sql.DB
}

// NewCompetitionRepo creates a new competition repository
func NewCompetitionRepo(db *sql.DB) *CompetitionRepo {
	return &CompetitionRepo{db: db}
}

// Replace writes the competition row for a chat, overwriting any existing
// one unconditionally (last writer wins)
func (r *CompetitionRepo) Replace(comp domain.Competition) error {
	query := `
		INSERT INTO competitions (chat_id, question, answer, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (chat_id)
		DO UPDATE SET question = $2, answer = $3, active = $4
	`
	_, err := r.db.Exec(query, comp.ChatID, comp.Question, comp.Answer, comp.Active)
	return err
}

// Get returns the competition row of a chat, nil if none exists
func (r *CompetitionRepo) Get(chatID int64) (*domain.Competition, error) {
	var c domain.Competition
	query := `SELECT chat_id, question, answer, active FROM competitions WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&c.ChatID, &c.Question, &c.Answer, &c.Active)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Deactivate marks the competition of a chat inactive.
// No-op when the chat has no competition row.
func (r *CompetitionRepo) Deactivate(chatID int64) error {
	query := `UPDATE competitions SET active = FALSE WHERE chat_id = $1`
	_, err := r.db.Exec(query, chatID)
	return err
}
