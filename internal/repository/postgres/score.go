package postgres

import (
	"database/sql"

	"chaosguard/internal/domain"
)

// ScoreRepo implements repository.ScoreRepository
type ScoreRepo struct {
	db *sql.DB
}

// NewScoreRepo creates a new score repository
func NewScoreRepo(db *sql.DB) *ScoreRepo {
	return &ScoreRepo{db: db}
}

// AddPoints adds points to a (user, chat) record, creating it if absent.
// The increment happens inside the upsert, so concurrent awards never
// lose updates.
func (r *ScoreRepo) AddPoints(userID, chatID int64, amount int) error {
	query := `
		INSERT INTO users (user_id, chat_id, points)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, chat_id)
		DO UPDATE SET points = users.points + $3
	`
	_, err := r.db.Exec(query, userID, chatID, amount)
	return err
}

// GetPoints returns the points of a (user, chat) record, 0 if absent
func (r *ScoreRepo) GetPoints(userID, chatID int64) (int, error) {
	var points int
	query := `SELECT points FROM users WHERE user_id = $1 AND chat_id = $2`
	err := r.db.QueryRow(query, userID, chatID).Scan(&points)

	if err == sql.ErrNoRows {
		// No record yet, absence means zero
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return points, nil
}

// AddWarning increments the warning counter of a (user, chat) record,
// creating it with one warning if absent
func (r *ScoreRepo) AddWarning(userID, chatID int64) error {
	query := `
		INSERT INTO users (user_id, chat_id, warnings)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, chat_id)
		DO UPDATE SET warnings = users.warnings + 1
	`
	_, err := r.db.Exec(query, userID, chatID)
	return err
}

// GetWarnings returns the warning count of a (user, chat) record, 0 if absent
func (r *ScoreRepo) GetWarnings(userID, chatID int64) (int, error) {
	var warnings int
	query := `SELECT warnings FROM users WHERE user_id = $1 AND chat_id = $2`
	err := r.db.QueryRow(query, userID, chatID).Scan(&warnings)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return warnings, nil
}

// TopByPoints returns up to limit users of a chat ordered by points descending
func (r *ScoreRepo) TopByPoints(chatID int64, limit int) ([]domain.LeaderboardEntry, error) {
	query := `
		SELECT user_id, points FROM users
		WHERE chat_id = $1
		ORDER BY points DESC
		LIMIT $2
	`

	rows, err := r.db.Query(query, chatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.Points); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
