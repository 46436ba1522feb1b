package postgres

import (
	"database/sql"
	"testing"

	"chaosguard/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCompetitionRepo_Replace(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCompetitionRepo(db)

	mock.ExpectExec("INSERT INTO competitions").
		WithArgs(int64(100), "What is 2+2?", "4", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Replace(domain.Competition{
		ChatID:   100,
		Question: "What is 2+2?",
		Answer:   "4",
		Active:   true,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompetitionRepo_Get(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedNil   bool
		expectedError bool
	}{
		{
			name: "existing competition",
			mockRows: sqlmock.NewRows([]string{"chat_id", "question", "answer", "active"}).
				AddRow(int64(100), "What is 2+2?", "4", true),
		},
		{
			name:        "absent competition is nil, not an error",
			mockError:   sql.ErrNoRows,
			expectedNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewCompetitionRepo(db)

			query := "SELECT chat_id, question, answer, active FROM competitions WHERE chat_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(100)).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(100)).WillReturnRows(tt.mockRows)
			}

			comp, err := repo.Get(100)

			assert.NoError(t, err)
			if tt.expectedNil {
				assert.Nil(t, comp)
			} else {
				assert.NotNil(t, comp)
				assert.Equal(t, "4", comp.Answer)
				assert.True(t, comp.Active)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCompetitionRepo_Deactivate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCompetitionRepo(db)

	mock.ExpectExec("UPDATE competitions SET active = FALSE").
		WithArgs(int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Deactivate(100)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompetitionRepo_DeactivateNoRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewCompetitionRepo(db)

	// Deactivating a chat without a competition row touches nothing
	mock.ExpectExec("UPDATE competitions SET active = FALSE").
		WithArgs(int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Deactivate(999)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
