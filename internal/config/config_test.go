package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("DB_PASSWORD", "test-password")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "chaosguard", cfg.Database.Name)

	assert.Equal(t, 6, cfg.Moderation.SpamLimit)
	assert.Equal(t, 8*time.Second, cfg.Moderation.SpamWindow)
	assert.Equal(t, 30*time.Second, cfg.Moderation.SpamMuteDuration)
	assert.Equal(t, 3, cfg.Moderation.WarnThreshold)
	assert.Equal(t, 5*time.Minute, cfg.Moderation.WarnMuteDuration)
	assert.Equal(t, 20, cfg.Moderation.AnswerReward)
	assert.Equal(t, 10, cfg.Moderation.LeaderboardSize)
	assert.Empty(t, cfg.Moderation.BadWords)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		dbPass string
	}{
		{name: "missing bot token", token: "", dbPass: "pass"},
		{name: "missing db password", token: "token", dbPass: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BOT_TOKEN", tt.token)
			t.Setenv("DB_PASSWORD", tt.dbPass)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

func TestLoad_ModerationOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SPAM_LIMIT", "10")
	t.Setenv("SPAM_WINDOW_SECONDS", "15")
	t.Setenv("WARN_THRESHOLD", "5")
	t.Setenv("ANSWER_REWARD", "50")
	t.Setenv("BAD_WORDS", "foo, bar ,baz,")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 10, cfg.Moderation.SpamLimit)
	assert.Equal(t, 15*time.Second, cfg.Moderation.SpamWindow)
	assert.Equal(t, 5, cfg.Moderation.WarnThreshold)
	assert.Equal(t, 50, cfg.Moderation.AnswerReward)
	assert.Equal(t, []string{"foo", "bar", "baz"}, cfg.Moderation.BadWords)
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SPAM_LIMIT", "not-a-number")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 6, cfg.Moderation.SpamLimit)
}

func TestLoad_RejectsNonPositiveLimits(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SPAM_LIMIT", "0")

	_, err := Load()

	assert.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db.example.com",
			Port:     "5433",
			Name:     "chaosguard",
			User:     "bot",
			Password: "secret",
		},
	}

	dsn := cfg.DSN()

	assert.Equal(t,
		"host=db.example.com port=5433 user=bot password=secret dbname=chaosguard sslmode=disable",
		dsn,
	)
}
