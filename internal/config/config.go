package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken   string
	Database   DatabaseConfig
	Moderation ModerationConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// ModerationConfig holds moderation tunables
type ModerationConfig struct {
	SpamLimit        int           // messages allowed inside the spam window
	SpamWindow       time.Duration // trailing window for spam detection
	SpamMuteDuration time.Duration // mute length for spammers
	WarnThreshold    int           // warnings before a content mute
	WarnMuteDuration time.Duration // mute length for repeat offenders
	AnswerReward     int           // points for a correct competition answer
	LeaderboardSize  int           // entries shown by /top
	BadWords         []string      // disallowed word list (comma-separated env)
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "chaosguard"),
			User:     getEnv("DB_USER", "chaosguard"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Moderation: ModerationConfig{
			SpamLimit:        getEnvInt("SPAM_LIMIT", 6),
			SpamWindow:       time.Duration(getEnvInt("SPAM_WINDOW_SECONDS", 8)) * time.Second,
			SpamMuteDuration: time.Duration(getEnvInt("MUTE_DURATION_SECONDS", 30)) * time.Second,
			WarnThreshold:    getEnvInt("WARN_THRESHOLD", 3),
			WarnMuteDuration: time.Duration(getEnvInt("WARN_MUTE_MINUTES", 5)) * time.Minute,
			AnswerReward:     getEnvInt("ANSWER_REWARD", 20),
			LeaderboardSize:  getEnvInt("LEADERBOARD_SIZE", 10),
			BadWords:         getEnvList("BAD_WORDS"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.Moderation.SpamLimit < 1 {
		return nil, fmt.Errorf("SPAM_LIMIT must be positive")
	}
	if cfg.Moderation.WarnThreshold < 1 {
		return nil, fmt.Errorf("WARN_THRESHOLD must be positive")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	var list []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
