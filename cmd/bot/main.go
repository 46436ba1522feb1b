package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chaosguard/internal/config"
	"chaosguard/internal/handler"
	"chaosguard/internal/profanity"
	"chaosguard/internal/repository/postgres"
	"chaosguard/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// defaultBadWords is used when BAD_WORDS is not configured
var defaultBadWords = []string{
	"fuck", "shit", "bitch", "asshole", "bastard", "cunt", "dick", "whore",
}

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting ChaosGuard Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	scoreRepo := postgres.NewScoreRepo(db)
	competitionRepo := postgres.NewCompetitionRepo(db)

	// Initialize services
	badWords := cfg.Moderation.BadWords
	if len(badWords) == 0 {
		badWords = defaultBadWords
	}
	classifier := profanity.NewMatcher(badWords)

	spamDetector := service.NewSpamDetector(service.SpamConfig{
		Limit:        cfg.Moderation.SpamLimit,
		Window:       cfg.Moderation.SpamWindow,
		MuteDuration: cfg.Moderation.SpamMuteDuration,
	}, logger)
	contentFilter := service.NewContentFilter(classifier, scoreRepo, service.FilterConfig{
		WarnThreshold: cfg.Moderation.WarnThreshold,
		MuteDuration:  cfg.Moderation.WarnMuteDuration,
	}, logger)
	competitionService := service.NewCompetitionService(
		competitionRepo, scoreRepo, cfg.Moderation.AnswerReward, logger)
	scoreService := service.NewScoreService(scoreRepo)
	moderator := service.NewModerator(spamDetector, contentFilter, competitionService, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, moderator, competitionService, scoreService,
		cfg.Moderation.LeaderboardSize, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start sweeper job in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runSweeperJob(ctx, spamDetector, logger)

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	// Run migrations
	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runSweeperJob periodically drops idle spam windows to bound memory
func runSweeperJob(ctx context.Context, detector *service.SpamDetector, logger *zap.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Sweeper job stopped")
			return
		case <-ticker.C:
			removed := detector.SweepIdle()
			if removed > 0 {
				logger.Info("Swept idle spam windows", zap.Int("removed", removed))
			}
		}
	}
}
