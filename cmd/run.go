package cmd

import (
	"context"
	"fmt"
	"time"

	"schnose/bot"
	"schnose/config"
	"schnose/database"
	"schnose/events"
	"schnose/kzapi"
	"schnose/metrics"
	"schnose/repository"
	"schnose/service"

	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the global logrus logger
func SetupLogging(level string) {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("Unknown log level, using info")
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()

	SetupLogging(cfg.LogLevel)
	log.WithField("environment", cfg.Environment).Info("Starting schnose...")

	// Database
	databaseURL := cfg.FullDatabaseURL()
	if err := database.RunMigrationsWithURL(databaseURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := database.NewConnection(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established successfully")

	m := metrics.New()

	// Remote APIs
	globalAPI := kzapi.NewGlobalAPI(cfg.GlobalAPIURL, cfg.HTTPTimeout, m)
	kzgo := kzapi.NewKZGO(cfg.KZGOURL, cfg.HTTPTimeout, m)
	statusPage := kzapi.NewStatusPage(cfg.StatusURL, cfg.HTTPTimeout, m)

	// Preference change events
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATSServers != "" {
		natsPublisher, err := events.ConnectNATS(cfg.NATSServers)
		if err != nil {
			return err
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	// Services
	users := repository.NewUserRepository(db)
	services := bot.Services{
		Preferences: service.NewPreferenceService(users, globalAPI, publisher),
		Modes:       service.NewModeResolver(users),
		Targets:     service.NewTargetResolver(users, globalAPI),
		Maps:        service.NewMapResolver(globalAPI),
		Records:     service.NewRecordAggregator(globalAPI, m),
		MapInfo:     service.NewMapService(globalAPI, kzgo),
		Players:     service.NewPlayerService(globalAPI),
		Status:      service.NewStatusService(statusPage),
	}

	// Ops endpoint
	var server *metrics.Server
	if cfg.MetricsAddr != "" {
		server = metrics.NewServer(cfg.MetricsAddr, m, db)
		go func() {
			if err := server.Start(); err != nil {
				log.WithError(err).Error("Metrics server stopped")
			}
		}()
	}

	discordBot, err := bot.New(bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.DiscordGuildID,
	}, services, m)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	<-ctx.Done()
	log.Info("Shutting down...")

	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Error shutting down metrics server")
		}
	}

	log.Info("Shutdown completed")
	return nil
}
