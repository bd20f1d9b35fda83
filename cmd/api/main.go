package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	_ "github.com/careercharma/learnhub-api/docs"
	"github.com/careercharma/learnhub-api/internal/api"
	"github.com/careercharma/learnhub-api/internal/infrastructure/config"
	"github.com/careercharma/learnhub-api/internal/infrastructure/db/postgres"
	redisstore "github.com/careercharma/learnhub-api/internal/infrastructure/db/redis"
	"github.com/careercharma/learnhub-api/internal/infrastructure/mail"
	"github.com/careercharma/learnhub-api/internal/infrastructure/queue"
	"github.com/careercharma/learnhub-api/internal/infrastructure/security"
	"github.com/careercharma/learnhub-api/internal/infrastructure/storage"
	"github.com/careercharma/learnhub-api/pkg/logger"
)

const (
	initTimeout     = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title                       LearnHub API
// @version                     1.0
// @description                 Articles, quizzes, questions and courses for the Career Charma learning platform.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "learnhub-api",
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("application error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	initCtx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	db, err := postgres.Open(initCtx, postgres.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		AutoMigrate:     cfg.Database.AutoMigrate,
	})
	if err != nil {
		return err
	}
	log.Info().
		Int("max_open_conns", cfg.Database.MaxOpenConns).
		Bool("auto_migrate", cfg.Database.AutoMigrate).
		Msg("database connected")

	rdb, err := redisstore.Connect(initCtx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	uploader, err := storage.NewGCSUploader(initCtx, storage.Config{
		Bucket:          cfg.Storage.Bucket,
		CredentialsFile: cfg.Storage.CredentialsFile,
	}, logger.Component(log, "storage"))
	if err != nil {
		return err
	}

	mailer, err := mail.NewSMTPMailer(mail.Config{
		Host:       cfg.Mail.Host,
		Port:       cfg.Mail.Port,
		Secure:     cfg.Mail.Secure,
		User:       cfg.Mail.User,
		Password:   cfg.Mail.Password,
		From:       cfg.Mail.Sender(),
		Simulation: cfg.Mail.Simulation,
		CodeTTL:    cfg.Redis.CodeTTL,
	}, logger.Component(log, "mail"))
	if err != nil {
		return err
	}

	pool := queue.NewPool(cfg.HashWorkers, logger.Component(log, "pool"))
	pool.Start()

	e := api.NewRouter(api.Dependencies{
		DB:          db,
		Redis:       rdb,
		Storage:     uploader,
		Mailer:      mailer,
		Hasher:      security.NewBcryptHasher(pool, security.DefaultCost),
		Logger:      log,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		CodeTTL:     cfg.Redis.CodeTTL,
		BodyLimit:   cfg.BodyLimit,
		CORSOrigins: cfg.CORSOrigins,
		HTTPMetrics: true,
	})
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.ReadTimeout = 2 * time.Minute
	e.Server.WriteTimeout = 2 * time.Minute

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	pool.Stop()
	if err := uploader.Close(); err != nil {
		log.Error().Err(err).Msg("storage close error")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("database close error")
		}
	}

	log.Info().Msg("application stopped")
	return nil
}
