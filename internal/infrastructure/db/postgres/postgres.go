package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/careercharma/learnhub-api/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for opening the relational store.
type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	Timeout         time.Duration
}

// Models lists every table owned by the API, parents first.
func Models() []any {
	return []any{
		&domain.User{},
		&domain.Topic{},
		&domain.Article{},
		&domain.Like{},
		&domain.Comment{},
		&domain.Quiz{},
		&domain.Question{},
		&domain.CourseCategory{},
		&domain.Course{},
		&domain.Section{},
		&domain.SubSection{},
	}
}

// Open connects to PostgreSQL, applies pool settings and validates
// connectivity with a ping. Tables are migrated when cfg.AutoMigrate is set.
func Open(ctx context.Context, cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := Ping(ctx, db, cfg.Timeout); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates every table in Models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}
	return nil
}

// Ping checks the connection within timeout (defaultTimeout when zero).
func Ping(ctx context.Context, db *gorm.DB, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("postgres sql.DB: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}

// translate maps gorm errors onto the domain sentinels. The message check
// covers drivers that do not implement gorm's error translator.
func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// deleted reports ErrNotFound when a delete matched no rows.
func deleted(res *gorm.DB, op string) error {
	if res.Error != nil {
		return translate(res.Error, op)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
