package postgresql

import (
	"context"
	"fmt"

	"github.com/aniladanir/retry"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize opens the db session, retrying up to maxAttempts times while the
// database is unreachable, and auto migrates given models
func Initialize(ctx context.Context, connStr string, maxAttempts int, models []any) (*gorm.DB, error) {
	return open(ctx, postgres.Open(connStr), maxAttempts, models)
}

func open(ctx context.Context, dialector gorm.Dialector, maxAttempts int, models []any) (db *gorm.DB, err error) {
	opts := make([]retry.Option, 0, 1)
	if maxAttempts > 0 {
		opts = append(opts, retry.WithMaxAttemps(maxAttempts))
	}
	retrier, err := retry.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize connection retrier: %w", err)
	}

	connected := <-retrier.Retry(ctx, func(attempt int) (terminate bool) {
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
		return err == nil
	}, true)
	if !connected {
		if err == nil {
			err = ctx.Err()
		}
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("failed to migrate models: %w", err)
	}

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDb, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDb.Close()
}
