package cmd

import (
	"context"
	"fmt"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/textfile"
	"freight/internal/core/ports"
)

// OpenSnapshotStore returns the store selected by cfg.Storage and a function
// that releases it.
func OpenSnapshotStore(ctx context.Context, cfg Config) (ports.SnapshotStore, func() error, error) {
	switch cfg.Storage {
	case StorageFile:
		return textfile.NewSnapshotStore(cfg.DataFile), func() error { return nil }, nil
	case StoragePostgres:
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		if err = postgres.Migrate(ctx, db); err != nil {
			_ = closeDB()
			return nil, nil, err
		}
		return postgres.NewSnapshotStore(db), closeDB, nil
	default:
		return nil, nil, fmt.Errorf("storage %q is not supported", cfg.Storage)
	}
}

func openDatabase(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(pgdriver.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	return db, nil
}
