package migration

import (
	storage "github.com/madisvain/upcount/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Module applies pending migrations at startup, before any repository is
// constructed. A migration failure aborts the application.
var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, log *zap.Logger) error {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}

		log.Info("applying database migrations")
		if err := Run(sqlDB); err != nil {
			return storage.MigrationErr(err)
		}
		log.Info("database migrations up to date")
		return nil
	}),
)
