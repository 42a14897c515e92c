package db

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Module provides the shared database pool and closes it on shutdown.
var Module = fx.Module("db",
	fx.Provide(Open),
	fx.Invoke(registerHooks),
)

func registerHooks(lc fx.Lifecycle, conn *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}
