package migration

import (
	"github.com/opusline/royaltyd/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func runOnStartup(cfg config.Config, gdb *gorm.DB, log *zap.Logger) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	if err := RunMigrations(sqlDB, cfg.DBType); err != nil {
		return err
	}
	log.Info("migrations applied", zap.String("db_type", cfg.DBType))
	return nil
}

var Module = fx.Module("migration",
	fx.Invoke(runOnStartup),
)
