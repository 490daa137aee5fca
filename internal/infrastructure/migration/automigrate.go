package migration

import (
	"fmt"

	"gorm.io/gorm"

	"shieldtrack/internal/infrastructure/persistence/models"
	"shieldtrack/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ClientModel{},
		&models.AreaModel{},
		&models.AreaAssignmentModel{},
		&models.UserModel{},
		&models.ProjectModel{},
		&models.FindingModel{},
		&models.SMTPSettingModel{},
	}
}

// GormAutoMigrateStrategy lets GORM reconcile the schema. Development only;
// deployed environments run versioned SQL scripts instead.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting gorm auto-migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	s.logger.Infow("auto-migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
