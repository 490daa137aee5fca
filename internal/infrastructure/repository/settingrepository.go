package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"shieldtrack/internal/domain/setting"
	"shieldtrack/internal/infrastructure/persistence/mappers"
	"shieldtrack/internal/infrastructure/persistence/models"
	db "shieldtrack/internal/shared/db"
	"shieldtrack/internal/shared/errors"
)

// SettingRepository persists the singleton SMTP settings row.
type SettingRepository struct {
	db     *gorm.DB
	mapper mappers.SettingMapper
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{
		db:     db,
		mapper: mappers.NewSettingMapper(),
	}
}

func (r *SettingRepository) Get(ctx context.Context) (*setting.SMTPSettings, error) {
	var model models.SMTPSettingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("mail settings not configured")
		}
		return nil, fmt.Errorf("failed to load mail settings: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SettingRepository) Save(ctx context.Context, s *setting.SMTPSettings) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save mail settings: %w", err)
	}

	return s.SetID(model.ID)
}

func (r *SettingRepository) Update(ctx context.Context, s *setting.SMTPSettings) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SMTPSettingModel{}).
		Where("id = ?", model.ID).
		Select("host", "port", "username", "password", "from_name", "from_email", "use_tls", "enabled", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update mail settings: %w", result.Error)
	}

	return nil
}
