package mappers

import (
	"time"

	"shieldtrack/internal/domain/setting"
	"shieldtrack/internal/infrastructure/persistence/models"
)

// SettingMapper handles the conversion between SMTP settings and their
// persistence model.
type SettingMapper interface {
	ToModel(s *setting.SMTPSettings) *models.SMTPSettingModel
	ToDomain(model *models.SMTPSettingModel) (*setting.SMTPSettings, error)
}

type SettingMapperImpl struct{}

func NewSettingMapper() SettingMapper {
	return &SettingMapperImpl{}
}

func (m *SettingMapperImpl) ToModel(s *setting.SMTPSettings) *models.SMTPSettingModel {
	return &models.SMTPSettingModel{
		ID:        s.ID(),
		Host:      s.Host(),
		Port:      s.Port(),
		Username:  s.Username(),
		Password:  s.Password(),
		FromName:  s.FromName(),
		FromEmail: s.FromEmail(),
		UseTLS:    s.UseTLS(),
		Enabled:   s.Enabled(),
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}
}

func (m *SettingMapperImpl) ToDomain(model *models.SMTPSettingModel) (*setting.SMTPSettings, error) {
	return setting.ReconstructSMTPSettings(
		model.ID,
		model.Host,
		model.Port,
		model.Username,
		model.Password,
		model.FromName,
		model.FromEmail,
		model.UseTLS,
		model.Enabled,
		time.UnixMilli(model.UpdatedAt),
	)
}
