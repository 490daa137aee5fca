package dto

import (
	"time"

	"shieldtrack/internal/domain/setting"
)

// SMTPSettingsDTO never carries the password back out; clients resubmit it
// on update.
type SMTPSettingsDTO struct {
	Host      string    `json:"host"`
	Port      int       `json:"port"`
	Username  string    `json:"username"`
	FromName  string    `json:"from_name"`
	FromEmail string    `json:"from_email"`
	UseTLS    bool      `json:"use_tls"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToSMTPSettingsDTO(s *setting.SMTPSettings) *SMTPSettingsDTO {
	if s == nil {
		return nil
	}
	return &SMTPSettingsDTO{
		Host:      s.Host(),
		Port:      s.Port(),
		Username:  s.Username(),
		FromName:  s.FromName(),
		FromEmail: s.FromEmail(),
		UseTLS:    s.UseTLS(),
		Enabled:   s.Enabled(),
		UpdatedAt: s.UpdatedAt(),
	}
}
