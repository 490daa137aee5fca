package models

// SMTPSettingModel is a singleton row. The repository always reads and
// updates id 1.
type SMTPSettingModel struct {
	ID        uint   `gorm:"primaryKey"`
	Host      string `gorm:"size:255;not null"`
	Port      int    `gorm:"not null"`
	Username  string `gorm:"size:255"`
	Password  string `gorm:"size:255"`
	FromName  string `gorm:"size:200"`
	FromEmail string `gorm:"size:255"`
	UseTLS    bool   `gorm:"not null;default:true"`
	Enabled   bool   `gorm:"not null;default:false"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SMTPSettingModel) TableName() string {
	return "smtp_settings"
}
