package models

import "gorm.io/datatypes"

type FindingModel struct {
	ID          uint           `gorm:"primaryKey"`
	SID         string         `gorm:"column:sid;uniqueIndex;size:32;not null"`
	ProjectID   uint           `gorm:"not null;index"`
	Title       string         `gorm:"size:300;not null"`
	Description string         `gorm:"type:text"`
	Severity    string         `gorm:"size:20;not null;index"`
	Status      string         `gorm:"size:20;not null;index"`
	CloseReason string         `gorm:"type:text"`
	Tags        datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt    *int64

	// Note: No client_id or area_id column. A finding's tenant placement is
	// derived from its project, so scope filtering always goes through the
	// projects table.
}

func (FindingModel) TableName() string {
	return "findings"
}
