package models

type AreaModel struct {
	ID        uint   `gorm:"primaryKey"`
	SID       string `gorm:"column:sid;uniqueIndex;size:32;not null"`
	ClientID  uint   `gorm:"not null;index"`
	Name      string `gorm:"size:200;not null"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AreaModel) TableName() string {
	return "areas"
}

type AreaAssignmentModel struct {
	ID        uint  `gorm:"primaryKey"`
	UserID    uint  `gorm:"not null;index:idx_assignment_user_area,unique"`
	AreaID    uint  `gorm:"not null;index:idx_assignment_user_area,unique;index"`
	IsActive  bool  `gorm:"not null;default:true;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (AreaAssignmentModel) TableName() string {
	return "area_assignments"
}
