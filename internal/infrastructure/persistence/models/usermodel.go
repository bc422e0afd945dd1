package models

type UserModel struct {
	ID         uint   `gorm:"primaryKey"`
	ExternalID string `gorm:"uniqueIndex;size:191;not null"`
	Name       string `gorm:"size:100;not null"`
	Email      string `gorm:"size:255;index"`
	Role       string `gorm:"size:20;not null;default:end_user"`
	Suspended  bool   `gorm:"not null;default:false"`
	Active     bool   `gorm:"not null;default:true"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
