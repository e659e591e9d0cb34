package models

type Application struct {
	BaseModel
	UserID string `gorm:"not null;index"`
	User   *User  `gorm:"foreignKey:UserID"`
	JobID  string `gorm:"not null;index"`
	Job    *Job   `gorm:"foreignKey:JobID"`

	Message   string            `gorm:"not null"`
	Status    ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	IsDeleted bool              `gorm:"not null;default:false"`
}
