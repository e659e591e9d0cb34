package models

type Job struct {
	BaseModel
	CreatedByID string `gorm:"not null;index"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID"`

	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`

	// Date range kept as plain strings, matching the stored format.
	DateFrom string `gorm:"not null"`
	DateTo   string `gorm:"not null"`

	Status        JobStatus `gorm:"type:varchar(20);not null;default:'open'"`
	Type          JobType   `gorm:"type:varchar(20);not null"`
	Location      string    `gorm:"not null"`
	PaymentAmount float64   `gorm:"not null"`
	PaymentTypeID string    `gorm:"not null"`
	PaymentType   *PaymentType `gorm:"foreignKey:PaymentTypeID"`

	// 0/1 flag, preserved from the original wire format.
	Urgent     int  `gorm:"not null;default:0"`
	IsArchived bool `gorm:"not null;default:false"`
	IsDeleted  bool `gorm:"not null;default:false"`

	Categories []JobCategory `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}
