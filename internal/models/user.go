package models

import "time"

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	FullName     string   `gorm:"not null"`
	Bio          string
	Email        string   `gorm:"not null"`
	Phone        string
	City         string
	Role         UserRole `gorm:"type:varchar(20);not null"`
	IsDeleted    bool     `gorm:"not null;default:false"`

	// Relations
	Skills []UserSkill `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Jobs   []Job       `gorm:"foreignKey:CreatedByID"`
}

// IssuedToken is an audit record per generated JWT. Validity is decided by
// signature and expiry alone; this table is never consulted at request time.
type IssuedToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
}
