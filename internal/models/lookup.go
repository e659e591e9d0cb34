package models

// Category, Skill and PaymentType are reference entities managed outside
// the public API (seeded at migration time, listed read-only).

type Category struct {
	BaseModel
	Title       string `gorm:"not null;uniqueIndex"`
	Description string
	IsDeleted   bool `gorm:"not null;default:false"`
}

type Skill struct {
	BaseModel
	Title       string `gorm:"not null;uniqueIndex"`
	Description string
	IsDeleted   bool `gorm:"not null;default:false"`
}

type PaymentType struct {
	BaseModel
	Title       string `gorm:"not null;uniqueIndex"`
	Description string
	IsDeleted   bool `gorm:"not null;default:false"`
}

// JobCategory rows are replaced wholesale when a job's categories change.
type JobCategory struct {
	JobID      string `gorm:"primaryKey"`
	CategoryID string `gorm:"primaryKey"`
}

type UserSkill struct {
	UserID  string           `gorm:"primaryKey"`
	SkillID string           `gorm:"primaryKey"`
	Level   ProficiencyLevel `gorm:"type:varchar(20);not null;default:'beginner'"`
}
