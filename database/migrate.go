package database

import (
	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date and seeds the reference catalogs.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() backs every primary key default.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.IssuedToken{},
		&models.Category{},
		&models.Skill{},
		&models.PaymentType{},
		&models.Job{},
		&models.JobCategory{},
		&models.UserSkill{},
		&models.Application{},
	)
	if err != nil {
		return err
	}

	return seedLookups(db)
}

// seedLookups fills the reference catalogs once; existing rows are left alone.
func seedLookups(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PaymentType{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		paymentTypes := []models.PaymentType{
			{Title: "hourly", Description: "Paid per hour worked"},
			{Title: "fixed", Description: "Fixed price for the whole job"},
			{Title: "monthly", Description: "Monthly salary"},
		}
		if err := db.Create(&paymentTypes).Error; err != nil {
			return err
		}
		logger.Info("Seeded payment types", "count", len(paymentTypes))
	}

	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		categories := []models.Category{
			{Title: "Construction"},
			{Title: "Cleaning"},
			{Title: "Delivery"},
			{Title: "IT"},
			{Title: "Design"},
			{Title: "Tutoring"},
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}
		logger.Info("Seeded categories", "count", len(categories))
	}

	if err := db.Model(&models.Skill{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		skills := []models.Skill{
			{Title: "Plumbing"},
			{Title: "Electrical work"},
			{Title: "Painting"},
			{Title: "Web development"},
			{Title: "Graphic design"},
			{Title: "Copywriting"},
		}
		if err := db.Create(&skills).Error; err != nil {
			return err
		}
		logger.Info("Seeded skills", "count", len(skills))
	}

	return nil
}
