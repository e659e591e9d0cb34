package dto

import "jobmarket_backend/internal/models"

type CategoryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SkillResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PaymentTypeResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UserSkillResponse joins the skill catalog row with the user's level.
type UserSkillResponse struct {
	SkillID string                  `json:"skillId"`
	Title   string                  `json:"title"`
	Level   models.ProficiencyLevel `json:"level"`
}

type AddUserSkillRequest struct {
	SkillID string `json:"skillId" validate:"required,uuid4"`
	Level   string `json:"level" validate:"omitempty,is-proficiency-level"`
}

type UpdateUserSkillRequest struct {
	Level string `json:"level" validate:"required,is-proficiency-level"`
}
