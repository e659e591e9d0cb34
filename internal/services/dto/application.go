package dto

import "jobmarket_backend/internal/models"

type ApplicationRequest struct {
	JobID   string `json:"jobId" validate:"required,uuid4"`
	Message string `json:"message" validate:"required"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type ApplicationResponse struct {
	ID           string                   `json:"id"`
	UserID       string                   `json:"userId"`
	UserFullName string                   `json:"userFullName"`
	JobID        string                   `json:"jobId"`
	JobTitle     string                   `json:"jobTitle"`
	Message      string                   `json:"message"`
	Status       models.ApplicationStatus `json:"status"`
}
