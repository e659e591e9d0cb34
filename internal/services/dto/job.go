package dto

import "jobmarket_backend/internal/models"

type JobRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	DateFrom      string   `json:"dateFrom" validate:"required"`
	DateTo        string   `json:"dateTo" validate:"required"`
	Status        string   `json:"status" validate:"omitempty,is-job-status"`
	Type          string   `json:"type" validate:"required,is-job-type"`
	Location      string   `json:"location" validate:"required"`
	PaymentAmount float64  `json:"paymentAmount" validate:"required,gt=0"`
	PaymentTypeID string   `json:"paymentTypeId" validate:"required,uuid4"`
	Urgent        int      `json:"urgent" validate:"oneof=0 1"`
	CategoryIDs   []string `json:"categoryIds" validate:"omitempty,dive,uuid4"`
}

// JobSearchQuery binds the search filters from the query string. All are
// optional; type values that do not parse are treated as no filter.
type JobSearchQuery struct {
	Location string `form:"location"`
	Search   string `form:"search"`
	Type     string `form:"type"`
	Page     int    `form:"page"`
	Size     int    `form:"size"`
}

type JobResponse struct {
	ID            string           `json:"id"`
	CreatedBy     string           `json:"createdBy"`
	CreatedByName string           `json:"createdByName"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	DateFrom      string           `json:"dateFrom"`
	DateTo        string           `json:"dateTo"`
	Status        models.JobStatus `json:"status"`
	Type          models.JobType   `json:"type"`
	Location      string           `json:"location"`
	PaymentAmount float64          `json:"paymentAmount"`
	PaymentType   string           `json:"paymentType"`
	Urgent        int              `json:"urgent"`
	Categories    []string         `json:"categories"`
}

type PaginatedJobResponse struct {
	Content       []JobResponse `json:"content"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
}
