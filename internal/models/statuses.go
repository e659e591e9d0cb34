package models

import (
	"fmt"
	"strings"
)

type UserRole string
type JobStatus string
type JobType string
type ApplicationStatus string
type ProficiencyLevel string

const (
	UserRoleEmployer   UserRole = "employer"
	UserRoleFreelancer UserRole = "freelancer"
	UserRoleAdmin      UserRole = "admin"

	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"

	JobTypeFullTime  JobType = "full_time"
	JobTypePartTime  JobType = "part_time"
	JobTypeContract  JobType = "contract"
	JobTypeTemporary JobType = "temporary"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	ProficiencyBeginner     ProficiencyLevel = "beginner"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyExpert       ProficiencyLevel = "expert"
)

/*
One tolerant parse function per enum. Fallback order: exact value match,
then case-insensitive match, then reject. Callers decide whether a reject
is an error (create/update) or "no filter" (search).
*/

var userRoles = []UserRole{UserRoleEmployer, UserRoleFreelancer, UserRoleAdmin}
var jobStatuses = []JobStatus{JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled}
var jobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeTemporary}
var applicationStatuses = []ApplicationStatus{ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected}
var proficiencyLevels = []ProficiencyLevel{ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert}

func ParseUserRole(s string) (UserRole, error) {
	for _, r := range userRoles {
		if s == string(r) {
			return r, nil
		}
	}
	for _, r := range userRoles {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid user role: %q", s)
}

func ParseJobStatus(s string) (JobStatus, error) {
	for _, st := range jobStatuses {
		if s == string(st) {
			return st, nil
		}
	}
	for _, st := range jobStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid job status: %q", s)
}

func ParseJobType(s string) (JobType, error) {
	for _, t := range jobTypes {
		if s == string(t) {
			return t, nil
		}
	}
	for _, t := range jobTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid job type: %q", s)
}

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	for _, st := range applicationStatuses {
		if s == string(st) {
			return st, nil
		}
	}
	for _, st := range applicationStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid application status: %q", s)
}

// ParseProficiencyLevel never fails: unknown input falls back to beginner.
func ParseProficiencyLevel(s string) ProficiencyLevel {
	for _, l := range proficiencyLevels {
		if s == string(l) {
			return l
		}
	}
	for _, l := range proficiencyLevels {
		if strings.EqualFold(s, string(l)) {
			return l
		}
	}
	return ProficiencyBeginner
}
