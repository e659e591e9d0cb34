package validator

import (
	"log"

	"jobmarket_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum validation tags used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-type", validateJobType)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-proficiency-level", validateProficiencyLevel)
}

// Empty values pass every rule; combine with 'required' when the field is
// mandatory.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := models.ParseUserRole(value)
	return err == nil
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := models.ParseJobType(value)
	return err == nil
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := models.ParseJobStatus(value)
	return err == nil
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := models.ParseApplicationStatus(value)
	return err == nil
}

func validateProficiencyLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProficiencyLevel(value) {
	case models.ProficiencyBeginner, models.ProficiencyIntermediate, models.ProficiencyAdvanced, models.ProficiencyExpert:
		return true
	default:
		return false
	}
}
