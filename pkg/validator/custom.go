package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/elpatrico11/incident-app-sub000/internal/domain"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("inc_status", validateStatus)
	validate.RegisterValidation("inc_category", validateCategory)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateStatus(fl validator.FieldLevel) bool {
	return domain.IncidentStatus(fl.Field().String()).Valid()
}

func validateCategory(fl validator.FieldLevel) bool {
	return domain.IncidentCategory(fl.Field().String()).Valid()
}
