// Package validation checks configuration and request inputs at the
// boundaries of the application.
package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/douglyuckling/movievis/pkg/layout"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxTitleLength = 200
	MaxNameLength  = 120

	// Canonical textual form of catalog IDs
	idPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

func init() {
	validate = validator.New()
}

// CurveQueryRequest carries the arguments of a curves-for-actor query
type CurveQueryRequest struct {
	ActorID string `json:"actorId" validate:"required,uuid"`
}

// ValidateCurveQueryRequest validates the arguments of a curve query
func ValidateCurveQueryRequest(req *CurveQueryRequest) error {
	if req == nil {
		return errors.New("curve query request cannot be nil")
	}

	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// ValidateLayoutConfig validates layout calibration values
func ValidateLayoutConfig(cfg layout.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateIDString validates the textual form of a catalog ID
func ValidateIDString(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("id '%s' is not a valid catalog id", id)
	}
	return nil
}

// ValidateTitle validates a movie title
func ValidateTitle(title string) error {
	if title == "" {
		return errors.New("title cannot be empty")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	return nil
}

// ValidateName validates a person name
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", MaxNameLength)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "gt":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "gtfield":
			return fmt.Errorf("%s: must be greater than %s", field, param)
		case "uuid":
			return fmt.Errorf("%s: must be a valid id", field)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
