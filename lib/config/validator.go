package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var profileNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Endpoint override keys accepted in [modem.endpoints].
var knownEndpointKeys = map[string]bool{
	"login":    true,
	"reboot":   true,
	"wireless": true,
	"page":     true,
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "ip":
		return "must be a valid IP address"
	case "hostname_port":
		return "must be in format 'host:port'"
	case "profile_name":
		return "must start with a letter and consist only of lowercase letters, numbers, underscores and dashes"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For modem profiles: the profile name
	FieldPath string // Dot-notation field path (e.g., "general.api_bind")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("profile_name", validateProfileName); err != nil {
		panic(err)
	}

	// Report field names via the "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateProfileName(fl validator.FieldLevel) bool {
	return profileNameRegexp.MatchString(fl.Field().String())
}

// ValidateConfig validates the entire configuration and returns all
// validation errors at once.
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General != nil {
		if err := validate.Struct(c.General); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
		}
	}

	if len(c.Modems) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "modem",
			Message:   "configuration must contain at least one modem profile",
		})
	} else {
		validationErrors = append(validationErrors, c.validateModems()...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateModems() ValidationErrors {
	var validationErrors ValidationErrors

	seenNames := make(map[string]bool)

	for i, m := range c.Modems {
		itemName := m.Name
		if itemName == "" {
			itemName = fmt.Sprintf("modem[%d]", i)
		}

		if err := validate.Struct(m); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fmt.Sprintf("modem.%d", i), itemName)...)
		}

		if seenNames[m.Name] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "name",
				Message:   fmt.Sprintf("duplicate modem profile name: %s", m.Name),
			})
		}
		seenNames[m.Name] = true

		for key, path := range m.Endpoints {
			if !knownEndpointKeys[key] {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: "endpoints." + key,
					Message:   "unknown endpoint override (known: login, reboot, wireless, page)",
				})
			}
			if !strings.HasPrefix(path, "/") {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: "endpoints." + key,
					Message:   "endpoint path must start with /",
				})
			}
		}
	}

	return validationErrors
}

func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because of the
				// registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	} else if err != nil {
		validationErrors = append(validationErrors, ValidationError{
			ItemName:  itemName,
			FieldPath: fieldPrefix,
			Message:   err.Error(),
		})
	}

	return validationErrors
}
