package utils

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/prefeitura-rio/app-attestation/internal/models"
)

var (
	sexRegex      = regexp.MustCompile(`^(H|F)$`)
	nameRegex     = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿŒœŸ -]{2,50}$`)
	addressRegex  = regexp.MustCompile(`^[A-Za-z0-9À-ÖØ-öø-ÿŒœŸ ]{2,50}$`)
	birthdayRegex = regexp.MustCompile(`^([0-2][0-9]|3[0-1])/(0[0-9]|1[0-2])/[0-9]{4}$`)
	postcodeRegex = regexp.MustCompile(`^[0-9]{5}$`)
)

// fieldRule pairs a pattern with the hint returned when it does not match
type fieldRule struct {
	pattern *regexp.Regexp
	hint    string
}

var fieldRules = map[string]fieldRule{
	models.FieldSex:          {sexRegex, "must be H or F"},
	models.FieldFirstName:    {nameRegex, "must be 2-50 letters, spaces or hyphens"},
	models.FieldLastName:     {nameRegex, "must be 2-50 letters, spaces or hyphens"},
	models.FieldPlaceOfBirth: {nameRegex, "must be 2-50 letters, spaces or hyphens"},
	models.FieldCity:         {nameRegex, "must be 2-50 letters, spaces or hyphens"},
	models.FieldAddress:      {addressRegex, "must be 2-50 letters, digits or spaces"},
	models.FieldBirthday:     {birthdayRegex, "must be in format DD/MM/YYYY"},
	models.FieldPostcode:     {postcodeRegex, "must be exactly 5 digits"},
}

// ReasonSet is the set of reason codes a submission may use
type ReasonSet interface {
	Has(code string) bool
	Codes() []string
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool                `json:"is_valid"`
	Errors  []models.FieldError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []models.FieldError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, models.FieldError{
		Field:   field,
		Message: message,
	})
}

// Err returns a *models.ValidationError when the result is invalid, nil otherwise
func (vr *ValidationResult) Err() error {
	if vr.IsValid {
		return nil
	}
	return &models.ValidationError{Fields: vr.Errors}
}

// ValidateSubmission checks submitted form values strictly: every declared field is
// required exactly once, and undeclared fields are rejected.
func ValidateSubmission(form url.Values, reasons ReasonSet) (*models.Submission, *ValidationResult) {
	result := NewValidationResult()

	// Strict parsing: reject anything not declared, in a stable order
	var unexpected []string
	for key := range form {
		if _, ok := fieldRules[key]; !ok && key != models.FieldReason {
			unexpected = append(unexpected, key)
		}
	}
	sort.Strings(unexpected)
	for _, key := range unexpected {
		result.AddError(key, "unexpected field")
	}

	values := make(map[string]string, len(models.SubmissionFields))
	for _, field := range models.SubmissionFields {
		submitted, present := form[field]
		switch {
		case !present || len(submitted) == 0 || strings.TrimSpace(submitted[0]) == "":
			result.AddError(field, "is required")
			continue
		case len(submitted) > 1:
			result.AddError(field, "must be provided only once")
			continue
		}

		value := submitted[0]
		if field == models.FieldReason {
			if !reasons.Has(value) {
				result.AddError(field, "must be one of: "+strings.Join(reasons.Codes(), ", "))
				continue
			}
		} else if rule := fieldRules[field]; !rule.pattern.MatchString(value) {
			result.AddError(field, rule.hint)
			continue
		}
		values[field] = value
	}

	if !result.IsValid {
		return nil, result
	}

	sex, err := models.ParseSex(values[models.FieldSex])
	if err != nil {
		result.AddError(models.FieldSex, fieldRules[models.FieldSex].hint)
		return nil, result
	}

	return &models.Submission{
		Sex:          sex,
		FirstName:    values[models.FieldFirstName],
		LastName:     values[models.FieldLastName],
		Birthday:     values[models.FieldBirthday],
		PlaceOfBirth: values[models.FieldPlaceOfBirth],
		Address:      values[models.FieldAddress],
		City:         values[models.FieldCity],
		Postcode:     values[models.FieldPostcode],
		Reason:       values[models.FieldReason],
	}, result
}
