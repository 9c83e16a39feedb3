package utils

import (
	"regexp"
	"strings"

	"safarsorted/api/models"
)

var (
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,14}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateInquiry checks an inquiry submission and returns human-readable
// messages for every failing rule. An empty result means the submission is
// acceptable; no record is ever created from a failing one.
func ValidateInquiry(req models.InquiryRequest) []string {
	var errors []string

	if len(strings.TrimSpace(req.Name)) < 2 {
		errors = append(errors, "Please enter a valid name")
	}

	phone := strings.ReplaceAll(req.Phone, " ", "")
	if !phoneRegex.MatchString(phone) {
		errors = append(errors, "Please enter a valid phone number")
	}

	// Email is optional; only its shape is checked when present.
	if req.Email != "" && !emailRegex.MatchString(req.Email) {
		errors = append(errors, "Please enter a valid email")
	}

	if req.Destination == "" {
		errors = append(errors, "Please select a destination")
	}

	if _, ok := CoerceTravelers(req.Travelers); !ok {
		errors = append(errors, "Please enter number of travelers")
	}

	return errors
}
