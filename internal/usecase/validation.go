package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreatePaymentInput(input CreatePaymentInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "is required"})
	}
	if strings.TrimSpace(input.TermAcceptanceID) == "" {
		errors = append(errors, ValidationError{"term_acceptance_id", "is required"})
	}
	if input.Amount < 0 {
		errors = append(errors, ValidationError{"amount", "must not be negative"})
	}
	if input.Currency != "" && len(input.Currency) != 3 {
		errors = append(errors, ValidationError{"currency", "must be a 3-letter code"})
	}

	return errors
}

func ValidateAcceptTermsInput(input AcceptTermsInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "is required"})
	}

	return errors
}
