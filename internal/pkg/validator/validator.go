package validator

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		if _, seen := result[err.Field]; !seen {
			result[err.Field] = err.Message
		}
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// ValidateDateRange checks a "from"/"to" pair of YYYY-MM-DD dates with from not after to.
func ValidateDateRange(from, to string) ValidationErrors {
	var errs ValidationErrors

	fromDate, fromOK := IsValidDate(from)
	if !fromOK {
		errs = append(errs, ValidationError{Field: "from", Message: "must be a date in YYYY-MM-DD format"})
	}
	toDate, toOK := IsValidDate(to)
	if !toOK {
		errs = append(errs, ValidationError{Field: "to", Message: "must be a date in YYYY-MM-DD format"})
	}
	if fromOK && toOK && fromDate.After(toDate) {
		errs = append(errs, ValidationError{Field: "from", Message: "must not be after to"})
	}

	return errs
}
