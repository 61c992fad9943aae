package validation

import (
	"strings"
	"time"

	"task-desk/internal/config"
)

// DueDateFormat is the wire format for task due dates (ISO date, no time part).
const DueDateFormat = "2006-01-02"

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTaskNameLength checks if a task name length is within configured limits
func (v *Validator) IsValidTaskNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	minLen := v.getTaskNameMinLength()
	maxLen := v.getTaskNameMaxLength()
	return length >= minLen && length <= maxLen
}

// IsValidDueDate checks if a due date string parses as an ISO date.
// An empty due date is valid; the field is optional.
func (v *Validator) IsValidDueDate(dueDate string) bool {
	if dueDate == "" {
		return true
	}
	_, err := time.Parse(DueDateFormat, dueDate)
	return err == nil
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getTaskNameMinLength returns configured minimum task name length or default
func (v *Validator) getTaskNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMinLength
	}
	return 1 // Default minimum
}

// getTaskNameMaxLength returns configured maximum task name length or default
func (v *Validator) getTaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return 255 // Default maximum
}
