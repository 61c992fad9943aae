package validation

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskName validates a task name for creation
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()

	// Trim whitespace
	trimmedName := tv.validator.TrimAndValidateString(name)

	// Check if name is empty
	if !tv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("task_name")
		return validationError
	}

	// Check length constraints (1-255 characters)
	if !tv.validator.IsValidStringLength(trimmedName, 1, 255) {
		validationError.AddInvalidLengthError("task_name", trimmedName, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskForCreation validates the fields of a new task.
// Description is free-form; the due date must be an ISO date when present.
func (tv *TaskValidator) ValidateTaskForCreation(name, dueDate string) error {
	validationError := NewValidationError()

	if nameErr := tv.ValidateTaskName(name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if !tv.validator.IsValidDueDate(dueDate) {
		validationError.AddInvalidFormatError("due_date", dueDate, DueDateFormat)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("task_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// GetValidTaskName returns a cleaned task name if valid
func (tv *TaskValidator) GetValidTaskName(name string) (string, error) {
	if err := tv.ValidateTaskName(name); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(name), nil
}
