package validation

// CredentialsValidator provides validation for account-related operations.
// Checks are presence-only: there is deliberately no email format check and
// no password strength rule.
type CredentialsValidator struct {
	validator *Validator
}

// NewCredentialsValidator creates a new credentials validator
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		validator: NewValidator(),
	}
}

// ValidateSignup validates the fields required to register a new account
func (cv *CredentialsValidator) ValidateSignup(username, email, password string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(username) {
		validationError.AddRequiredError("username")
	}
	if !cv.validator.IsNonEmptyString(email) {
		validationError.AddRequiredError("email")
	}
	if !cv.validator.IsNonEmptyString(password) {
		validationError.AddRequiredError("password")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateLogin validates the fields required to authenticate
func (cv *CredentialsValidator) ValidateLogin(username, password string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(username) {
		validationError.AddRequiredError("username")
	}
	if !cv.validator.IsNonEmptyString(password) {
		validationError.AddRequiredError("password")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateUsername validates a bare username
func (cv *CredentialsValidator) ValidateUsername(username string) error {
	if !cv.validator.IsNonEmptyString(username) {
		validationError := NewValidationError()
		validationError.AddRequiredError("username")
		return validationError
	}
	return nil
}
