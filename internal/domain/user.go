package domain

// User represents an account in the domain model.
// The password is stored as-is: hardening credentials is explicitly out of
// scope for this application.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser creates a new User with the given credentials.
func NewUser(username, email, password string) User {
	return User{
		Username: username,
		Email:    email,
		Password: password,
	}
}

// IsValid checks if the user has valid data.
func (u User) IsValid() bool {
	return u.Username != "" && u.Email != "" && u.Password != ""
}

// String returns the username for display purposes.
func (u User) String() string {
	return u.Username
}
