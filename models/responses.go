package models

// UserData wraps a user inside the "data" member of a response envelope.
type UserData struct {
	User PublicUser `json:"user"`
}

// AuthResponse is the envelope for register, reset-password and
// update-password.
type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	Data    UserData `json:"data"`
}

// LoginResponse is the envelope for a successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Role    Role   `json:"role"`
}

// ForgotPasswordResponse is the envelope for a forgot-password request.
// ResetToken is empty when unknown emails are concealed.
type ForgotPasswordResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

// CurrentUserResponse is the envelope for GET /api/users/me.
type CurrentUserResponse struct {
	Success bool     `json:"success"`
	Data    UserData `json:"data"`
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope of every failed request. Stack is only set
// when the server runs in development mode.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Stack   string       `json:"stack,omitempty"`
}
