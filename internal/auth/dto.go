package auth

import "github.com/washlane/washlane-backend/internal/users"

// RegisterRequest captures the signup form payload.
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Phone    string `json:"phone" form:"phone" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
}

// LoginRequest captures the credentials sent to the login endpoint. The
// phone number is the login identifier.
type LoginRequest struct {
	Phone    string `json:"phone" form:"phone" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse contains the session token and user produced by a
// successful login. The token is also set as the session cookie at the
// HTTP boundary.
type LoginResponse struct {
	SessionToken string         `json:"session_token"`
	User         *users.UserDTO `json:"user"`
}
