package auth

import "github.com/amirasaad/ledger/pkg/domain/user"

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is returned on successful login.
type Session struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}
