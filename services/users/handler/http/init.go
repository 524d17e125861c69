package http

import (
	"github.com/piresc/bloodlink/services/users"
)

// UserHandler handles HTTP requests for accounts and institutions
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}
