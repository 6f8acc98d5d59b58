package dto

import "github.com/google/uuid"

type CreateUserRequest struct {
	Email       string                 `json:"email"`
	Password    string                 `json:"password"`
	PhoneNumber string                 `json:"phone_number,omitempty"`
	Role        string                 `json:"role"`
	Profile     map[string]interface{} `json:"profile,omitempty"`
}

type CreateUserResponse struct {
	Success bool      `json:"success"`
	UID     uuid.UUID `json:"uid"`
	Email   string    `json:"email"`
}
