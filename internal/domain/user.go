package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeVendor   UserType = "vendor"
	UserTypeAdmin    UserType = "admin"
)

type User struct {
	ID          int         `json:"id"`
	Username    string      `json:"username"`
	Password    string      `json:"-"` // bcrypt hash, never serialized
	Email       string      `json:"email"`
	FullName    string      `json:"full_name"`
	PhoneNumber null.String `json:"phone_number"`
	UserType    UserType    `json:"user_type"`
	CreatedAt   time.Time   `json:"created_at"`
}

type RegisterUserDTO struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=6,max=100"`
	Email       string `json:"email" binding:"required,email"`
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	UserType    string `json:"user_type" binding:"omitempty,oneof=customer vendor"`
}

type LoginUserDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponseDTO struct {
	Token    string   `json:"token"`
	UserID   int      `json:"user_id"`
	Username string   `json:"username"`
	UserType UserType `json:"user_type"`
}
