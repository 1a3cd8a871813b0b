package dto

import "github.com/noah-isme/campus-desk-api/internal/models"

// CreateLecturerRequest mirrors the lecturer form.
type CreateLecturerRequest struct {
	Name       string `json:"name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required,min=2"`
	EmployeeID string `json:"employee_id" validate:"required,min=2"`
}

// CreateUserRequest mirrors the add-user dialog.
type CreateUserRequest struct {
	Name   string            `json:"name" validate:"required"`
	Email  string            `json:"email" validate:"required,email"`
	Role   models.UserRole   `json:"role" validate:"required,oneof=Student Lecturer Moderator Admin"`
	Status models.UserStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}
