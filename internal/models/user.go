package models

// UserRole enumerates console account roles.
type UserRole string

const (
	RoleStudent   UserRole = "Student"
	RoleLecturer  UserRole = "Lecturer"
	RoleModerator UserRole = "Moderator"
	RoleAdmin     UserRole = "Admin"
)

// UserStatus marks whether an account is active.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a managed campus account.
type User struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Email      string     `json:"email" yaml:"email"`
	Role       UserRole   `json:"role" yaml:"role"`
	Status     UserStatus `json:"status" yaml:"status"`
	LastActive string     `json:"last_active" yaml:"last_active"`
}
