package models

// Lecturer is an academic staff record.
type Lecturer struct {
	Name       string `json:"name" yaml:"name"`
	Email      string `json:"email" yaml:"email"`
	Department string `json:"department" yaml:"department"`
	EmployeeID string `json:"employee_id" yaml:"employee_id"`
}
