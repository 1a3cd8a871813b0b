package repository

import "github.com/noah-isme/campus-desk-api/internal/models"

// LecturerRepository stores lecturer records.
type LecturerRepository struct {
	items *Collection[models.Lecturer]
}

// NewLecturerRepository constructs a LecturerRepository.
func NewLecturerRepository(seed []models.Lecturer) *LecturerRepository {
	return &LecturerRepository{items: NewCollection(seed, func(l models.Lecturer) string { return l.EmployeeID }, nil)}
}

// List returns every lecturer.
func (r *LecturerRepository) List() []models.Lecturer {
	return r.items.List()
}

// Create appends a lecturer.
func (r *LecturerRepository) Create(lecturer models.Lecturer) models.Lecturer {
	return r.items.Insert(lecturer)
}

// Count returns the number of lecturers.
func (r *LecturerRepository) Count() int {
	return r.items.Len()
}
