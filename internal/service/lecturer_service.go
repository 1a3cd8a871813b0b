package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/dto"
	"github.com/noah-isme/campus-desk-api/internal/models"
)

type lecturerRepository interface {
	List() []models.Lecturer
	Create(lecturer models.Lecturer) models.Lecturer
}

// LecturerService orchestrates lecturer operations.
type LecturerService struct {
	repo      lecturerRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLecturerService constructs a LecturerService.
func NewLecturerService(repo lecturerRepository, validate *validator.Validate, logger *zap.Logger) *LecturerService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LecturerService{repo: repo, validator: validate, logger: logger}
}

// List returns all lecturers.
func (s *LecturerService) List(ctx context.Context) []models.Lecturer {
	return s.repo.List()
}

// Create validates the form and appends a lecturer. Invalid input leaves the store unchanged.
func (s *LecturerService) Create(ctx context.Context, req dto.CreateLecturerRequest) (*models.Lecturer, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid lecturer payload")
	}
	lecturer := s.repo.Create(models.Lecturer{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		EmployeeID: req.EmployeeID,
	})
	s.logger.Info("lecturer added", zap.String("employee_id", lecturer.EmployeeID))
	return &lecturer, nil
}
