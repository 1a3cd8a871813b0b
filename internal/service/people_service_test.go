package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-desk-api/internal/dto"
	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/internal/repository"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
)

func TestLecturerCreateValidation(t *testing.T) {
	svc := NewLecturerService(repository.NewLecturerRepository(loadSeed(t).Lecturers), nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateLecturerRequest{Name: "Ann Lee", Email: "not-an-email", Department: "Maths", EmployeeID: "EMP003"})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, []string{"email must be a valid email address"}, appErr.Details)
	assert.Len(t, svc.List(ctx), 2)

	_, err = svc.Create(ctx, dto.CreateLecturerRequest{Name: "A", Email: "a@tut.ac.za", Department: "X", EmployeeID: "E"})
	require.True(t, errors.As(err, &appErr))
	assert.Len(t, appErr.Details, 3)
	assert.Contains(t, appErr.Details, "name must be at least 2 characters")

	created, err := svc.Create(ctx, dto.CreateLecturerRequest{Name: "Ann Lee", Email: "ann.lee@tut.ac.za", Department: "Mathematics", EmployeeID: "EMP003"})
	require.NoError(t, err)
	assert.Equal(t, "EMP003", created.EmployeeID)
	assert.Len(t, svc.List(ctx), 3)
}

func TestUserCreateAndDelete(t *testing.T) {
	svc := NewUserService(repository.NewUserRepository(loadSeed(t).Users), nil, nil)
	ctx := context.Background()

	user, err := svc.Create(ctx, dto.CreateUserRequest{Name: "Lerato M", Email: "lerato@tut.ac.za", Role: models.RoleLecturer})
	require.NoError(t, err)
	assert.Equal(t, "USR005", user.ID)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.Equal(t, "Just now", user.LastActive)

	_, err = svc.Create(ctx, dto.CreateUserRequest{Name: "X", Email: "x@tut.ac.za", Role: "Janitor"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	_, err = svc.Create(ctx, dto.CreateUserRequest{Email: "x@tut.ac.za", Role: models.RoleStudent})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	require.NoError(t, svc.Delete(ctx, "USR001"))
	assert.Len(t, svc.List(ctx), 4)
	assert.True(t, errors.Is(svc.Delete(ctx, "USR001"), appErrors.ErrNotFound))
}
