package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-desk-api/internal/dto"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
)

func newAuthService(t *testing.T, delay time.Duration) *AuthService {
	svc, err := NewAuthService(AuthConfig{Username: "admin", Password: "admin", LoginDelay: delay}, nil, nil, nil)
	require.NoError(t, err)
	return svc
}

func TestLoginAcceptsConfiguredPair(t *testing.T) {
	svc := newAuthService(t, 0)
	result, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.True(t, result.Authenticated)
	assert.Equal(t, "/admin/dashboard", result.Redirect)
}

func TestLoginRejectsWrongPair(t *testing.T) {
	svc := newAuthService(t, 0)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "nope"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidCredentials))

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "root", Password: "admin"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidCredentials))

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "admin"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestLoginWaitsForDelay(t *testing.T) {
	svc := newAuthService(t, 50*time.Millisecond)
	start := time.Now()
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	slow := newAuthService(t, time.Second)
	_, err = slow.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin"})
	assert.True(t, errors.Is(err, appErrors.ErrUnavailable))
}
