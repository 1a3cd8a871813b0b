package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/internal/repository"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
)

func newRequestService(t *testing.T) *RequestService {
	return NewRequestService(repository.NewRequestRepository(loadSeed(t).Requests), nil, nil, nil)
}

func TestRequestCancelIsUnguarded(t *testing.T) {
	svc := newRequestService(t)
	ctx := context.Background()

	req, err := svc.Cancel(ctx, "REQ-002")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCancelled, req.Status)

	req, err = svc.Cancel(ctx, "REQ-002")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusCancelled, req.Status)

	_, err = svc.Cancel(ctx, "REQ-404")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestRequestListAndRecent(t *testing.T) {
	svc := newRequestService(t)
	ctx := context.Background()

	items, pagination := svc.List(ctx, models.RequestFilter{Status: "All", Type: "Maintenance"})
	assert.Len(t, items, 3)
	assert.Equal(t, 3, pagination.TotalCount)

	recent := svc.Recent(ctx, 0)
	require.Len(t, recent, 4)
	assert.Equal(t, "REQ-001", recent[0].ID)
	assert.Len(t, svc.Recent(ctx, 20), 7)
}
