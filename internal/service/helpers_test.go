package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-desk-api/internal/repository"
)

func loadSeed(t *testing.T) *repository.Seed {
	t.Helper()
	seed, err := repository.LoadSeed()
	require.NoError(t, err)
	return seed
}
