package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/athlyze/athlyze/internal/errors"
	"github.com/athlyze/athlyze/internal/profile"
	"github.com/athlyze/athlyze/internal/services"
)

func newSportService(t *testing.T) services.SportService {
	t.Helper()
	registry, err := profile.NewRegistry()
	require.NoError(t, err)
	return services.NewSportService(registry)
}

func TestListSports_ReturnsAllProfiles(t *testing.T) {
	svc := newSportService(t)

	sports := svc.ListSports(context.Background())

	require.Len(t, sports, 7)
	assert.Equal(t, profile.SportDiscus, sports[0].Sport)
	assert.Equal(t, profile.SportSprintStart, sports[6].Sport)
	for _, s := range sports {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Phases)
		assert.Greater(t, s.Criteria, 0)
	}
}

func TestGetSport_ReturnsProfile(t *testing.T) {
	svc := newSportService(t)

	p, err := svc.GetSport(context.Background(), profile.SportLongJump)

	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, profile.SportLongJump, p.Sport)
	require.Len(t, p.Phases, 4)
	assert.Equal(t, "approach", p.Phases[0].Name)
}

func TestGetSport_Unknown(t *testing.T) {
	svc := newSportService(t)

	_, err := svc.GetSport(context.Background(), "curling")

	assertCode(t, err, errors.ErrCodeNotFound)
}
