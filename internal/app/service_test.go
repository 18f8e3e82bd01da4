package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teams-api/internal/domain/usecase"
	"teams-api/internal/infra/storage/memory"
)

func newSeededService() usecase.Service {
	repo := memory.NewTeamStorage()
	repo.Seed(memory.SeedTeams())
	return NewService(repo)
}

func TestServiceListTeams(t *testing.T) {
	svc := newSeededService()

	teams, err := svc.ListTeams(context.Background())
	require.NoError(t, err)
	assert.Len(t, teams, len(memory.SeedTeams()))
}

func TestServiceGetTeam(t *testing.T) {
	svc := newSeededService()

	team, err := svc.GetTeam(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, team.ID)
	assert.Equal(t, "Liverpool", team.Name)
}

func TestServiceGetTeamNotFound(t *testing.T) {
	svc := newSeededService()

	_, err := svc.GetTeam(context.Background(), 3)
	assert.ErrorIs(t, err, usecase.ErrTeamNotFound)
}
