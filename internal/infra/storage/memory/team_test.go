package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teams-api/internal/domain/entity"
	"teams-api/internal/domain/usecase"
)

func TestTeamStorage_GetSeeded(t *testing.T) {
	s := NewTeamStorage()
	s.Seed(SeedTeams())

	// every seeded team must come back unchanged
	for _, want := range SeedTeams() {
		got, err := s.Get(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestTeamStorage_GetMissing(t *testing.T) {
	s := NewTeamStorage()
	s.Seed(SeedTeams())

	_, err := s.Get(context.Background(), 999)
	assert.ErrorIs(t, err, usecase.ErrTeamNotFound)
}

func TestTeamStorage_List(t *testing.T) {
	s := NewTeamStorage()
	s.Seed([]entity.Team{
		{ID: 3, Name: "Ajax"},
		{ID: 1, Name: "Liverpool"},
		{ID: 2, Name: "Real Madrid"},
	})

	teams, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 3)
	assert.Equal(t, []entity.Team{
		{ID: 1, Name: "Liverpool"},
		{ID: 2, Name: "Real Madrid"},
		{ID: 3, Name: "Ajax"},
	}, teams)
}

func TestTeamStorage_ListEmpty(t *testing.T) {
	s := NewTeamStorage()

	teams, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, teams)
	assert.Empty(t, teams)
}

func TestTeamStorage_SeedOverwritesDuplicateID(t *testing.T) {
	s := NewTeamStorage()
	s.Seed([]entity.Team{
		{ID: 1, Name: "Liverpool"},
		{ID: 1, Name: "Barcelona"},
	})

	teams, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Barcelona", teams[0].Name)
}
