package memory

import (
	"context"
	"sort"

	"teams-api/internal/domain/entity"
	"teams-api/internal/domain/repository"
	"teams-api/internal/domain/usecase"
)

var _ repository.TeamRepository = (*TeamStorage)(nil)

// TeamStorage holds the authoritative team collection in memory. It is
// populated once by Seed at startup and never mutated afterwards, so
// concurrent reads need no locking.
type TeamStorage struct {
	teams map[int]entity.Team
	ids   []int
}

func NewTeamStorage() *TeamStorage {
	return &TeamStorage{
		teams: make(map[int]entity.Team),
	}
}

// Seed loads the startup data set. Calling it is a precondition for lookups
// to succeed; it must not be called again once the server accepts requests.
func (s *TeamStorage) Seed(teams []entity.Team) {
	for _, t := range teams {
		if _, ok := s.teams[t.ID]; !ok {
			s.ids = append(s.ids, t.ID)
		}
		s.teams[t.ID] = t
	}
	sort.Ints(s.ids)
}

// SeedTeams is the fixed data set loaded at process startup.
func SeedTeams() []entity.Team {
	return []entity.Team{
		{ID: 1, Name: "Liverpool"},
		{ID: 2, Name: "Real Madrid"},
	}
}

func (s *TeamStorage) List(_ context.Context) ([]entity.Team, error) {
	teams := make([]entity.Team, 0, len(s.ids))
	for _, id := range s.ids {
		teams = append(teams, s.teams[id])
	}
	return teams, nil
}

func (s *TeamStorage) Get(_ context.Context, id int) (entity.Team, error) {
	team, ok := s.teams[id]
	if !ok {
		return entity.Team{}, usecase.ErrTeamNotFound
	}
	return team, nil
}
