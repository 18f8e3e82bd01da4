package app

import (
	"context"
	"errors"

	"teams-api/internal/domain/entity"
	"teams-api/internal/domain/repository"
	"teams-api/internal/domain/usecase"
)

// compile-time proof
var _ usecase.Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	teams repository.TeamRepository
}

func NewService(teams repository.TeamRepository) usecase.Service {
	return &ServiceImpl{
		teams: teams,
	}
}

func (s *ServiceImpl) ListTeams(ctx context.Context) ([]entity.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (s *ServiceImpl) GetTeam(ctx context.Context, id int) (entity.Team, error) {
	team, err := s.teams.Get(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrTeamNotFound) {
			return entity.Team{}, usecase.ErrTeamNotFound
		}
		return entity.Team{}, err
	}
	return team, nil
}
