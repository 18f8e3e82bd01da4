package repository

import (
	"context"

	"teams-api/internal/domain/entity"
)

type TeamRepository interface {
	// List returns every team in the storage, ascending by id.
	List(ctx context.Context) ([]entity.Team, error)
	// Get returns the team with the given id or usecase.ErrTeamNotFound.
	Get(ctx context.Context, id int) (entity.Team, error)
}
