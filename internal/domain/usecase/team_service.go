package usecase

import (
	"context"

	"teams-api/internal/domain/entity"
)

type TeamUseCase interface {
	// Получить все команды
	ListTeams(ctx context.Context) ([]entity.Team, error)

	// Получить команду по id
	GetTeam(ctx context.Context, id int) (entity.Team, error)
}

// Фасад для агрегации интерфейсов сервиса
type Service interface {
	TeamUseCase
}
