package handlers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -config ../../../../../api/oapi-codegen.yaml ../../../../../api/openapi.yaml

import (
	"teams-api/internal/domain/usecase"
	"teams-api/internal/infra/transport/rest/gen"
)

type Handlers struct {
	gen.Unimplemented
	service usecase.Service
}

func NewHandlers(service usecase.Service) gen.ServerInterface {
	return &Handlers{
		service: service,
	}
}
