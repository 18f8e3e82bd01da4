package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"teams-api/internal/domain/usecase"
	"teams-api/internal/infra/transport/rest/gen"
)

// GET /api/v1/teams
func (h *Handlers) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.ListTeams(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, gen.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	resp := make([]gen.Team, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, gen.Team{
			Id:   t.ID,
			Name: t.Name,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

// GET /api/v1/teams/{teamId}
func (h *Handlers) GetTeamById(w http.ResponseWriter, r *http.Request, teamId int) {
	team, err := h.service.GetTeam(r.Context(), teamId)
	if err != nil {
		if errors.Is(err, usecase.ErrTeamNotFound) {
			WriteError(w, http.StatusNotFound, gen.ErrorResponse{
				Message: fmt.Sprintf("Team %d not found.", teamId),
			})
			return
		}
		WriteError(w, http.StatusInternalServerError, gen.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	resp := gen.Team{
		Id:   team.ID,
		Name: team.Name,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
