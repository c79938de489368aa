package handlers

import (
	"net/http"

	"github.com/Adfay-Inc/Puntus/services"
)

type StandingsHandler struct {
	standingsService services.StandingsService
}

func NewStandingsHandler(standingsService services.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

// Leaderboard godoc
// @Summary Current ranked standings of a scrim
// @Tags standings
// @Produce json
// @Param scrimID path int true "Scrim ID"
// @Success 200 {object} map[string]interface{}
// @Router /scrims/{scrimID}/leaderboard [get]
func (h *StandingsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	scrimID, err := getIDFromURL(r, "scrimID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	leaderboard, err := h.standingsService.GetLeaderboard(r.Context(), scrimID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": leaderboard}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Results godoc
// @Summary Full results report: standings, top 3, map winners and MVP
// @Tags standings
// @Produce json
// @Param scrimID path int true "Scrim ID"
// @Success 200 {object} map[string]interface{}
// @Router /scrims/{scrimID}/results [get]
func (h *StandingsHandler) Results(w http.ResponseWriter, r *http.Request) {
	scrimID, err := getIDFromURL(r, "scrimID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	summary, err := h.standingsService.GetResultsSummary(r.Context(), scrimID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"results": summary}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
