package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Adfay-Inc/Puntus/middleware"
	"github.com/Adfay-Inc/Puntus/models"
	"github.com/Adfay-Inc/Puntus/services"
)

type ScrimHandler struct {
	scrimService services.ScrimService
}

func NewScrimHandler(scrimService services.ScrimService) *ScrimHandler {
	return &ScrimHandler{scrimService: scrimService}
}

// Create godoc
// @Summary Create a scrim
// @Tags scrims
// @Accept json
// @Produce json
// @Param input body services.ScrimInput true "Scrim payload"
// @Success 201 {object} map[string]interface{}
// @Security BearerAuth
// @Router /scrims [post]
func (h *ScrimHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	var input services.ScrimInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	scrim, err := h.scrimService.CreateScrim(r.Context(), input, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"scrim": scrim}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScrimHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	scrims, err := h.scrimService.ListScrims(r.Context(), limit, offset)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"scrims": scrims}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScrimHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	scrimID, err := getIDFromURL(r, "scrimID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	scrim, err := h.scrimService.GetScrimByID(r.Context(), scrimID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"scrim": scrim}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScrimHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	scrimID, err := getIDFromURL(r, "scrimID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ScrimInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	scrim, err := h.scrimService.UpdateScrim(r.Context(), scrimID, input, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"scrim": scrim}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateStatus godoc
// @Summary Change the scrim lifecycle status
// @Tags scrims
// @Accept json
// @Produce json
// @Param scrimID path int true "Scrim ID"
// @Param input body object true "New status"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /scrims/{scrimID}/status [patch]
func (h *ScrimHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	scrimID, err := getIDFromURL(r, "scrimID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Status models.ScrimStatus `json:"status"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	switch input.Status {
	case models.ScrimStatusPending, models.ScrimStatusActive, models.ScrimStatusCompleted, models.ScrimStatusCancelled:
	default:
		badRequestResponse(w, r, errors.New("invalid scrim status"))
		return
	}

	scrim, err := h.scrimService.UpdateStatus(r.Context(), scrimID, input.Status, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"scrim": scrim}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ScrimHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	scrimID, err := getIDFromURL(r, "scrimID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.scrimService.DeleteScrim(r.Context(), scrimID, userID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScrimHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	scrimID, err := getIDFromURL(r, "scrimID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.scrimService.ListScrimTeams(r.Context(), scrimID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Join registers a team into the scrim roster.
func (h *ScrimHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	scrimID, err := getIDFromURL(r, "scrimID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.JoinScrimInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.TeamID < 1 {
		badRequestResponse(w, r, errors.New("team_id is required"))
		return
	}

	if err := h.scrimService.JoinScrim(r.Context(), scrimID, input, userID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScrimHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	scrimID, err := getIDFromURL(r, "scrimID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := getIDFromURL(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.scrimService.LeaveScrim(r.Context(), scrimID, teamID, userID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
