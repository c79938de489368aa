package handlers

import (
	"errors"
	"net/http"

	"github.com/Adfay-Inc/Puntus/middleware"
	"github.com/Adfay-Inc/Puntus/services"
)

type ResultHandler struct {
	resultService services.ResultService
}

func NewResultHandler(resultService services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// Report godoc
// @Summary Record one team's result for a match
// @Tags results
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param input body services.ResultInput true "Result payload"
// @Success 201 {object} map[string]interface{}
// @Security BearerAuth
// @Router /matches/{matchID}/results [post]
func (h *ResultHandler) Report(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.resultService.ReportResult(r.Context(), matchID, input, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ReportBulk godoc
// @Summary Record every team's result for a match in one call
// @Tags results
// @Accept json
// @Produce json
// @Param matchID path int true "Match ID"
// @Param input body object true "List of result payloads"
// @Success 201 {object} map[string]interface{}
// @Security BearerAuth
// @Router /matches/{matchID}/results/bulk [post]
func (h *ResultHandler) ReportBulk(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Results []services.ResultInput `json:"results"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if len(input.Results) == 0 {
		badRequestResponse(w, r, errors.New("results must not be empty"))
		return
	}

	results, err := h.resultService.ReportBulk(r.Context(), matchID, input.Results, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"results": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ResultHandler) ListByMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	results, err := h.resultService.ListByMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"results": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ResultHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resultID, err := getIDFromURL(r, "resultID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.resultService.GetResultByID(r.Context(), resultID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ResultHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	resultID, err := getIDFromURL(r, "resultID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.resultService.UpdateResult(r.Context(), resultID, input, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"result": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, err.Error())
		return
	}

	resultID, err := getIDFromURL(r, "resultID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.resultService.DeleteResult(r.Context(), resultID, userID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
