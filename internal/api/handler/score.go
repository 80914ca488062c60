package handler

import (
	"encoding/json"
	"net/http"

	"github.com/psyguage/psyguage-server/internal/api/request"
	"github.com/psyguage/psyguage-server/internal/api/response"
	"github.com/psyguage/psyguage-server/internal/services/score"
)

// ScoreHandler handles score submission and query endpoints
type ScoreHandler struct {
	scoreService *score.Service
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreService *score.Service) *ScoreHandler {
	return &ScoreHandler{
		scoreService: scoreService,
	}
}

// Submit handles POST /api/scores
func (h *ScoreHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	record, err := h.scoreService.Submit(r.Context(), score.Submission{
		GameName:           req.GameName,
		Name:               req.Name,
		Email:              req.Email,
		Score:              req.Score,
		ResponseSymbolTime: req.ResponseSymbolTime,
		CorrectSymbolCount: req.CorrectSymbolCount,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ScoreFromModel(record))
}

// GetByEmail handles GET /api/getscores?email=...
func (h *ScoreHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}

	scores, err := h.scoreService.ScoresByEmail(r.Context(), email)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoresFromModel(scores))
}
