package handler

import (
	"encoding/json"
	"net/http"

	"github.com/psyguage/psyguage-server/internal/api/request"
	"github.com/psyguage/psyguage-server/internal/api/response"
	"github.com/psyguage/psyguage-server/internal/services/feedback"
)

// FeedbackHandler handles feedback submission and listing
type FeedbackHandler struct {
	feedbackService *feedback.Service
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService *feedback.Service) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// Submit handles POST /api/feedback
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if _, err := h.feedbackService.Submit(r.Context(), feedback.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Message{Message: "Feedback received!"})
}

// List handles GET /api/feedback
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feedbackService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.FeedbackListFromModel(entries))
}
