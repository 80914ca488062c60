package handler

import (
	"encoding/json"
	"net/http"

	"github.com/psyguage/psyguage-server/internal/api/middleware"
	"github.com/psyguage/psyguage-server/internal/api/request"
	"github.com/psyguage/psyguage-server/internal/api/response"
	"github.com/psyguage/psyguage-server/internal/services/auth"
)

// AuthHandler handles registration, login, verification, and logout
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if _, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Message{Message: "User registered successfully"})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponseFromSession(session))
}

// Verify handles GET /api/auth/verify. The auth middleware has already
// validated the bearer token by the time this runs.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())
	response.JSON(w, http.StatusOK, response.VerifyResponseFromClaims(claims))
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so this is
// an acknowledgement for clients discarding their copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout()
	response.JSON(w, http.StatusOK, response.Message{Message: "Logged out"})
}
