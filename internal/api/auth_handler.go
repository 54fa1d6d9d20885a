package api

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
)

// AuthHandler handles the login endpoint.
// The issued token is the base64 encoding of the email; callers identify
// themselves on later requests with the X-User-Email header.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Email is required", err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email is required")
		return
	}

	logger.FromContextOrDefault(r.Context(), slog.Default()).Info("user logged in",
		slog.String("email", redact.String(req.Email)))

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token: base64.StdEncoding.EncodeToString([]byte(req.Email)),
		Email: req.Email,
	})
}
