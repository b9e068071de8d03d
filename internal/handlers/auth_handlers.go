// Package handlers implements the HTTP handlers for the API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/lexaidhq/lexaid-backend/internal/auth"
	"github.com/lexaidhq/lexaid-backend/internal/constants"
	"github.com/lexaidhq/lexaid-backend/internal/models"
	"github.com/lexaidhq/lexaid-backend/internal/service"
	"github.com/lexaidhq/lexaid-backend/internal/utils"
)

// AuthHandler handles authentication-related routes.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	if authService == nil {
		panic("authService cannot be nil")
	}
	return &AuthHandler{
		authService: authService,
	}
}

// writeError sends the right response for a service-layer error. Token and
// identity failures come back as typed rejections with their own status and
// code mapping; everything else goes through the generic error envelope.
func writeError(w http.ResponseWriter, err error) {
	var rej *auth.Rejection
	if errors.As(err, &rej) {
		auth.WriteRejection(w, rej)
		return
	}
	utils.ErrorFromAppError(w, utils.ParseError(err))
}

// Register handles user registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var reg models.UserRegistration
	if err := utils.DecodeAndValidate(r, &reg); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, err := h.authService.RegisterUser(r.Context(), &reg)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusCreated, user)
}

// Login handles user authentication.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds models.UserCredentials
	if err := utils.DecodeAndValidate(r, &creds); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	resp, err := h.authService.AuthenticateUser(r.Context(), &creds)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// Refresh exchanges a refresh token for a new access token. The refresh token
// itself is returned only at login and is never rotated here.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := utils.DecodeAndValidate(r, &req); err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	resp, err := h.authService.RefreshAccessToken(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// Logout acknowledges a logout request. Tokens are stateless and stay valid
// until expiry; clients discard them locally.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Successfully logged out",
	})
}

// Verify confirms that the presented access token authenticates. The request
// only reaches this handler after passing the gate, so it reports what the
// gate already established.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := auth.GetAuthContext(r)
	if !ok {
		utils.Unauthorized(w, constants.MsgAuthRequired)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user_id":       authCtx.User.ID,
		"email":         authCtx.User.Email,
	})
}
