package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/milewise/mile_go_server/internal/api/middleware"
	"github.com/milewise/mile_go_server/internal/model/dto"
	"github.com/milewise/mile_go_server/internal/pkg/response"
	"github.com/milewise/mile_go_server/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// ExchangeSession exchanges an identity-provider handle for a session.
// POST /api/v1/auth/session
func (h *AuthHandler) ExchangeSession(c *gin.Context) {
	var req dto.ExchangeSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "session_id required")
		return
	}

	data, err := h.authService.ExchangeSession(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSession) {
			response.ParamError(c, err.Error())
			return
		}
		response.ServerError(c, "")
		return
	}

	h.setSessionCookie(c, data.SessionToken, h.authService.SessionTTLSeconds())
	response.Success(c, data)
}

// Me returns the authenticated user.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	response.Success(c, user)
}

// Logout invalidates the session and clears the cookie.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.GetSessionToken(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	if err := h.authService.Logout(token); err != nil {
		response.ServerError(c, "")
		return
	}

	h.setSessionCookie(c, "", -1)
	response.SuccessWithMessage(c, "logged out", nil)
}

// setSessionCookie applies the session cookie contract: HttpOnly, Secure,
// SameSite=None, whole-path scope. A negative max-age clears the cookie.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", true, true)
}
