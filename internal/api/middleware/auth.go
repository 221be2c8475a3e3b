package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/milewise/mile_go_server/internal/model"
	"github.com/milewise/mile_go_server/internal/pkg/response"
	"github.com/milewise/mile_go_server/internal/service"
)

const (
	UserIDKey       = "userID"
	CurrentUserKey  = "currentUser"
	SessionTokenKey = "sessionToken"

	// SessionCookieName is the same-site cookie carrying the bearer token.
	SessionCookieName = "session_token"
)

// ExtractToken pulls the bearer token from the session cookie or the
// Authorization header. The cookie wins when both are present.
func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return token
}

// Auth requires a valid unexpired session and stores the resolved user in the
// context. Missing, unknown and expired tokens all fail the same way.
func Auth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			response.AuthError(c, "")
			c.Abort()
			return
		}

		user, err := authService.GetUserByToken(token)
		if err != nil {
			response.ServerError(c, "")
			c.Abort()
			return
		}
		if user == nil {
			response.AuthError(c, "")
			c.Abort()
			return
		}

		c.Set(UserIDKey, user.UserID)
		c.Set(CurrentUserKey, user)
		c.Set(SessionTokenKey, token)
		c.Next()
	}
}

// GetUserID reads the acting user identifier from the context.
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}

// GetCurrentUser reads the resolved user from the context.
func GetCurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}

// GetSessionToken reads the bearer token the request authenticated with.
func GetSessionToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(SessionTokenKey)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
