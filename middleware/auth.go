package middleware

import (
	"net/http"
	"strings"

	"craftly/services/session"
	"craftly/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set for downstream handlers.
const (
	CtxSubjectID = "subjectID"
	CtxRole      = "role"
	CtxName      = "name"
)

// SessionAuthMiddleware requires a valid bearer token that matches the single
// active session. A token that verifies but is not the active session's token
// is rejected: logout and re-login invalidate older tokens.
func SessionAuthMiddleware(sessions session.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		active, err := sessions.GetActiveSession(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session lookup failed"})
			return
		}
		if active == nil || active.Token != tokenString {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or replaced"})
			return
		}

		c.Set(CtxSubjectID, subject)
		c.Set(CtxRole, role)
		c.Set(CtxName, active.Name)
		c.Next()
	}
}
