package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/notevault/vtu-notes-api/internal/middleware"
	"github.com/notevault/vtu-notes-api/internal/models"
)

// claimsFromContext returns the verified JWT claims set by the auth
// middleware, or false when the request is unauthenticated.
func claimsFromContext(c *gin.Context) (*models.JWTClaims, bool) {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*models.JWTClaims)
	return claims, ok
}
