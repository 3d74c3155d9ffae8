package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trial-shop/models"
	"trial-shop/utils"
)

const AdminKeyHeader = "X-Admin-Key"

// AdminMiddleware checks the X-Admin-Key header against an argon2 hash. With
// no hash configured the admin routes are closed.
func AdminMiddleware(keyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Admin access is not configured",
			})
			return
		}

		ok, err := utils.VerifyAdminKey(keyHash, c.GetHeader(AdminKeyHeader))
		if err != nil || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid admin key",
			})
			return
		}

		c.Next()
	}
}
