package middleware

import (
	"ailearn_backend/internal/repository"
	"ailearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ActivityMiddleware stamps the authenticated user's last_seen on each
// request. The write happens off the request path and failures are ignored.
func ActivityMiddleware(userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		claims := util.GetUserFromContext(c)
		if claims == nil {
			return
		}
		go func(id uint) {
			_ = userRepo.UpdateLastSeen(id)
		}(claims.UserID)
	}
}
