package middleware

import (
	"net/http"

	"jewelry_shop/internal/config"

	"github.com/gin-gonic/gin"
)

// AdminOnly restricts a route to callers whose resolved Telegram identity is
// listed in ADMIN_IDS. Must run after TelegramAuth; anonymous callers get 401,
// authenticated non-admins 403.
func AdminOnly(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		for _, id := range cfg.AdminChatIDs {
			if id == user.TelegramID {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
	}
}
