package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pkruszek/scout-assistant/internal/common"
)

// ScoutHeader carries the scout nick identifying the caller. It is a plain
// partition key, not a credential: every store query downstream is scoped by
// it and nothing else.
const ScoutHeader = "X-Scout-Nick"

// ScoutMiddleware requires the scout nick header on every request and puts
// the trimmed value into the gin context for controllers to read.
func ScoutMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		nick := strings.TrimSpace(c.GetHeader(ScoutHeader))
		if nick == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "X-Scout-Nick header is required",
			})
			return
		}

		c.Set(common.ContextScoutNickKey, nick)
		c.Next()
	}
}
