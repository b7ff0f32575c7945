package common

import (
	"errors"

	"github.com/gin-gonic/gin"
)

const (
	// ContextScoutNickKey is the gin context key holding the scout nick set
	// by the scout middleware.
	ContextScoutNickKey = "scoutNick"
)

// GetScoutNickFromContext retrieves the scout nick from the Gin context.
func GetScoutNickFromContext(c *gin.Context) (string, error) {
	nickInterface, exists := c.Get(ContextScoutNickKey)
	if !exists {
		return "", errors.New("scout nick not found in context")
	}
	nick, ok := nickInterface.(string)
	if !ok || nick == "" {
		return "", errors.New("scout nick in context is empty or not a string")
	}
	return nick, nil
}
