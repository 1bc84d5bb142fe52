package httpHandler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// pageParams parses skip and limit. Defaults: skip=0, limit=50 (max 200).
// Unparseable values fall back to the defaults.
func pageParams(c *gin.Context) (skip, limit int) {
	limit = defaultLimit
	if s := strings.TrimSpace(c.Query("limit")); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			if v > maxLimit {
				v = maxLimit
			}
			limit = v
		}
	}

	if s := strings.TrimSpace(c.Query("skip")); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			skip = v
		}
	}
	return skip, limit
}
