package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// pagination reads offset/limit query params with the store defaults
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return offset, limit
}

// archiveReason reads the optional reason query param for archival
func archiveReason(c *gin.Context) string {
	if reason := c.Query("reason"); reason != "" {
		return reason
	}
	return "Deactivated"
}

// today is the current date truncated to midnight UTC, used for archive and
// verification stamps
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
