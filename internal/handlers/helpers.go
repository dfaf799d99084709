package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func pagination(c *gin.Context) (limit, offset int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "100"))
	if err != nil || size < 1 {
		size = 100
	}
	return size, (page - 1) * size
}

// boolQuery reads an optional true/false query parameter.
func boolQuery(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// dateQuery parses an optional YYYY-MM-DD query parameter; zero time when
// absent or malformed.
func dateQuery(c *gin.Context, name string) time.Time {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// respondError surfaces a success flag and message; the raw error detail is
// included only outside release mode.
func respondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{"success": false, "message": message}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		payload["detail"] = err.Error()
	}
	c.JSON(status, payload)
}
