package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	MinLimit     = 1
)

// Params holds the validated limit for list endpoints. The document store
// serves ordered limited scans, so limit is the only knob exposed.
type Params struct {
	Limit int
}

// Parse extracts and clamps limit from the query string.
func Parse(c *gin.Context) Params {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Limit: limit}
}
