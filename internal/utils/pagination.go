package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageParams holds optional limit/offset values taken from the query string.
// A zero value means the parameter was not provided and must not be applied.
type PageParams struct {
	Limit  int
	Offset int
}

// GetPageParams reads limit/offset from the request. Negative or unparsable
// values are treated as absent.
func GetPageParams(c *gin.Context) PageParams {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	return PageParams{
		Limit:  limit,
		Offset: offset,
	}
}
