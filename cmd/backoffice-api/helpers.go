package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-backoffice/internal/httpx"
)

// listResponse is the envelope of every list endpoint. Total counts the
// filtered rows before limit/offset.
type listResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Abort(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// paginate applies the optional limit/offset query parameters. Without a
// limit the whole list is returned.
func paginate[T any](c *gin.Context, all []T) (listResponse[T], bool) {
	res := listResponse[T]{Total: len(all)}
	offset, ok := nonNegative(c, "offset")
	if !ok {
		return res, false
	}
	limit, ok := nonNegative(c, "limit")
	if !ok {
		return res, false
	}
	if offset > len(all) {
		offset = len(all)
	}
	end := len(all)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	res.Items, res.Limit, res.Offset = all[offset:end], limit, offset
	return res, true
}

func nonNegative(c *gin.Context, key string) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		httpx.Abort(c, http.StatusBadRequest, key+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}
