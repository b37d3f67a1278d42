package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/course-portal-api/internal/api/handler/v1/response"
)

// idParam reads a positive integer path parameter.
func idParam(ctx *gin.Context, name string) (uint, *response.Err) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrInvalidID(name, raw)
	}

	return uint(id), nil
}
