package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/service"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/response"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/validation"
)

// bindFailed answers a request whose body or query did not bind.
func bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "request body too large")
		return
	}
	response.ValidationFailed(c, validation.Describe(err))
}

// handleCommonError maps the errors every module can return. Anything not
// recognised is attached to the context for the request logger and
// answered with a generic 500.
func handleCommonError(c *gin.Context, err error) {
	var conflict *service.ScheduleConflictError
	switch {
	case errors.As(err, &conflict):
		response.ErrorWithData(c, http.StatusBadRequest, 15002, response.KindScheduleConflict,
			"schedule overlaps an existing schedule of this saint",
			gin.H{"conflicts": conflict.Conflicts})
	case errors.Is(err, service.ErrConcurrentUpdate):
		response.Conflict(c, 15003, "schedule was modified concurrently, retry")
	case errors.Is(err, service.ErrValidation):
		response.ValidationFailed(c, err.Error())
	case errors.Is(err, service.ErrSaintNotFound):
		response.NotFound(c, 13001, "saint not found")
	case errors.Is(err, service.ErrLocationNotFound):
		response.NotFound(c, 14001, "location not found")
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, 15001, "schedule not found")
	case errors.Is(err, service.ErrAdminUserNotFound):
		response.NotFound(c, 12001, "admin user not found")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
