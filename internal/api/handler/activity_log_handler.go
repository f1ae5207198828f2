package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/service"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/response"
)

// ActivityLogHandler audit trail listing
type ActivityLogHandler struct {
	activitySvc service.ActivityLogService
}

// NewActivityLogHandler creates an ActivityLogHandler.
func NewActivityLogHandler(activitySvc service.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{activitySvc: activitySvc}
}

// ListActivityLogs newest first.
// GET /api/v1/activity-logs
func (h *ActivityLogHandler) ListActivityLogs(c *gin.Context) {
	var req dto.ActivityLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	logs, total, err := h.activitySvc.List(c.Request.Context(), &req)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OKPage(c, logs, total, req.GetPage(), req.GetPageSize())
}
