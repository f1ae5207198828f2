package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/service"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/response"
)

// SaintHandler saint directory endpoints
type SaintHandler struct {
	saintSvc    service.SaintService
	calendarSvc service.CalendarService
}

// NewSaintHandler creates a SaintHandler.
func NewSaintHandler(saintSvc service.SaintService, calendarSvc service.CalendarService) *SaintHandler {
	return &SaintHandler{saintSvc: saintSvc, calendarSvc: calendarSvc}
}

// ListSaints GET /api/v1/saints
func (h *SaintHandler) ListSaints(c *gin.Context) {
	var req dto.SaintListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	saints, total, err := h.saintSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OKPage(c, saints, total, req.GetPage(), req.GetPageSize())
}

// GetSaint returns the profile with current and upcoming stays.
// GET /api/v1/saints/:id
func (h *SaintHandler) GetSaint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.saintSvc.GetProfile(c.Request.Context(), id)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, profile)
}

// GetCalendar serves the saint's schedules as an iCalendar feed.
// GET /api/v1/saints/:id/calendar.ics
func (h *SaintHandler) GetCalendar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	body, err := h.calendarSvc.SaintCalendar(c.Request.Context(), id)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="saint-`+id+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// CreateSaint POST /api/v1/saints
func (h *SaintHandler) CreateSaint(c *gin.Context) {
	var req dto.CreateSaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	saint, err := h.saintSvc.Create(c.Request.Context(), &req, actorOf(c))
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.Created(c, saint)
}

// UpdateSaint PUT /api/v1/saints/:id
func (h *SaintHandler) UpdateSaint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	saint, err := h.saintSvc.Update(c.Request.Context(), id, &req, actorOf(c))
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, saint)
}

// DeactivateSaint hides a saint from default listings. Saints are never
// hard-deleted.
// DELETE /api/v1/saints/:id
func (h *SaintHandler) DeactivateSaint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.saintSvc.Deactivate(c.Request.Context(), id, actorOf(c)); err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, nil)
}
