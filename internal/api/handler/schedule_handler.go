package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/service"
	"github.com/ai-tejas-firodiya/Jain-Munis/pkg/response"
)

// ScheduleHandler stay schedule endpoints
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// ────────────────────── public reads ──────────────────────

// ListSchedules GET /api/v1/schedules
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	schedules, total, err := h.scheduleSvc.List(c.Request.Context(), &req)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OKPage(c, schedules, total, req.GetPage(), req.GetPageSize())
}

// ListCurrent schedules in progress today.
// GET /api/v1/schedules/current?city=&saintId=
func (h *ScheduleHandler) ListCurrent(c *gin.Context) {
	var req dto.CurrentSchedulesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	schedules, err := h.scheduleSvc.ListCurrent(c.Request.Context(), &req)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, schedules)
}

// ListUpcoming schedules starting within daysAhead days.
// GET /api/v1/schedules/upcoming?city=&saintId=&daysAhead=
func (h *ScheduleHandler) ListUpcoming(c *gin.Context) {
	var req dto.UpcomingSchedulesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	schedules, err := h.scheduleSvc.ListUpcoming(c.Request.Context(), &req)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, schedules)
}

// GetSchedule GET /api/v1/schedules/:id
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	schedule, err := h.scheduleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, schedule)
}

// ────────────────────── admin writes ──────────────────────

// CreateSchedule rejects ranges overlapping the saint's other schedules with
// SCHEDULE_CONFLICT and the conflicting schedules in data.conflicts.
// POST /api/v1/schedules
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	schedule, err := h.scheduleSvc.Create(c.Request.Context(), &req, actorOf(c))
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, schedule)
}

// UpdateSchedule PUT /api/v1/schedules/:id
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	schedule, err := h.scheduleSvc.Update(c.Request.Context(), id, &req, actorOf(c))
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, schedule)
}

// DeleteSchedule DELETE /api/v1/schedules/:id
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.scheduleSvc.Delete(c.Request.Context(), id, actorOf(c)); err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, nil)
}

// CheckOverlap read-only conflict check; an empty list is a success.
// GET /api/v1/schedules/overlap?saintId=&startDate=&endDate=&excludeScheduleId=
func (h *ScheduleHandler) CheckOverlap(c *gin.Context) {
	var req dto.OverlapCheckRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindFailed(c, err)
		return
	}

	result, err := h.scheduleSvc.CheckOverlap(c.Request.Context(), &req)
	if err != nil {
		handleCommonError(c, err)
		return
	}

	response.OK(c, result)
}
