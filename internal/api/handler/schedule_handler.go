package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/service"
	"github.com/Looz41/Diplom-sub000/pkg/response"
)

// ScheduleHandler HTTP-обработчики модуля расписаний
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler создаёт ScheduleHandler
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Add создание расписания группы на день
// POST /schedule/add
func (h *ScheduleHandler) Add(c *gin.Context) {
	var req dto.AddScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	schedule, err := h.scheduleSvc.Add(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// GetAll выборка расписаний по фильтрам
// GET /schedule/get?date=&teacher=&group=
func (h *ScheduleHandler) GetAll(c *gin.Context) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	schedules, err := h.scheduleSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, gin.H{"schedules": schedules})
}

// Edit полная перезапись расписания
// POST /schedule/edit
func (h *ScheduleHandler) Edit(c *gin.Context) {
	var req dto.EditScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	schedule, err := h.scheduleSvc.Edit(c.Request.Context(), &req)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}

	response.OK(c, schedule)
}

// ── маппинг ошибок ──

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleConflict):
		response.Conflict(c, 17001, err.Error())
	case errors.Is(err, service.ErrScheduleNotFound):
		response.NotFound(c, 17002, err.Error())
	case errors.Is(err, service.ErrTeacherNotTeaching):
		response.BadRequest(c, 17003, err.Error())
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, 14003, err.Error())
	case errors.Is(err, service.ErrGroupNotFound):
		response.NotFound(c, 17004, err.Error())
	case errors.Is(err, service.ErrDisciplineNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, service.ErrTypeNotFound):
		response.NotFound(c, 16001, err.Error())
	case errors.Is(err, service.ErrAudithoriaNotFound):
		response.NotFound(c, 15001, err.Error())
	default:
		response.InternalError(c)
	}
}
