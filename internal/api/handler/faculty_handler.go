package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/service"
	"github.com/Looz41/Diplom-sub000/pkg/response"
)

// FacultyHandler HTTP-обработчики модуля факультетов
type FacultyHandler struct {
	facultySvc service.FacultyService
}

// NewFacultyHandler создаёт FacultyHandler
func NewFacultyHandler(facultySvc service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultySvc: facultySvc}
}

// Add создание факультета с группами
// POST /facultet/add
func (h *FacultyHandler) Add(c *gin.Context) {
	var req dto.AddFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	faculty, err := h.facultySvc.Add(c.Request.Context(), &req)
	if err != nil {
		h.handleFacultyError(c, err)
		return
	}

	response.OK(c, faculty)
}

// GetAll список факультетов с группировкой групп по курсам
// GET /facultet/get
func (h *FacultyHandler) GetAll(c *gin.Context) {
	faculties, err := h.facultySvc.GetAll(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"facultets": faculties})
}

// GetOne один факультет
// GET /facultet/getOne?id=
func (h *FacultyHandler) GetOne(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, 10001, "не указан идентификатор факультета")
		return
	}

	faculty, err := h.facultySvc.GetOne(c.Request.Context(), id)
	if err != nil {
		h.handleFacultyError(c, err)
		return
	}

	response.OK(c, faculty)
}

// Edit полная перезапись факультета
// POST /facultet/edit
func (h *FacultyHandler) Edit(c *gin.Context) {
	var req dto.EditFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	faculty, err := h.facultySvc.Edit(c.Request.Context(), &req)
	if err != nil {
		h.handleFacultyError(c, err)
		return
	}

	response.OK(c, faculty)
}

// Delete удаление факультета
// DELETE /facultet/delete?id=
func (h *FacultyHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, 10001, "не указан идентификатор факультета")
		return
	}

	if err := h.facultySvc.Delete(c.Request.Context(), id); err != nil {
		h.handleFacultyError(c, err)
		return
	}

	response.OKMessage(c, "факультет удалён", nil)
}

// ── маппинг ошибок ──

func (h *FacultyHandler) handleFacultyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFacultyNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, service.ErrFacultyExists):
		response.Conflict(c, 12002, err.Error())
	case errors.Is(err, service.ErrGroupBadName):
		response.BadRequest(c, 12003, err.Error())
	default:
		response.InternalError(c)
	}
}
