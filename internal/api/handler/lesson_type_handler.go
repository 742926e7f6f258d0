package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/service"
	"github.com/Looz41/Diplom-sub000/pkg/response"
)

// LessonTypeHandler HTTP-обработчики модуля типов занятий
type LessonTypeHandler struct {
	typeSvc service.LessonTypeService
}

// NewLessonTypeHandler создаёт LessonTypeHandler
func NewLessonTypeHandler(typeSvc service.LessonTypeService) *LessonTypeHandler {
	return &LessonTypeHandler{typeSvc: typeSvc}
}

// Add создание типа занятия
// POST /types/add
func (h *LessonTypeHandler) Add(c *gin.Context) {
	var req dto.AddTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	lessonType, err := h.typeSvc.Add(c.Request.Context(), &req)
	if err != nil {
		h.handleTypeError(c, err)
		return
	}

	response.OK(c, lessonType)
}

// GetAll список типов занятий
// GET /types/get
func (h *LessonTypeHandler) GetAll(c *gin.Context) {
	types, err := h.typeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"types": types})
}

// Edit переименование типа занятия
// POST /types/edit
func (h *LessonTypeHandler) Edit(c *gin.Context) {
	var req dto.EditTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	lessonType, err := h.typeSvc.Edit(c.Request.Context(), &req)
	if err != nil {
		h.handleTypeError(c, err)
		return
	}

	response.OK(c, lessonType)
}

// Delete удаление типа занятия
// DELETE /types/delete?id=
func (h *LessonTypeHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, 10001, "не указан идентификатор типа занятия")
		return
	}

	if err := h.typeSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTypeError(c, err)
		return
	}

	response.OKMessage(c, "тип занятия удалён", nil)
}

// ── маппинг ошибок ──

func (h *LessonTypeHandler) handleTypeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTypeNotFound):
		response.NotFound(c, 16001, err.Error())
	case errors.Is(err, service.ErrTypeExists):
		response.Conflict(c, 16002, err.Error())
	default:
		response.InternalError(c)
	}
}
