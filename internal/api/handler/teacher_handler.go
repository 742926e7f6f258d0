package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/service"
	"github.com/Looz41/Diplom-sub000/pkg/response"
)

// TeacherHandler HTTP-обработчики модуля преподавателей
type TeacherHandler struct {
	teacherSvc service.TeacherService
}

// NewTeacherHandler создаёт TeacherHandler
func NewTeacherHandler(teacherSvc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// Add создание преподавателя
// POST /teacher/add
func (h *TeacherHandler) Add(c *gin.Context) {
	var req dto.AddTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	teacher, err := h.teacherSvc.Add(c.Request.Context(), &req)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OK(c, teacher)
}

// GetAll список преподавателей с нагрузкой; с ?id= — один преподаватель
// GET /teacher/get[?id=]
func (h *TeacherHandler) GetAll(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		teacher, err := h.teacherSvc.GetByID(c.Request.Context(), id)
		if err != nil {
			h.handleTeacherError(c, err)
			return
		}
		response.OK(c, teacher)
		return
	}

	teachers, err := h.teacherSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"teachers": teachers})
}

// GetByDiscipline преподаватели дисциплины и свободные на месяц даты
// GET /teacher/getTeacherByDiscipline?id=&date=
func (h *TeacherHandler) GetByDiscipline(c *gin.Context) {
	var req dto.TeachersByDisciplineRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	result, err := h.teacherSvc.GetByDiscipline(c.Request.Context(), &req)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OK(c, result)
}

// Edit полная перезапись преподавателя
// POST /teacher/edit
func (h *TeacherHandler) Edit(c *gin.Context) {
	var req dto.EditTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	teacher, err := h.teacherSvc.Edit(c.Request.Context(), &req)
	if err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OK(c, teacher)
}

// Delete удаление преподавателя
// DELETE /teacher/delete?id=
func (h *TeacherHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, 10001, "не указан идентификатор преподавателя")
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleTeacherError(c, err)
		return
	}

	response.OKMessage(c, "преподаватель удалён", nil)
}

// ── маппинг ошибок ──

func (h *TeacherHandler) handleTeacherError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, service.ErrTeacherExists):
		response.Conflict(c, 14002, err.Error())
	case errors.Is(err, service.ErrBadDate):
		response.BadRequest(c, 14003, err.Error())
	case errors.Is(err, service.ErrDisciplineNotFound):
		response.NotFound(c, 13001, err.Error())
	default:
		response.InternalError(c)
	}
}
