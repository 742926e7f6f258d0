package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/service"
	"github.com/Looz41/Diplom-sub000/pkg/response"
)

// DisciplineHandler HTTP-обработчики модуля дисциплин
type DisciplineHandler struct {
	disciplineSvc service.DisciplineService
}

// NewDisciplineHandler создаёт DisciplineHandler
func NewDisciplineHandler(disciplineSvc service.DisciplineService) *DisciplineHandler {
	return &DisciplineHandler{disciplineSvc: disciplineSvc}
}

// Add создание дисциплины
// POST /discipline/add
func (h *DisciplineHandler) Add(c *gin.Context) {
	var req dto.AddDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	discipline, err := h.disciplineSvc.Add(c.Request.Context(), &req)
	if err != nil {
		h.handleDisciplineError(c, err)
		return
	}

	response.OK(c, discipline)
}

// GetAll список дисциплин
// GET /discipline/get
func (h *DisciplineHandler) GetAll(c *gin.Context) {
	disciplines, err := h.disciplineSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"disciplines": disciplines})
}

// Edit полная перезапись дисциплины
// PUT /discipline/edit
func (h *DisciplineHandler) Edit(c *gin.Context) {
	var req dto.EditDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	discipline, err := h.disciplineSvc.Edit(c.Request.Context(), &req)
	if err != nil {
		h.handleDisciplineError(c, err)
		return
	}

	response.OK(c, discipline)
}

// Delete удаление дисциплины
// DELETE /discipline/delete?id=
func (h *DisciplineHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, 10001, "не указан идентификатор дисциплины")
		return
	}

	if err := h.disciplineSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleDisciplineError(c, err)
		return
	}

	response.OKMessage(c, "дисциплина удалена", nil)
}

// ── маппинг ошибок ──

func (h *DisciplineHandler) handleDisciplineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDisciplineNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrDisciplineExists):
		response.Conflict(c, 13002, err.Error())
	case errors.Is(err, service.ErrDisciplineNoTeachers):
		response.BadRequest(c, 13003, err.Error())
	case errors.Is(err, service.ErrGroupBadName):
		response.BadRequest(c, 12003, err.Error())
	default:
		response.InternalError(c)
	}
}
