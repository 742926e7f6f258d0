package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/service"
	"github.com/Looz41/Diplom-sub000/pkg/response"
)

// AudithoriaHandler HTTP-обработчики модуля аудиторий
type AudithoriaHandler struct {
	audithoriaSvc service.AudithoriaService
}

// NewAudithoriaHandler создаёт AudithoriaHandler
func NewAudithoriaHandler(audithoriaSvc service.AudithoriaService) *AudithoriaHandler {
	return &AudithoriaHandler{audithoriaSvc: audithoriaSvc}
}

// Add создание аудитории
// POST /audithories/add
func (h *AudithoriaHandler) Add(c *gin.Context) {
	var req dto.AddAudithoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	audithoria, err := h.audithoriaSvc.Add(c.Request.Context(), &req)
	if err != nil {
		h.handleAudithoriaError(c, err)
		return
	}

	response.OK(c, audithoria)
}

// GetAll список аудиторий
// GET /audithories/get
func (h *AudithoriaHandler) GetAll(c *gin.Context) {
	audithorias, err := h.audithoriaSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"audithories": audithorias})
}

// Edit полная перезапись аудитории
// POST /audithories/edit
func (h *AudithoriaHandler) Edit(c *gin.Context) {
	var req dto.EditAudithoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return
	}

	audithoria, err := h.audithoriaSvc.Edit(c.Request.Context(), &req)
	if err != nil {
		h.handleAudithoriaError(c, err)
		return
	}

	response.OK(c, audithoria)
}

// Delete удаление аудитории
// DELETE /audithories/delete?id=
func (h *AudithoriaHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, 10001, "не указан идентификатор аудитории")
		return
	}

	if err := h.audithoriaSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAudithoriaError(c, err)
		return
	}

	response.OKMessage(c, "аудитория удалена", nil)
}

// ── маппинг ошибок ──

func (h *AudithoriaHandler) handleAudithoriaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAudithoriaNotFound):
		response.NotFound(c, 15001, err.Error())
	case errors.Is(err, service.ErrAudithoriaExists):
		response.Conflict(c, 15002, err.Error())
	default:
		response.InternalError(c)
	}
}
