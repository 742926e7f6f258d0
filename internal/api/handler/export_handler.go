package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/repository"
	"github.com/Looz41/Diplom-sub000/internal/service"
	"github.com/Looz41/Diplom-sub000/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// ExportHandler HTTP-обработчики модуля экспорта
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler создаёт ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportExcel выгрузка расписаний в .xlsx
// GET /schedule/getExcel?date=&teacher=&group=
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportExcel(c.Request.Context(), filter)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	h.sendFile(c, xlsxContentType, filename, buf.Bytes())
}

// ExportICS выгрузка расписаний в iCalendar
// GET /schedule/getIcs?date=&teacher=&group=
func (h *ExportHandler) ExportICS(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportICS(c.Request.Context(), filter)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	h.sendFile(c, icsContentType, filename, buf.Bytes())
}

// ── внутренние помощники ──

func (h *ExportHandler) bindFilter(c *gin.Context) (repository.ScheduleFilter, bool) {
	var req dto.ScheduleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "ошибка валидации параметров")
		return repository.ScheduleFilter{}, false
	}

	filter := repository.ScheduleFilter{
		TeacherID: req.Teacher,
		GroupID:   req.Group,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			response.BadRequest(c, 14003, "неверный формат даты, ожидается YYYY-MM-DD")
			return repository.ScheduleFilter{}, false
		}
		filter.Date = &date
	}
	return filter, true
}

func (h *ExportHandler) sendFile(c *gin.Context, contentType, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}

// ── маппинг ошибок ──

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportEmpty):
		response.NotFound(c, 18001, err.Error())
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
