package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Looz41/Diplom-sub000/internal/model"
	"github.com/Looz41/Diplom-sub000/internal/repository"
)

// ── ошибки модуля экспорта ──

var (
	ErrExportEmpty        = errors.New("нет расписаний для экспорта")
	ErrExportGenerateFail = errors.New("не удалось сформировать файл экспорта")
)

// время начала пар по номерам; длительность пары 90 минут
var lessonStart = map[int]struct{ h, m int }{
	1: {8, 30},
	2: {10, 10},
	3: {11, 50},
	4: {13, 50},
	5: {15, 30},
	6: {17, 10},
	7: {18, 50},
	8: {20, 30},
}

const lessonDuration = 90 * time.Minute

// ExportService выгрузка расписаний во внешние форматы.
//
// Excel — плоская таблица пар за выбранный период, одна строка на пару.
// ICS — календарь с событием на каждую пару, время берётся из сетки
// звонков lessonStart.
type ExportService interface {
	// ExportExcel выгружает расписания в .xlsx
	ExportExcel(ctx context.Context, filter repository.ScheduleFilter) (*bytes.Buffer, string, error)
	// ExportICS выгружает расписания в iCalendar
	ExportICS(ctx context.Context, filter repository.ScheduleFilter) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService создаёт ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── ExportExcel ──────────────────────

func (s *exportService) ExportExcel(ctx context.Context, filter repository.ScheduleFilter) (*bytes.Buffer, string, error) {
	schedules, err := s.loadSchedules(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Расписание"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		s.logger.Error("ошибка создания листа", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 28)
	f.SetColWidth(sheetName, "E", "E", 16)
	f.SetColWidth(sheetName, "F", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 8)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Дата", "Группа", "Дисциплина", "Преподаватель", "Тип", "Аудитория", "Пара"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	row := 2
	for i := range schedules {
		sch := &schedules[i]
		groupName := ""
		if sch.Group != nil {
			groupName = sch.Group.Name
		}
		for _, item := range sch.Items {
			f.SetCellValue(sheetName, cell("A", row), sch.Date.Format("02.01.2006"))
			f.SetCellValue(sheetName, cell("B", row), groupName)
			if item.Discipline != nil {
				f.SetCellValue(sheetName, cell("C", row), item.Discipline.Name)
			}
			if item.Teacher != nil {
				f.SetCellValue(sheetName, cell("D", row), item.Teacher.Surname)
			}
			if item.Type != nil {
				f.SetCellValue(sheetName, cell("E", row), item.Type.Name)
			}
			if item.Audithoria != nil {
				f.SetCellValue(sheetName, cell("F", row), item.Audithoria.Name)
			}
			f.SetCellValue(sheetName, cell("G", row), item.Number)
			row++
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("ошибка записи Excel", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("raspisanie_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ────────────────────── ExportICS ──────────────────────

func (s *exportService) ExportICS(ctx context.Context, filter repository.ScheduleFilter) (*bytes.Buffer, string, error) {
	schedules, err := s.loadSchedules(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//sub000//schedule//RU")

	now := time.Now()
	for i := range schedules {
		sch := &schedules[i]
		groupName := ""
		if sch.Group != nil {
			groupName = sch.Group.Name
		}
		for _, item := range sch.Items {
			event := cal.AddEvent(item.ItemID)
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)

			start := lessonStartAt(sch.Date, item.Number)
			event.SetStartAt(start)
			event.SetEndAt(start.Add(lessonDuration))

			summary := fmt.Sprintf("Пара %d", item.Number)
			if item.Discipline != nil {
				summary = item.Discipline.Name
				if item.Type != nil {
					summary += " (" + item.Type.Name + ")"
				}
			}
			event.SetSummary(summary)

			if item.Audithoria != nil {
				event.SetLocation(item.Audithoria.Name)
			}

			desc := groupName
			if item.Teacher != nil {
				if desc != "" {
					desc += ", "
				}
				desc += item.Teacher.FullName()
			}
			if desc != "" {
				event.SetDescription(desc)
			}
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("raspisanie_%s.ics", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ── внутренние помощники ──

func (s *exportService) loadSchedules(ctx context.Context, filter repository.ScheduleFilter) ([]model.Schedule, error) {
	schedules, err := s.repo.Schedule.List(ctx, filter)
	if err != nil {
		s.logger.Error("ошибка выборки расписаний для экспорта", zap.Error(err))
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, ErrExportEmpty
	}
	return schedules, nil
}

// lessonStartAt начало пары по сетке звонков; неизвестный номер
// откладывается от первой пары с шагом в два часа
func lessonStartAt(date time.Time, number int) time.Time {
	st, ok := lessonStart[number]
	if !ok {
		st = lessonStart[1]
		return time.Date(date.Year(), date.Month(), date.Day(), st.h, st.m, 0, 0, time.Local).
			Add(time.Duration(number-1) * 2 * time.Hour)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), st.h, st.m, 0, 0, time.Local)
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
