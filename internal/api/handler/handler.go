package handler

import "github.com/Looz41/Diplom-sub000/internal/service"

// Handler агрегат всех HTTP-обработчиков
type Handler struct {
	Auth       *AuthHandler
	Faculty    *FacultyHandler
	Discipline *DisciplineHandler
	Teacher    *TeacherHandler
	Audithoria *AudithoriaHandler
	LessonType *LessonTypeHandler
	Schedule   *ScheduleHandler
	Export     *ExportHandler
}

// NewHandler создаёт агрегат обработчиков
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Faculty:    NewFacultyHandler(svc.Faculty),
		Discipline: NewDisciplineHandler(svc.Discipline),
		Teacher:    NewTeacherHandler(svc.Teacher),
		Audithoria: NewAudithoriaHandler(svc.Audithoria),
		LessonType: NewLessonTypeHandler(svc.LessonType),
		Schedule:   NewScheduleHandler(svc.Schedule),
		Export:     NewExportHandler(svc.Export),
	}
}
