package dto

// ── расписание: запросы ──

// ScheduleItemRequest одна пара в передаваемом расписании
type ScheduleItemRequest struct {
	Discipline string `json:"discipline" binding:"required"`
	Teacher    string `json:"teacher"    binding:"required"`
	Type       string `json:"type"       binding:"required"`
	Audithoria string `json:"audithoria" binding:"required"`
	Number     int    `json:"number"     binding:"required,min=1,max=8"`
}

// AddScheduleRequest создание расписания группы на день.
// Пустой items допустим: конфликтов в этом случае нет,
// расписание создаётся тривиально.
type AddScheduleRequest struct {
	Date  string                `json:"date"  binding:"required"` // YYYY-MM-DD
	Group string                `json:"group" binding:"required"`
	Items []ScheduleItemRequest `json:"items" binding:"omitempty,dive"`
}

// EditScheduleRequest полная перезапись расписания (дата/группа/пары)
type EditScheduleRequest struct {
	ID    string                `json:"id"    binding:"required"`
	Date  string                `json:"date"  binding:"required"`
	Group string                `json:"group" binding:"required"`
	Items []ScheduleItemRequest `json:"items" binding:"omitempty,dive"`
}

// ScheduleListRequest фильтры выборки расписаний
type ScheduleListRequest struct {
	Date    string `form:"date"    binding:"omitempty"`
	Teacher string `form:"teacher" binding:"omitempty"`
	Group   string `form:"group"   binding:"omitempty"`
}

// ── расписание: ответы ──

// ScheduleItemResponse пара в расписании с раскрытыми ссылками
type ScheduleItemResponse struct {
	ID         string             `json:"id"`
	Number     int                `json:"number"`
	Discipline DisciplineResponse `json:"discipline"`
	Teacher    TeacherResponse    `json:"teacher"`
	Type       TypeResponse       `json:"type"`
	Audithoria AudithoriaResponse `json:"audithoria"`
}

// ScheduleResponse расписание группы на день
type ScheduleResponse struct {
	ID    string                 `json:"id"`
	Date  string                 `json:"date"`
	Group GroupResponse          `json:"group"`
	Items []ScheduleItemResponse `json:"items"`
}
