package dto

// ── преподаватели: запросы ──

// AddTeacherRequest создание преподавателя
type AddTeacherRequest struct {
	Surname    string `json:"surname"    binding:"required,min=2,max=100"`
	Name       string `json:"name"       binding:"omitempty,max=100"`
	Patronymic string `json:"patronymic" binding:"omitempty,max=100"`
	AH         int    `json:"aH"         binding:"required,min=1"`
}

// EditTeacherRequest полная перезапись преподавателя
type EditTeacherRequest struct {
	ID         string `json:"id"         binding:"required"`
	Surname    string `json:"surname"    binding:"required,min=2,max=100"`
	Name       string `json:"name"       binding:"omitempty,max=100"`
	Patronymic string `json:"patronymic" binding:"omitempty,max=100"`
	AH         int    `json:"aH"         binding:"required,min=1"`
}

// TeachersByDisciplineRequest выборка преподавателей дисциплины
// с фильтром занятости на месяц даты
type TeachersByDisciplineRequest struct {
	ID   string `form:"id"   binding:"required"`
	Date string `form:"date" binding:"required"` // YYYY-MM-DD
}

// ── преподаватели: ответы ──

// BurdenResponse месячная нагрузка
type BurdenResponse struct {
	Hours int    `json:"hours"`
	Month string `json:"month"` // YYYY-MM
}

// TeacherResponse преподаватель
type TeacherResponse struct {
	ID         string           `json:"id"`
	Surname    string           `json:"surname"`
	Name       string           `json:"name,omitempty"`
	Patronymic string           `json:"patronymic,omitempty"`
	AH         int              `json:"aH"`
	HH         int              `json:"hH"`
	Burden     []BurdenResponse `json:"burden,omitempty"`
}

// TeachersByDisciplineResponse полный список и свободные на месяц
type TeachersByDisciplineResponse struct {
	Teachers     []TeacherResponse `json:"teachers"`
	TeachersFree []TeacherResponse `json:"teachersFree"`
}
