package dto

// ── дисциплины: запросы ──

// AddDisciplineRequest создание дисциплины.
// Группы задаются названиями, преподаватели — фамилиями; отсутствующие
// создаются автоматически (единый resolve-or-create в сервисе).
type AddDisciplineRequest struct {
	Name     string   `json:"name"     binding:"required,min=2,max=200"`
	Groups   []string `json:"groups"   binding:"omitempty,dive,min=2,max=100"`
	Teachers []string `json:"teachers" binding:"required,min=1,dive,min=2,max=100"`
	AH       int      `json:"aH"       binding:"required,min=1"`
}

// EditDisciplineRequest полная перезапись дисциплины
type EditDisciplineRequest struct {
	ID       string   `json:"id"       binding:"required"`
	Name     string   `json:"name"     binding:"required,min=2,max=200"`
	Groups   []string `json:"groups"   binding:"omitempty,dive,min=2,max=100"`
	Teachers []string `json:"teachers" binding:"required,min=1,dive,min=2,max=100"`
	AH       int      `json:"aH"       binding:"required,min=1"`
}

// ── дисциплины: ответы ──

// DisciplineResponse дисциплина
type DisciplineResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	AH       int               `json:"aH"`
	Groups   []GroupResponse   `json:"groups,omitempty"`
	Teachers []TeacherResponse `json:"teachers,omitempty"`
}
