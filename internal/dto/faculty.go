package dto

// ── факультеты: запросы ──

// AddFacultyRequest создание факультета; группы задаются названиями и
// создаются автоматически (название обязано содержать маркер курса)
type AddFacultyRequest struct {
	Name   string   `json:"name"   binding:"required,min=2,max=200"`
	Groups []string `json:"groups" binding:"omitempty,dive,min=2,max=100"`
}

// EditFacultyRequest полная перезапись факультета
type EditFacultyRequest struct {
	ID     string   `json:"id"     binding:"required"`
	Name   string   `json:"name"   binding:"required,min=2,max=200"`
	Groups []string `json:"groups" binding:"omitempty,dive,min=2,max=100"`
}

// ── факультеты: ответы ──

// GroupResponse группа
type GroupResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Course int    `json:"course"`
}

// CourseResponse группы одного курса
type CourseResponse struct {
	Name   string          `json:"name"` // например "1 курс"
	Groups []GroupResponse `json:"groups"`
}

// FacultyResponse факультет с группировкой по курсам
type FacultyResponse struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Courses []CourseResponse `json:"courses"`
}
