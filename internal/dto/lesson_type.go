package dto

// ── типы занятий: запросы ──

// AddTypeRequest создание типа занятия
type AddTypeRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// EditTypeRequest переименование типа занятия
type EditTypeRequest struct {
	ID   string `json:"id"   binding:"required"`
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// ── типы занятий: ответы ──

// TypeResponse тип занятия
type TypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
