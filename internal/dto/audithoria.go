package dto

// ── аудитории: запросы ──

// AddAudithoriaRequest создание аудитории
type AddAudithoriaRequest struct {
	Name           string `json:"name"             binding:"required,min=1,max=100"`
	IsComputerRoom bool   `json:"is_computer_room"`
}

// EditAudithoriaRequest полная перезапись аудитории
type EditAudithoriaRequest struct {
	ID             string `json:"id"               binding:"required"`
	Name           string `json:"name"             binding:"required,min=1,max=100"`
	IsComputerRoom bool   `json:"is_computer_room"`
}

// ── аудитории: ответы ──

// AudithoriaResponse аудитория
type AudithoriaResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	IsComputerRoom bool   `json:"is_computer_room"`
}
