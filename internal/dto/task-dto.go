package dto

type CreateTaskDTO struct {
	Company    string `json:"company" validate:"required"`
	Title      string `json:"title" validate:"required"`
	AssignedBy string `json:"assigned_by,omitempty"`
}

type TaskDTO struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	AssignedBy  string `json:"assigned_by,omitempty"`
	AssignedAt  string `json:"assigned_at"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completed_at,omitempty"`
}
