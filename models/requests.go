package models

// CreateTodoRequest is the body of POST /todos.
type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required,max=200" example:"Buy milk"`
	Description string `json:"description" validate:"required,min=5" example:"2% milk, two cartons"`
	DueDate     string `json:"dueDate" validate:"required,isodate" example:"2025-01-01"`
}

// UpdateTodoRequest is the body of PUT /todos/:todoId. All fields are optional
// but at least one must be present.
type UpdateTodoRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitnil,min=1,max=200" example:"Buy oat milk"`
	Description *string   `json:"description,omitempty" validate:"omitnil,min=5" example:"Barista edition"`
	DueDate     *string   `json:"dueDate,omitempty" validate:"omitnil,isodate" example:"2025-01-02"`
	Status      *Status   `json:"status,omitempty" validate:"omitnil,oneof=1 2 3 4" example:"3"`
	Priority    *Priority `json:"priority,omitempty" validate:"omitnil,oneof=1 2 3 4" example:"4"`
}

func (r *UpdateTodoRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.DueDate == nil && r.Status == nil && r.Priority == nil
}
