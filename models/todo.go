package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const TitleMaxLength = 200

// Status of a todo. 1=pending, 2=in-progress, 3=completed, 4=archived
type Status int

const (
	StatusPending    Status = 1
	StatusInProgress Status = 2
	StatusCompleted  Status = 3
	StatusArchived   Status = 4
)

func (s Status) Valid() bool {
	return s >= StatusPending && s <= StatusArchived
}

// Priority of a todo. 1=low, 2=medium, 3=high, 4=critical
type Priority int

const (
	PriorityLow      Priority = 1
	PriorityMedium   Priority = 2
	PriorityHigh     Priority = 3
	PriorityCritical Priority = 4
)

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityCritical
}

// SubtaskStatus only knows open (1) and done (3).
type SubtaskStatus int

const (
	SubtaskOpen SubtaskStatus = 1
	SubtaskDone SubtaskStatus = 3
)

type Subtask struct {
	Title  string        `json:"title" bson:"title"`
	Status SubtaskStatus `json:"status" bson:"status"`
}

type SharedUser struct {
	UserId primitive.ObjectID `json:"userId" bson:"userId"`
	Name   string             `json:"name,omitempty" bson:"name,omitempty"`
	Email  string             `json:"email,omitempty" bson:"email,omitempty"`
}

// Todo is the document stored in the todos collection.
type Todo struct {
	ID          primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserId      primitive.ObjectID   `json:"userId" bson:"userId" example:"507f1f77bcf86cd799439011"`
	Title       string               `json:"title" bson:"title" example:"Buy milk"`
	Description string               `json:"description,omitempty" bson:"description,omitempty" example:"2% milk"`
	Status      Status               `json:"status" bson:"status" example:"1" enums:"1,2,3,4"`
	Priority    Priority             `json:"priority,omitempty" bson:"priority" example:"3" enums:"1,2,3,4"`
	DueDate     *time.Time           `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	CompletedAt *time.Time           `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	Labels      []string             `json:"labels,omitempty" bson:"labels,omitempty"`
	Subtasks    []Subtask            `json:"subtasks,omitempty" bson:"subtasks,omitempty"`
	SharedWith  []SharedUser         `json:"sharedWith,omitempty" bson:"sharedWith,omitempty"`
	CreatedBy   primitive.ObjectID   `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	UpdatedBy   primitive.ObjectID   `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
	LastUpdate  map[string]time.Time `json:"lastUpdate,omitempty" bson:"lastUpdate,omitempty"`
	IsDeleted   bool                 `json:"isDeleted,omitempty" bson:"isDeleted"`
	UpdatedAt   time.Time            `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
	CreatedAt   time.Time            `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

func (t *Todo) GetID() *primitive.ObjectID {
	if t == nil {
		return nil
	}
	if t.ID == primitive.NilObjectID {
		return nil
	}
	return &t.ID
}

// Validate checks the document invariants enforced before a todo is written.
func (t *Todo) Validate() error {
	if t == nil {
		return errors.New("todo is nil")
	}
	if t.UserId.IsZero() {
		return errors.New("userId is required")
	}
	if t.CreatedBy.IsZero() {
		return errors.New("createdBy is required")
	}
	if err := validateTitle(t.Title); err != nil {
		return err
	}
	if !t.Status.Valid() {
		return errors.New("status must be one of 1, 2, 3, 4")
	}
	if !t.Priority.Valid() {
		return errors.New("priority must be one of 1, 2, 3, 4")
	}
	for _, st := range t.Subtasks {
		if st.Status != SubtaskOpen && st.Status != SubtaskDone {
			return errors.New("subtask status must be 1 or 3")
		}
	}
	return nil
}

// TodoPatch carries the fields of a partial update. Nil means "leave unchanged".
type TodoPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *Status
	Priority    *Priority
	UpdatedBy   primitive.ObjectID
}

func (p TodoPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil && p.Status == nil && p.Priority == nil
}

func (p TodoPatch) Validate() error {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Status != nil && !p.Status.Valid() {
		return errors.New("status must be one of 1, 2, 3, 4")
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return errors.New("priority must be one of 1, 2, 3, 4")
	}
	return nil
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return errors.New("title is required")
	}
	if utf8.RuneCountInString(trimmed) > TitleMaxLength {
		return errors.New("title cannot exceed 200 characters")
	}
	return nil
}

// TodoFilter holds the optional criteria of a todo list query.
// Zero values mean the criterion is not applied.
type TodoFilter struct {
	Title       string
	Description string
	UserId      primitive.ObjectID
	Status      Status
	DueFrom     *time.Time
	DueTo       *time.Time
}

// PageRequest is the raw pagination input of a list query.
type PageRequest struct {
	Page      int64
	Limit     int64
	Skip      *int64
	SortField string
	SortOrder string
}

type TodoList struct {
	Total int64  `json:"total"`
	Todos []Todo `json:"todos"`
}

type Stat struct {
	Label string `json:"label" example:"All Todos"`
	Value int64  `json:"value" example:"5"`
}

type StatsResponse struct {
	Stats []Stat `json:"stats"`
}

// SuccessDescriptor is the fixed result of a successful write.
type SuccessDescriptor struct {
	Message string `json:"message" example:"Todo created successfully"`
}

var (
	TodoCreated = SuccessDescriptor{Message: "Todo created successfully"}
	TodoUpdated = SuccessDescriptor{Message: "Todo updated successfully"}
	TodoDeleted = SuccessDescriptor{Message: "Todo deleted successfully"}
)
