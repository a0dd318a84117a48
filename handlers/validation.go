package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/zero-todos/models"
	"github.com/jalexanderII/zero-todos/todos"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (as UTC).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("invalid date: " + s)
}

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

var fieldLabels = map[string]string{
	"Title":       "Title",
	"Description": "Description",
	"DueDate":     "Due date",
	"Status":      "Status",
	"Priority":    "Priority",
}

func validationMessage(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.Field()]
	if !ok {
		label = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "max":
		return label + " cannot exceed " + fe.Param() + " characters"
	case "min":
		if fe.Param() == "1" {
			return label + " cannot be empty"
		}
		return label + " must be at least " + fe.Param() + " characters"
	case "isodate":
		return label + " must be a valid date"
	case "oneof":
		return label + " must be between 1 and 4"
	default:
		return label + " is invalid"
	}
}

// validateStruct runs the struct tags of req and joins every failure into a
// single INVALID error.
func (h *Handler) validateStruct(req interface{}) error {
	err := h.V.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return todos.WrapError(todos.ErrCodeInvalid, "request body malformed", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, validationMessage(fe))
	}
	return todos.NewError(todos.ErrCodeInvalid, strings.Join(msgs, ", "))
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// parseCreate validates a create body and turns it into a todo owned by nobody yet.
func (h *Handler) parseCreate(c *fiber.Ctx) (*models.Todo, error) {
	var req models.CreateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, todos.WrapError(todos.ErrCodeInvalid, "request body malformed", err)
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.DueDate = strings.TrimSpace(req.DueDate)
	if err := h.validateStruct(&req); err != nil {
		return nil, err
	}

	due, _ := ParseDate(req.DueDate)
	return &models.Todo{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     &due,
	}, nil
}

func (h *Handler) parseUpdate(c *fiber.Ctx) (models.TodoPatch, error) {
	var req models.UpdateTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return models.TodoPatch{}, todos.WrapError(todos.ErrCodeInvalid, "request body malformed", err)
	}
	if req.Empty() {
		return models.TodoPatch{}, todos.NewError(todos.ErrCodeInvalid, "Nothing to update")
	}
	trimPtr(req.Title)
	trimPtr(req.Description)
	trimPtr(req.DueDate)
	if err := h.validateStruct(&req); err != nil {
		return models.TodoPatch{}, err
	}

	patch := models.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}
	if req.DueDate != nil {
		due, _ := ParseDate(*req.DueDate)
		patch.DueDate = &due
	}
	return patch, nil
}

func parseTodoID(c *fiber.Ctx) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("todoId"))
	if err != nil {
		return primitive.NilObjectID, todos.NewError(todos.ErrCodeInvalid, "Invalid todo id")
	}
	return id, nil
}

func parseDueRange(c *fiber.Ctx, f *models.TodoFilter) error {
	if from := c.Query("dueDate.from"); from != "" {
		t, err := ParseDate(from)
		if err != nil {
			return todos.NewError(todos.ErrCodeInvalid, "dueDate.from must be a valid date")
		}
		f.DueFrom = &t
	}
	if to := c.Query("dueDate.to"); to != "" {
		t, err := ParseDate(to)
		if err != nil {
			return todos.NewError(todos.ErrCodeInvalid, "dueDate.to must be a valid date")
		}
		f.DueTo = &t
	}
	return nil
}

// parseListQuery reads the filter and pagination query parameters of GET /todos.
func parseListQuery(c *fiber.Ctx) (models.TodoFilter, models.PageRequest, error) {
	f := models.TodoFilter{
		Title:       strings.TrimSpace(c.Query("title")),
		Description: strings.TrimSpace(c.Query("description")),
	}
	var page models.PageRequest

	if raw := c.Query("userId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return f, page, todos.NewError(todos.ErrCodeInvalid, "userId must be a valid id")
		}
		f.UserId = id
	}
	if raw := c.Query("status"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !models.Status(n).Valid() {
			return f, page, todos.NewError(todos.ErrCodeInvalid, "Status must be between 1 and 4")
		}
		f.Status = models.Status(n)
	}
	if err := parseDueRange(c, &f); err != nil {
		return f, page, err
	}

	var err error
	if page.Page, err = queryInt64(c, "page"); err != nil {
		return f, page, err
	}
	if page.Limit, err = queryInt64(c, "limit"); err != nil {
		return f, page, err
	}
	if c.Query("skip") != "" {
		skip, err := queryInt64(c, "skip")
		if err != nil {
			return f, page, err
		}
		page.Skip = &skip
	}
	page.SortField = c.Query("sortField")
	page.SortOrder = c.Query("sortOrder")
	return f, page, nil
}

func queryInt64(c *fiber.Ctx, key string) (int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, todos.NewError(todos.ErrCodeInvalid, key+" must be a non-negative integer")
	}
	return n, nil
}
