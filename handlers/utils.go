package handlers

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/zero-todos/models"
	"github.com/jalexanderII/zero-todos/todos"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserKey is the fiber.Ctx locals key holding the authenticated *models.User.
const UserKey = "user"

const genericErrorMessage = "Something went wrong, please try again later"

// TodoFacade is the todo API the handlers depend on.
type TodoFacade interface {
	List(ctx context.Context, filter models.TodoFilter, page models.PageRequest) (*models.TodoList, error)
	Create(ctx context.Context, todo *models.Todo) (*models.SuccessDescriptor, error)
	Update(ctx context.Context, id primitive.ObjectID, patch models.TodoPatch) (*models.SuccessDescriptor, error)
	Delete(ctx context.Context, id, updatedBy primitive.ObjectID) (*models.SuccessDescriptor, error)
	Stats(ctx context.Context, ownerId primitive.ObjectID) ([]models.Stat, error)
	StatsByDate(ctx context.Context, filter models.TodoFilter) (*models.TodoList, error)
}

type Handler struct {
	Todos TodoFacade
	L     *logrus.Logger
	V     *validator.Validate
}

func NewHandler(todos TodoFacade, l *logrus.Logger) *Handler {
	return &Handler{
		Todos: todos,
		L:     l,
		V:     NewValidator(),
	}
}

// CurrentUser returns the caller attached by the auth middleware, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}

func FiberJsonResponse(c *fiber.Ctx, httpStatus int, status, message string, data any) error {
	return c.Status(httpStatus).JSON(fiber.Map{"status": status, "message": message, "data": data})
}

// respondError is the one place where errors become HTTP statuses. Domain
// errors answer with their message only; the wrapped cause stays server side.
// Unexpected failures were already logged by the facade.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	var dErr *todos.Error
	if errors.As(err, &dErr) {
		switch dErr.Code {
		case todos.ErrCodeInvalid:
			return FiberJsonResponse(c, fiber.StatusBadRequest, "error", dErr.Message, nil)
		case todos.ErrCodeNotFound:
			return FiberJsonResponse(c, fiber.StatusNotFound, "error", dErr.Message, nil)
		}
	}
	h.L.WithFields(logrus.Fields{"path": c.Path(), "method": c.Method()}).WithError(err).Debug("[Todos] request failed")
	return FiberJsonResponse(c, fiber.StatusInternalServerError, "error", genericErrorMessage, nil)
}

func (h *Handler) unauthorized(c *fiber.Ctx) error {
	return FiberJsonResponse(c, fiber.StatusUnauthorized, "error", "unauthorized", nil)
}
