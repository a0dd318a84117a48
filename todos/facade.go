package todos

import (
	"context"
	"time"

	"github.com/jalexanderII/zero-todos/metrics"
	"github.com/jalexanderII/zero-todos/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const moduleName = "Todos"

// Facade is what the HTTP layer talks to. It runs the todo operations and
// reports unexpected failures before handing them back unchanged.
type Facade struct {
	svc   *Service
	store Store
	L     logrus.FieldLogger
	Now   func() time.Time
}

func NewFacade(store Store, l logrus.FieldLogger) *Facade {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Facade{
		svc:   NewService(store),
		store: store,
		L:     l,
		Now:   time.Now,
	}
}

func (f *Facade) List(ctx context.Context, filter models.TodoFilter, page models.PageRequest) (*models.TodoList, error) {
	res, err := f.svc.List(ctx, filter, page)
	if err != nil {
		return nil, f.fail("todosList", err)
	}
	return res, nil
}

// Create stores a new todo. The caller must already have set UserId and CreatedBy.
func (f *Facade) Create(ctx context.Context, todo *models.Todo) (*models.SuccessDescriptor, error) {
	if todo == nil || todo.UserId.IsZero() || todo.CreatedBy.IsZero() {
		return nil, ErrMissingOwner
	}

	now := f.Now().UTC()
	todo.ID = primitive.NewObjectID()
	if todo.Status == 0 {
		todo.Status = models.StatusPending
	}
	if todo.Priority == 0 {
		todo.Priority = models.PriorityHigh
	}
	todo.IsDeleted = false
	todo.CreatedAt = now
	todo.UpdatedAt = now

	if err := f.store.Insert(ctx, todo); err != nil {
		return nil, f.fail("createTodo", err)
	}
	res := models.TodoCreated
	return &res, nil
}

func (f *Facade) Update(ctx context.Context, id primitive.ObjectID, patch models.TodoPatch) (*models.SuccessDescriptor, error) {
	found, err := f.store.Patch(ctx, id, patch, f.Now().UTC())
	if err != nil {
		return nil, f.fail("updateTodo", err)
	}
	if !found {
		return nil, ErrTodoNotFound
	}
	res := models.TodoUpdated
	return &res, nil
}

// Delete soft deletes a todo. Deleting an already deleted todo reports not found.
func (f *Facade) Delete(ctx context.Context, id, updatedBy primitive.ObjectID) (*models.SuccessDescriptor, error) {
	found, err := f.store.SoftDelete(ctx, id, updatedBy, f.Now().UTC())
	if err != nil {
		return nil, f.fail("deleteTodo", err)
	}
	if !found {
		return nil, ErrTodoNotFound
	}
	res := models.TodoDeleted
	return &res, nil
}

func (f *Facade) Stats(ctx context.Context, ownerId primitive.ObjectID) ([]models.Stat, error) {
	stats, err := f.svc.Stats(ctx, ownerId)
	if err != nil {
		return nil, f.fail("todosStats", err)
	}
	return stats, nil
}

// StatsByDate lists every matching todo without pagination, for calendar views.
func (f *Facade) StatsByDate(ctx context.Context, filter models.TodoFilter) (*models.TodoList, error) {
	res, err := f.svc.ListAll(ctx, filter)
	if err != nil {
		return nil, f.fail("todosStatsByDate", err)
	}
	return res, nil
}

// fail logs unexpected errors with their module and method and returns err as is.
// Validation and not-found outcomes are expected and stay out of the error log.
func (f *Facade) fail(method string, err error) error {
	if IsError(err, ErrCodeInvalid) || IsError(err, ErrCodeNotFound) {
		return err
	}
	f.L.WithFields(logrus.Fields{
		"module": moduleName,
		"method": method,
	}).WithError(err).Error("todo operation failed")
	metrics.FacadeFailures.WithLabelValues(moduleName, method).Inc()
	return err
}
