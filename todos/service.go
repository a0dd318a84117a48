package todos

import (
	"context"

	"github.com/jalexanderII/zero-todos/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listProjection restricts list results to the fields clients render.
var listProjection = bson.M{
	"title":       1,
	"description": 1,
	"userId":      1,
	"status":      1,
	"dueDate":     1,
}

// Service composes filters and pagination into todo queries.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns one page of todos matching f together with the total number of
// matches. The count and the page are two independent reads, so under
// concurrent writes they can disagree.
func (s *Service) List(ctx context.Context, f models.TodoFilter, req models.PageRequest) (*models.TodoList, error) {
	opts := ResolvePage(req, DefaultSort).FindOptions()
	return s.list(ctx, BuildQuery(f), opts.SetProjection(listProjection))
}

// ListAll is List without pagination or sorting.
func (s *Service) ListAll(ctx context.Context, f models.TodoFilter) (*models.TodoList, error) {
	return s.list(ctx, BuildQuery(f), options.Find().SetProjection(listProjection))
}

func (s *Service) list(ctx context.Context, query bson.M, opts *options.FindOptions) (*models.TodoList, error) {
	total, err := s.store.Count(ctx, query)
	if err != nil {
		return nil, err
	}
	todos, err := s.store.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = make([]models.Todo, 0)
	}
	return &models.TodoList{Total: total, Todos: todos}, nil
}
