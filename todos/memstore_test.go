package todos

import (
	"context"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/jalexanderII/zero-todos/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// memStore is an in-memory Store that understands the predicates BuildQuery produces.
type memStore struct {
	mu    sync.Mutex
	todos []models.Todo

	countErr  error
	findErr   error
	insertErr error
	// failStatus makes Count fail only for filters on that status.
	failStatus models.Status

	counts   []bson.M
	findOpts []*options.FindOptions
}

func (m *memStore) Count(_ context.Context, filter bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = append(m.counts, filter)
	if m.countErr != nil {
		if m.failStatus == 0 || filter["status"] == m.failStatus {
			return 0, m.countErr
		}
	}
	var n int64
	for _, t := range m.todos {
		if matches(t, filter) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) Find(_ context.Context, filter bson.M, opts *options.FindOptions) ([]models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findOpts = append(m.findOpts, opts)
	if m.findErr != nil {
		return nil, m.findErr
	}

	out := make([]models.Todo, 0)
	for _, t := range m.todos {
		if matches(t, filter) {
			out = append(out, t)
		}
	}

	if s, ok := opts.Sort.(bson.D); ok && len(s) > 0 && s[0].Key == "createdAt" {
		asc := s[0].Value == 1
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return out[i].CreatedAt.Before(out[j].CreatedAt)
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	if opts.Skip != nil {
		skip := int(*opts.Skip)
		if skip > len(out) {
			skip = len(out)
		}
		out = out[skip:]
	}
	if opts.Limit != nil && int(*opts.Limit) < len(out) {
		out = out[:*opts.Limit]
	}
	if opts.Projection != nil {
		for i := range out {
			out[i] = project(out[i])
		}
	}
	return out, nil
}

func (m *memStore) Insert(_ context.Context, todo *models.Todo) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if err := todo.Validate(); err != nil {
		return WrapError(ErrCodeInvalid, err.Error(), err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.todos = append(m.todos, *todo)
	return nil
}

func (m *memStore) Patch(_ context.Context, id primitive.ObjectID, patch models.TodoPatch, now time.Time) (bool, error) {
	if err := patch.Validate(); err != nil {
		return false, WrapError(ErrCodeInvalid, err.Error(), err)
	}
	return m.apply(id, func(t *models.Todo) {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.DueDate != nil {
			t.DueDate = patch.DueDate
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		t.UpdatedBy = patch.UpdatedBy
		t.UpdatedAt = now
	}), nil
}

func (m *memStore) SoftDelete(_ context.Context, id, updatedBy primitive.ObjectID, now time.Time) (bool, error) {
	return m.apply(id, func(t *models.Todo) {
		t.IsDeleted = true
		t.UpdatedBy = updatedBy
		t.UpdatedAt = now
	}), nil
}

func (m *memStore) apply(id primitive.ObjectID, fn func(*models.Todo)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.todos {
		if m.todos[i].ID == id && !m.todos[i].IsDeleted {
			fn(&m.todos[i])
			return true
		}
	}
	return false
}

func (m *memStore) get(id primitive.ObjectID) models.Todo {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.todos {
		if t.ID == id {
			return t
		}
	}
	return models.Todo{}
}

func matches(t models.Todo, filter bson.M) bool {
	for key, want := range filter {
		switch key {
		case "_id":
			if t.ID != want.(primitive.ObjectID) {
				return false
			}
		case "isDeleted":
			if t.IsDeleted != want.(bool) {
				return false
			}
		case "title":
			if !regexMatch(want, t.Title) {
				return false
			}
		case "description":
			if !regexMatch(want, t.Description) {
				return false
			}
		case "userId":
			if t.UserId != want.(primitive.ObjectID) {
				return false
			}
		case "status":
			if t.Status != want.(models.Status) {
				return false
			}
		case "dueDate":
			if t.DueDate == nil {
				return false
			}
			rng := want.(bson.M)
			if from, ok := rng["$gte"].(time.Time); ok && t.DueDate.Before(from) {
				return false
			}
			if to, ok := rng["$lte"].(time.Time); ok && t.DueDate.After(to) {
				return false
			}
		default:
			panic("memStore: unsupported filter key " + key)
		}
	}
	return true
}

func regexMatch(want interface{}, s string) bool {
	re := want.(primitive.Regex)
	prefix := ""
	if re.Options == "i" {
		prefix = "(?i)"
	}
	return regexp.MustCompile(prefix + re.Pattern).MatchString(s)
}

func project(t models.Todo) models.Todo {
	return models.Todo{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		UserId:      t.UserId,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

func seedTodo(owner primitive.ObjectID, title string, status models.Status, created time.Time) models.Todo {
	return models.Todo{
		ID:        primitive.NewObjectID(),
		UserId:    owner,
		CreatedBy: owner,
		Title:     title,
		Status:    status,
		Priority:  models.PriorityHigh,
		CreatedAt: created,
		UpdatedAt: created,
	}
}
