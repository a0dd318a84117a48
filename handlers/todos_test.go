package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/zero-todos/models"
	"github.com/jalexanderII/zero-todos/todos"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeFacade struct {
	err error

	listFilter models.TodoFilter
	listPage   models.PageRequest
	created    *models.Todo
	updatedID  primitive.ObjectID
	patch      models.TodoPatch
	deletedID  primitive.ObjectID
	deletedBy  primitive.ObjectID
	statsOwner primitive.ObjectID
	calendar   models.TodoFilter
	calls      int
}

func (f *fakeFacade) List(_ context.Context, filter models.TodoFilter, page models.PageRequest) (*models.TodoList, error) {
	f.calls++
	f.listFilter, f.listPage = filter, page
	if f.err != nil {
		return nil, f.err
	}
	return &models.TodoList{Total: 1, Todos: []models.Todo{{Title: "Buy milk", UserId: filter.UserId}}}, nil
}

func (f *fakeFacade) Create(_ context.Context, todo *models.Todo) (*models.SuccessDescriptor, error) {
	f.calls++
	f.created = todo
	if f.err != nil {
		return nil, f.err
	}
	return &models.TodoCreated, nil
}

func (f *fakeFacade) Update(_ context.Context, id primitive.ObjectID, patch models.TodoPatch) (*models.SuccessDescriptor, error) {
	f.calls++
	f.updatedID, f.patch = id, patch
	if f.err != nil {
		return nil, f.err
	}
	return &models.TodoUpdated, nil
}

func (f *fakeFacade) Delete(_ context.Context, id, updatedBy primitive.ObjectID) (*models.SuccessDescriptor, error) {
	f.calls++
	f.deletedID, f.deletedBy = id, updatedBy
	if f.err != nil {
		return nil, f.err
	}
	return &models.TodoDeleted, nil
}

func (f *fakeFacade) Stats(_ context.Context, ownerId primitive.ObjectID) ([]models.Stat, error) {
	f.calls++
	f.statsOwner = ownerId
	if f.err != nil {
		return nil, f.err
	}
	return []models.Stat{
		{Label: todos.LabelAll, Value: 6},
		{Label: todos.LabelUpcoming, Value: 3},
		{Label: todos.LabelCompleted, Value: 2},
	}, nil
}

func (f *fakeFacade) StatsByDate(_ context.Context, filter models.TodoFilter) (*models.TodoList, error) {
	f.calls++
	f.calendar = filter
	if f.err != nil {
		return nil, f.err
	}
	return &models.TodoList{Total: 0, Todos: []models.Todo{}}, nil
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	app    *fiber.App
	facade *fakeFacade
	hook   *test.Hook
	user   *models.User
}

// newTestServer mounts the todo routes behind a stub that authenticates every
// request as user, or as nobody when user is nil.
func newTestServer(t *testing.T, user *models.User) *testServer {
	t.Helper()
	l, hook := test.NewNullLogger()
	facade := &fakeFacade{}
	h := NewHandler(facade, l)

	app := fiber.New()
	g := app.Group("/todos", func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(UserKey, user)
		}
		return c.Next()
	})
	g.Get("/", ListTodos(h))
	g.Get("/stats", TodoStats(h))
	g.Get("/calendar", TodoCalendar(h))
	g.Post("/", CreateTodo(h))
	g.Put("/:todoId", UpdateTodo(h))
	g.Delete("/:todoId", DeleteTodo(h))
	app.Get("/users/me", func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals(UserKey, user)
		}
		return c.Next()
	}, GetCurrentUser(h))

	return &testServer{app: app, facade: facade, hook: hook, user: user}
}

func (s *testServer) do(t *testing.T, method, target, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func caller() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Name: "Ada", Email: "ada@example.com"}
}

func TestRoutesRequireUser(t *testing.T) {
	s := newTestServer(t, nil)
	id := primitive.NewObjectID().Hex()

	for _, tc := range []struct{ method, target, body string }{
		{http.MethodGet, "/todos", ""},
		{http.MethodGet, "/todos/stats", ""},
		{http.MethodGet, "/todos/calendar", ""},
		{http.MethodPost, "/todos", `{"title":"Buy milk","description":"2% milk","dueDate":"2025-01-01"}`},
		{http.MethodPut, "/todos/" + id, `{"status":3}`},
		{http.MethodDelete, "/todos/" + id, ""},
		{http.MethodGet, "/users/me", ""},
	} {
		code, env := s.do(t, tc.method, tc.target, tc.body)
		assert.Equal(t, fiber.StatusUnauthorized, code, tc.method+" "+tc.target)
		assert.Equal(t, "error", env.Status)
	}
	assert.Zero(t, s.facade.calls)
}

func TestCreateTodo(t *testing.T) {
	s := newTestServer(t, caller())

	code, env := s.do(t, http.MethodPost, "/todos", `{"title":"  Buy milk ","description":"2% milk","dueDate":"2025-01-01"}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "Todo created successfully", env.Message)

	got := s.facade.created
	require.NotNil(t, got)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "2% milk", got.Description)
	assert.Equal(t, s.user.ID, got.UserId)
	assert.Equal(t, s.user.ID, got.CreatedBy)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *got.DueDate)
}

func TestCreateTodoValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "title too long",
			body: `{"title":"` + strings.Repeat("a", 201) + `","description":"2% milk","dueDate":"2025-01-01"}`,
			want: "Title cannot exceed 200 characters",
		},
		{
			name: "description too short",
			body: `{"title":"Buy milk","description":"milk","dueDate":"2025-01-01"}`,
			want: "Description must be at least 5 characters",
		},
		{
			name: "missing due date",
			body: `{"title":"Buy milk","description":"2% milk"}`,
			want: "Due date is required",
		},
		{
			name: "bad due date",
			body: `{"title":"Buy milk","description":"2% milk","dueDate":"next tuesday"}`,
			want: "Due date must be a valid date",
		},
		{
			name: "blank title",
			body: `{"title":"   ","description":"2% milk","dueDate":"2025-01-01"}`,
			want: "Title is required",
		},
		{
			name: "several failures are joined",
			body: `{"description":"milk","dueDate":"2025-01-01"}`,
			want: "Title is required, Description must be at least 5 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, caller())
			code, env := s.do(t, http.MethodPost, "/todos", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, code)
			assert.Equal(t, "error", env.Status)
			assert.Equal(t, tt.want, env.Message)
			assert.Zero(t, s.facade.calls)
		})
	}
}

func TestCreateTodoMalformedBody(t *testing.T) {
	s := newTestServer(t, caller())
	code, env := s.do(t, http.MethodPost, "/todos", `{"title":`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "request body malformed", env.Message)
	assert.Zero(t, s.facade.calls)
}

func TestUpdateTodo(t *testing.T) {
	s := newTestServer(t, caller())
	id := primitive.NewObjectID()

	code, env := s.do(t, http.MethodPut, "/todos/"+id.Hex(), `{"status":3,"dueDate":"2025-02-01T10:00:00Z"}`)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Todo updated successfully", env.Message)

	assert.Equal(t, id, s.facade.updatedID)
	p := s.facade.patch
	require.NotNil(t, p.Status)
	assert.Equal(t, models.StatusCompleted, *p.Status)
	require.NotNil(t, p.DueDate)
	assert.Equal(t, time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC), *p.DueDate)
	assert.Nil(t, p.Title)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Priority)
	assert.Equal(t, s.user.ID, p.UpdatedBy)
}

func TestUpdateTodoRejections(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	tests := []struct {
		name   string
		target string
		body   string
		want   string
	}{
		{"nothing to update", "/todos/" + id, `{}`, "Nothing to update"},
		{"invalid id", "/todos/not-an-id", `{"status":3}`, "Invalid todo id"},
		{"empty title", "/todos/" + id, `{"title":"  "}`, "Title cannot be empty"},
		{"status out of range", "/todos/" + id, `{"status":7}`, "Status must be between 1 and 4"},
		{"priority out of range", "/todos/" + id, `{"priority":0}`, "Priority must be between 1 and 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, caller())
			code, env := s.do(t, http.MethodPut, tt.target, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, code)
			assert.Equal(t, tt.want, env.Message)
			assert.Zero(t, s.facade.calls)
		})
	}
}

func TestUpdateTodoNotFound(t *testing.T) {
	s := newTestServer(t, caller())
	s.facade.err = todos.ErrTodoNotFound

	code, env := s.do(t, http.MethodPut, "/todos/"+primitive.NewObjectID().Hex(), `{"title":"x"}`)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Todo not found", env.Message)
	assert.Empty(t, s.hook.AllEntries())
}

func TestDeleteTodo(t *testing.T) {
	s := newTestServer(t, caller())
	id := primitive.NewObjectID()

	code, env := s.do(t, http.MethodDelete, "/todos/"+id.Hex(), "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Todo deleted successfully", env.Message)
	assert.Equal(t, id, s.facade.deletedID)
	assert.Equal(t, s.user.ID, s.facade.deletedBy)
}

func TestUnexpectedErrorsAreHidden(t *testing.T) {
	s := newTestServer(t, caller())
	s.facade.err = errors.New("connection reset by peer")

	code, env := s.do(t, http.MethodDelete, "/todos/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "Something went wrong, please try again later", env.Message)
	assert.NotContains(t, env.Message, "connection reset")

	// the facade owns the error log
	for _, entry := range s.hook.AllEntries() {
		assert.NotEqual(t, logrus.ErrorLevel, entry.Level)
	}
}

func TestInvalidErrorsHideTheirCause(t *testing.T) {
	s := newTestServer(t, caller())
	s.facade.err = todos.WrapError(todos.ErrCodeInvalid, "title cannot exceed 200 characters", errors.New("schema: title length 201"))

	code, env := s.do(t, http.MethodPut, "/todos/"+primitive.NewObjectID().Hex(), `{"title":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "title cannot exceed 200 characters", env.Message)
}

func TestListTodosDefaultsToCaller(t *testing.T) {
	s := newTestServer(t, caller())

	code, env := s.do(t, http.MethodGet, "/todos", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, s.user.ID, s.facade.listFilter.UserId)
	assert.Equal(t, models.PageRequest{}, s.facade.listPage)

	var list models.TodoList
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, int64(1), list.Total)
	assert.Len(t, list.Todos, 1)
}

func TestListTodosParsesQuery(t *testing.T) {
	s := newTestServer(t, caller())
	owner := primitive.NewObjectID()

	code, _ := s.do(t, http.MethodGet, "/todos?title=milk&description=oat&userId="+owner.Hex()+
		"&status=3&dueDate.from=2025-01-01&dueDate.to=2025-01-31&page=2&limit=20&skip=5&sortField=dueDate&sortOrder=asc", "")
	require.Equal(t, fiber.StatusOK, code)

	f := s.facade.listFilter
	assert.Equal(t, "milk", f.Title)
	assert.Equal(t, "oat", f.Description)
	assert.Equal(t, owner, f.UserId)
	assert.Equal(t, models.StatusCompleted, f.Status)
	require.NotNil(t, f.DueFrom)
	require.NotNil(t, f.DueTo)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *f.DueFrom)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), *f.DueTo)

	p := s.facade.listPage
	assert.Equal(t, int64(2), p.Page)
	assert.Equal(t, int64(20), p.Limit)
	require.NotNil(t, p.Skip)
	assert.Equal(t, int64(5), *p.Skip)
	assert.Equal(t, "dueDate", p.SortField)
	assert.Equal(t, "asc", p.SortOrder)
}

func TestListTodosRejectsBadQuery(t *testing.T) {
	for target, want := range map[string]string{
		"/todos?status=9":             "Status must be between 1 and 4",
		"/todos?userId=nope":          "userId must be a valid id",
		"/todos?limit=-1":             "limit must be a non-negative integer",
		"/todos?page=two":             "page must be a non-negative integer",
		"/todos?dueDate.from=someday": "dueDate.from must be a valid date",
	} {
		s := newTestServer(t, caller())
		code, env := s.do(t, http.MethodGet, target, "")
		assert.Equal(t, fiber.StatusBadRequest, code, target)
		assert.Equal(t, want, env.Message, target)
		assert.Zero(t, s.facade.calls, target)
	}
}

func TestTodoStats(t *testing.T) {
	s := newTestServer(t, caller())

	code, env := s.do(t, http.MethodGet, "/todos/stats", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, s.user.ID, s.facade.statsOwner)

	var res models.StatsResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, []models.Stat{
		{Label: "All Todos", Value: 6},
		{Label: "Upcoming", Value: 3},
		{Label: "Completed", Value: 2},
	}, res.Stats)
}

func TestTodoCalendar(t *testing.T) {
	s := newTestServer(t, caller())

	code, env := s.do(t, http.MethodGet, "/todos/calendar?dueDate.to=2025-03-01", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, s.user.ID, s.facade.calendar.UserId)
	assert.Nil(t, s.facade.calendar.DueFrom)
	require.NotNil(t, s.facade.calendar.DueTo)

	var list models.TodoList
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.NotNil(t, list.Todos)
}

func TestGetCurrentUser(t *testing.T) {
	s := newTestServer(t, caller())

	code, env := s.do(t, http.MethodGet, "/users/me", "")
	require.Equal(t, fiber.StatusOK, code)

	var got models.User
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, *s.user, got)
}
