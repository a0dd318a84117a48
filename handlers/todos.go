package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jalexanderII/zero-todos/models"
)

// @Summary List todos.
// @Description list non-deleted todos matching the filters, one page at a time. Without userId the caller's todos are listed.
// @Tags todos
// @Security BearerAuth
// @Param title query string false "Case-insensitive title substring"
// @Param description query string false "Case-insensitive description substring"
// @Param userId query string false "Owner id"
// @Param status query int false "Status (1-4)"
// @Param dueDate.from query string false "Due on or after"
// @Param dueDate.to query string false "Due on or before"
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size (max 100)"
// @Param skip query int false "Explicit offset, overrides page"
// @Param sortField query string false "createdAt, updatedAt, dueDate, title, status or priority"
// @Param sortOrder query string false "asc or desc"
// @Produce json
// @Success 200 {object} models.TodoList
// @Router /todos [get]
func ListTodos(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return h.unauthorized(c)
		}

		filter, page, err := parseListQuery(c)
		if err != nil {
			return h.respondError(c, err)
		}
		if filter.UserId.IsZero() {
			filter.UserId = user.ID
		}

		res, err := h.Todos.List(c.UserContext(), filter, page)
		if err != nil {
			return h.respondError(c, err)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "todos", res)
	}
}

// @Summary Todo counters for the caller.
// @Description count all, upcoming (pending) and completed todos of the caller.
// @Tags todos
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.StatsResponse
// @Router /todos/stats [get]
func TodoStats(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return h.unauthorized(c)
		}

		stats, err := h.Todos.Stats(c.UserContext(), user.ID)
		if err != nil {
			return h.respondError(c, err)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "todo stats", models.StatsResponse{Stats: stats})
	}
}

// @Summary Calendar of the caller's todos.
// @Description list every non-deleted todo of the caller, unpaginated.
// @Tags todos
// @Security BearerAuth
// @Param dueDate.from query string false "Due on or after"
// @Param dueDate.to query string false "Due on or before"
// @Produce json
// @Success 200 {object} models.TodoList
// @Router /todos/calendar [get]
func TodoCalendar(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return h.unauthorized(c)
		}

		filter := models.TodoFilter{UserId: user.ID}
		if err := parseDueRange(c, &filter); err != nil {
			return h.respondError(c, err)
		}

		res, err := h.Todos.StatsByDate(c.UserContext(), filter)
		if err != nil {
			return h.respondError(c, err)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", "todo calendar", res)
	}
}

// @Summary Create a todo.
// @Description create a todo owned by the caller.
// @Tags todos
// @Security BearerAuth
// @Accept json
// @Param todo body models.CreateTodoRequest true "Todo to create"
// @Produce json
// @Success 200 {object} models.SuccessDescriptor
// @Router /todos [post]
func CreateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return h.unauthorized(c)
		}

		todo, err := h.parseCreate(c)
		if err != nil {
			return h.respondError(c, err)
		}
		todo.UserId = user.ID
		todo.CreatedBy = user.ID

		res, err := h.Todos.Create(c.UserContext(), todo)
		if err != nil {
			return h.respondError(c, err)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", res.Message, res)
	}
}

// @Summary Update a todo.
// @Description partially update a todo. Only supplied fields change.
// @Tags todos
// @Security BearerAuth
// @Accept json
// @Param todoId path string true "Todo ID"
// @Param todo body models.UpdateTodoRequest true "Fields to change"
// @Produce json
// @Success 200 {object} models.SuccessDescriptor
// @Router /todos/{todoId} [put]
func UpdateTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return h.unauthorized(c)
		}

		id, err := parseTodoID(c)
		if err != nil {
			return h.respondError(c, err)
		}
		patch, err := h.parseUpdate(c)
		if err != nil {
			return h.respondError(c, err)
		}
		patch.UpdatedBy = user.ID

		res, err := h.Todos.Update(c.UserContext(), id, patch)
		if err != nil {
			return h.respondError(c, err)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", res.Message, res)
	}
}

// @Summary Delete a todo.
// @Description soft delete a todo.
// @Tags todos
// @Security BearerAuth
// @Param todoId path string true "Todo ID"
// @Produce json
// @Success 200 {object} models.SuccessDescriptor
// @Router /todos/{todoId} [delete]
func DeleteTodo(h *Handler) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return h.unauthorized(c)
		}

		id, err := parseTodoID(c)
		if err != nil {
			return h.respondError(c, err)
		}

		res, err := h.Todos.Delete(c.UserContext(), id, user.ID)
		if err != nil {
			return h.respondError(c, err)
		}
		return FiberJsonResponse(c, fiber.StatusOK, "success", res.Message, res)
	}
}
