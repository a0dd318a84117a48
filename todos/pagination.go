package todos

import (
	"math"
	"strings"

	"github.com/jalexanderII/zero-todos/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultPageSize int64 = 10
	MaxPageSize     int64 = 100
)

// DefaultSort lists the newest todos first.
var DefaultSort = bson.D{{Key: "createdAt", Value: -1}}

// sortable maps the sort keys accepted from clients to document fields.
var sortable = map[string]string{
	"createdAt": "createdAt",
	"updatedAt": "updatedAt",
	"dueDate":   "dueDate",
	"title":     "title",
	"status":    "status",
	"priority":  "priority",
}

// Page is the effective skip/limit/sort applied to a list query.
type Page struct {
	Skip  int64
	Limit int64
	Sort  bson.D
}

// ResolvePage applies defaults and bounds to a raw pagination request.
func ResolvePage(req models.PageRequest, defaultSort bson.D) Page {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}
	// keep (page-1)*limit within int64
	if page > math.MaxInt64/limit {
		page = math.MaxInt64 / limit
	}
	skip := (page - 1) * limit
	if req.Skip != nil && *req.Skip >= 0 {
		skip = *req.Skip
	}

	sort := defaultSort
	if field, ok := sortable[req.SortField]; ok {
		sort = bson.D{{Key: field, Value: sortDirection(req.SortOrder)}}
	}

	return Page{Skip: skip, Limit: limit, Sort: sort}
}

func sortDirection(order string) int {
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "asc", "ascending", "1":
		return 1
	default:
		return -1
	}
}

// FindOptions converts the page into driver options.
func (p Page) FindOptions() *options.FindOptions {
	opts := options.Find().SetSkip(p.Skip).SetLimit(p.Limit)
	if len(p.Sort) > 0 {
		opts.SetSort(p.Sort)
	}
	return opts
}
