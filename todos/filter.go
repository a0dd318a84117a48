package todos

import (
	"regexp"

	"github.com/jalexanderII/zero-todos/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildQuery turns a list filter into a Mongo predicate. Soft-deleted todos are
// always excluded.
func BuildQuery(f models.TodoFilter) bson.M {
	filter := bson.M{"isDeleted": false}
	if f.Title != "" {
		filter["title"] = containsFold(f.Title)
	}
	if f.Description != "" {
		filter["description"] = containsFold(f.Description)
	}
	if !f.UserId.IsZero() {
		filter["userId"] = f.UserId
	}
	if f.Status != 0 {
		filter["status"] = f.Status
	}
	if f.DueFrom != nil || f.DueTo != nil {
		due := bson.M{}
		if f.DueFrom != nil {
			due["$gte"] = *f.DueFrom
		}
		if f.DueTo != nil {
			due["$lte"] = *f.DueTo
		}
		filter["dueDate"] = due
	}
	return filter
}

// containsFold matches s anywhere in the field, ignoring case.
func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
