package todos

import (
	"context"
	"strings"
	"time"

	"github.com/jalexanderII/zero-todos/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists todo documents.
type Store interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Todo, error)
	Insert(ctx context.Context, todo *models.Todo) error
	// Patch applies a partial update to a live todo. It reports false when no
	// non-deleted todo has the given id.
	Patch(ctx context.Context, id primitive.ObjectID, patch models.TodoPatch, now time.Time) (bool, error)
	SoftDelete(ctx context.Context, id, updatedBy primitive.ObjectID, now time.Time) (bool, error)
}

// MongoStore is the Store backed by a Mongo collection.
type MongoStore struct {
	Db *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{Db: coll}
}

func (s *MongoStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.Db.CountDocuments(ctx, filter)
}

func (s *MongoStore) Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Todo, error) {
	todos := make([]models.Todo, 0)
	cursor, err := s.Db.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *MongoStore) Insert(ctx context.Context, todo *models.Todo) error {
	todo.Title = strings.TrimSpace(todo.Title)
	todo.Description = strings.TrimSpace(todo.Description)
	if err := todo.Validate(); err != nil {
		return WrapError(ErrCodeInvalid, err.Error(), err)
	}
	_, err := s.Db.InsertOne(ctx, todo)
	return err
}

func (s *MongoStore) Patch(ctx context.Context, id primitive.ObjectID, patch models.TodoPatch, now time.Time) (bool, error) {
	if err := patch.Validate(); err != nil {
		return false, WrapError(ErrCodeInvalid, err.Error(), err)
	}
	return s.update(ctx, id, PatchSet(patch, now))
}

func (s *MongoStore) SoftDelete(ctx context.Context, id, updatedBy primitive.ObjectID, now time.Time) (bool, error) {
	return s.update(ctx, id, bson.M{
		"isDeleted": true,
		"updatedBy": updatedBy,
		"updatedAt": now,
	})
}

func (s *MongoStore) update(ctx context.Context, id primitive.ObjectID, set bson.M) (bool, error) {
	filter := bson.M{"_id": id, "isDeleted": false}
	res, err := s.Db.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// PatchSet builds the $set document of a partial update: only supplied fields,
// plus updatedBy, updatedAt and the per-field lastUpdate stamps.
func PatchSet(p models.TodoPatch, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if !p.UpdatedBy.IsZero() {
		set["updatedBy"] = p.UpdatedBy
	}
	touch := func(field string, value interface{}) {
		set[field] = value
		set["lastUpdate."+field] = now
	}
	if p.Title != nil {
		touch("title", strings.TrimSpace(*p.Title))
	}
	if p.Description != nil {
		touch("description", strings.TrimSpace(*p.Description))
	}
	if p.DueDate != nil {
		touch("dueDate", *p.DueDate)
	}
	if p.Status != nil {
		touch("status", *p.Status)
	}
	if p.Priority != nil {
		touch("priority", *p.Priority)
	}
	return set
}
