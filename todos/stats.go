package todos

import (
	"context"

	"github.com/jalexanderII/zero-todos/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

const (
	LabelAll       = "All Todos"
	LabelUpcoming  = "Upcoming"
	LabelCompleted = "Completed"
)

// Stats counts an owner's live todos: all of them, the pending ones and the
// completed ones, in that order. The three counts run concurrently and are not
// taken from a single snapshot.
func (s *Service) Stats(ctx context.Context, ownerId primitive.ObjectID) ([]models.Stat, error) {
	buckets := []struct {
		label  string
		filter models.TodoFilter
	}{
		{LabelAll, models.TodoFilter{UserId: ownerId}},
		{LabelUpcoming, models.TodoFilter{UserId: ownerId, Status: models.StatusPending}},
		{LabelCompleted, models.TodoFilter{UserId: ownerId, Status: models.StatusCompleted}},
	}

	stats := make([]models.Stat, len(buckets))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range buckets {
		i, b := i, b
		g.Go(func() error {
			n, err := s.store.Count(gctx, BuildQuery(b.filter))
			if err != nil {
				return err
			}
			stats[i] = models.Stat{Label: b.label, Value: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
