package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openpress/blog-system/internal/core/domain"
	"github.com/openpress/blog-system/internal/core/ports"
)

const activityCollection = "post_activity"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	db *mongo.Database
}

func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{db: db}
}

// Insert appends one entry to the post activity audit trail.
func (r *ActivityRepository) Insert(ctx context.Context, a *domain.Activity) error {
	doc := bson.M{
		"post_id":      a.PostID,
		"actor_id":     a.ActorID,
		"action":       string(a.Action),
		"timestamp":    a.Timestamp.UTC(),
		"processed_at": time.Now().UTC(),
	}

	_, err := r.db.Collection(activityCollection).InsertOne(ctx, doc)
	return err
}
