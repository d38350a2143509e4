package ports

import (
	"context"
	"time"

	"github.com/openpress/blog-system/internal/core/domain"
)

// ActivityInput is the DTO handed from the post service to the dispatcher.
type ActivityInput struct {
	PostID    string
	ActorID   string
	Action    domain.ActivityAction
	Timestamp time.Time
}

// ActivityRepository persists entries of the post audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
}

// ActivityService records post activity off the request path.
type ActivityService interface {
	Record(ctx context.Context, input ActivityInput) error
}

// ActivityRecorder is the narrow interface the post service uses to hand
// activity to the background pipeline. Enqueue must never block the
// request path.
type ActivityRecorder interface {
	Enqueue(input ActivityInput)
}
