package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/openpress/blog-system/internal/core/domain"
	"github.com/openpress/blog-system/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists the post
// audit trail.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists one activity entry. The trail is append-only and
// best-effort: callers treat failures as non-fatal.
func (s *activityService) Record(ctx context.Context, in ports.ActivityInput) error {
	entry := &domain.Activity{
		PostID:    in.PostID,
		ActorID:   in.ActorID,
		Action:    in.Action,
		Timestamp: in.Timestamp,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.Debug().
		Str("post_id", in.PostID).
		Str("action", string(in.Action)).
		Msg("activity recorded")
	return nil
}
