package job

import (
	"context"
	log "log/slog"

	"github.com/google/uuid"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/logger"
	"github.com/hectoorperezz/goviral-backend/internal/service"
)

// FollowerUpdateJob runs the daily refresh of all tracked users.
type FollowerUpdateJob struct {
	trackerSvc service.TrackerService
}

func NewFollowerUpdateJob(trackerSvc service.TrackerService) *FollowerUpdateJob {
	return &FollowerUpdateJob{
		trackerSvc: trackerSvc,
	}
}

func (s *FollowerUpdateJob) Run() {
	traceID := "job-follower-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	summary, err := s.trackerSvc.PerformDailyUpdate(ctx)
	if err != nil {
		log.ErrorContext(ctx, "follower update job failed", "err", err)
		return
	}

	log.InfoContext(ctx, "follower update job finished",
		"total", summary.Total, "updated", summary.Updated, "errors", summary.Errors)
}
