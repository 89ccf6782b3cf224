package cron

import (
	log "log/slog"

	"github.com/hectoorperezz/goviral-backend/internal/api/config"
	"github.com/hectoorperezz/goviral-backend/internal/job"
	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine            *cron.Cron
	followerUpdateJob *job.FollowerUpdateJob
}

func NewCronManager(followerUpdateJob *job.FollowerUpdateJob) *Manager {
	return &Manager{
		engine:            cron.New(cron.WithSeconds()),
		followerUpdateJob: followerUpdateJob,
	}
}

// RegisterJobs wires the scheduled jobs.
func (s *Manager) RegisterJobs() error {
	schedule := config.Cfg.Tracker.UpdateSchedule
	if schedule == "" {
		schedule = "@daily"
	}
	if _, err := s.engine.AddJob(schedule, s.followerUpdateJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
