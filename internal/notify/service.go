package notify

import (
	"context"
	"log/slog"
	"time"

	"mythic-notifier/internal/metrics"
	"mythic-notifier/internal/schedule"
	"mythic-notifier/internal/storage"

	"github.com/robfig/cron/v3"
)

// Service owns the cron scheduler. On start it re-registers every persisted
// registration as a recurring notification job; live commands register new
// jobs through Schedule.
type Service struct {
	storage  storage.Storage
	notifier CharacterNotifier
	cron     *cron.Cron
}

func NewService(store storage.Storage, notifier CharacterNotifier) *Service {
	return &Service{
		storage:  store,
		notifier: notifier,
		cron:     cron.New(cron.WithLocation(time.UTC)),
	}
}

// Start schedules a job for every persisted registration and starts the
// scheduler. Registrations whose stored schedule cannot be translated are
// logged and skipped: they stay persisted but fire nothing until the
// stored string is fixed and the process restarts.
func (s *Service) Start(ctx context.Context) {
	for userID, characters := range s.storage.AllCharacters() {
		for _, ch := range characters {
			s.Schedule(userID, ch)
		}
	}

	s.cron.Start()
	slog.Info("Notification scheduler started", "jobs", len(s.cron.Entries()))

	go func() {
		<-ctx.Done()
		s.cron.Stop()
	}()
}

// Schedule registers one recurring notification job for a registration.
func (s *Service) Schedule(userID string, ch storage.Character) {
	trigger, err := schedule.Translate(ch.Cadence, ch.Time)
	if err != nil {
		metrics.SkippedSchedules.Inc()
		slog.Error("Skipping registration with malformed schedule",
			"user_id", userID, "character", ch.Key(), "time", ch.Time, "error", err)
		return
	}

	spec := trigger.CronSpec()
	if _, err := s.cron.AddFunc(spec, func() {
		if err := s.notifier.Notify(userID, ch); err != nil {
			slog.Error("Notification failed", "user_id", userID, "character", ch.Key(), "error", err)
		}
	}); err != nil {
		slog.Error("Failed to register job", "user_id", userID, "character", ch.Key(), "spec", spec, "error", err)
		return
	}

	metrics.ScheduledJobs.Inc()
	slog.Info("Scheduled notification", "user_id", userID, "character", ch.Key(), "spec", spec)
}

// Jobs reports how many jobs are currently registered.
func (s *Service) Jobs() int {
	return len(s.cron.Entries())
}

// Stop halts the scheduler. Already-running jobs finish on their own.
func (s *Service) Stop() {
	s.cron.Stop()
}
