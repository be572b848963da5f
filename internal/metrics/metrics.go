package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mythic_notifier_notifications_total",
		Help: "The total number of notification deliveries by outcome",
	}, []string{"outcome"})

	ScheduledJobs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mythic_notifier_scheduled_jobs_total",
		Help: "The total number of notification jobs registered with the scheduler",
	})

	SkippedSchedules = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mythic_notifier_skipped_schedules_total",
		Help: "The total number of registrations skipped due to malformed stored schedules",
	})

	RaiderIORequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "raiderio_request_duration_seconds",
		Help:    "Duration of raider.io API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	RaiderIORequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "raiderio_requests_total",
		Help: "Total number of raider.io API requests",
	}, []string{"status"})
)
