// Package taskmetrics provides a prometheus-backed taskgroup.Observer.
// It counts task and group lifecycle events so the concurrency example
// can show what a pool of goroutines actually did.
package taskmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics implements taskgroup.Observer on top of prometheus collectors.
type Metrics struct {
	activeTasks     prometheus.Gauge
	tasksStarted    prometheus.Counter
	tasksDone       prometheus.Counter
	tasksErrored    prometheus.Counter
	tasksPanicked   prometheus.Counter
	taskDuration    prometheus.Histogram
	groupsCreated   prometheus.Counter
	groupsCancelled prometheus.Counter
	groupWaits      prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		activeTasks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "taskgroup_active_tasks",
			Help: "Number of tasks currently running.",
		}),
		tasksStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskgroup_tasks_started_total",
			Help: "Total number of tasks started.",
		}),
		tasksDone: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskgroup_tasks_done_total",
			Help: "Total number of tasks that returned.",
		}),
		tasksErrored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskgroup_tasks_errored_total",
			Help: "Total number of tasks that returned a non-nil error.",
		}),
		tasksPanicked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskgroup_tasks_panicked_total",
			Help: "Total number of tasks that panicked.",
		}),
		taskDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taskgroup_task_duration_seconds",
			Help:    "Task run time in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		groupsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskgroup_groups_created_total",
			Help: "Total number of groups created.",
		}),
		groupsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskgroup_groups_cancelled_total",
			Help: "Total number of groups cancelled.",
		}),
		groupWaits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "taskgroup_group_waits_total",
			Help: "Total number of completed Wait calls.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.activeTasks, m.tasksStarted, m.tasksDone, m.tasksErrored,
		m.tasksPanicked, m.taskDuration,
		m.groupsCreated, m.groupsCancelled, m.groupWaits,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// GroupCreated records group creation.
func (m *Metrics) GroupCreated(_ context.Context) {
	m.groupsCreated.Inc()
}

// GroupCancelled records group cancellation.
func (m *Metrics) GroupCancelled(_ context.Context, _ error) {
	m.groupsCancelled.Inc()
}

// GroupWaited records a completed join.
func (m *Metrics) GroupWaited(_ context.Context, _ time.Duration) {
	m.groupWaits.Inc()
}

// TaskStarted marks a task as running.
func (m *Metrics) TaskStarted(_ context.Context) {
	m.activeTasks.Inc()
	m.tasksStarted.Inc()
}

// TaskDone marks a task as finished and classifies the outcome.
func (m *Metrics) TaskDone(_ context.Context, dur time.Duration, err error, panicked bool) {
	m.activeTasks.Dec()
	m.tasksDone.Inc()
	if err != nil {
		m.tasksErrored.Inc()
	}
	if panicked {
		m.tasksPanicked.Inc()
	}
	m.taskDuration.Observe(dur.Seconds())
}
