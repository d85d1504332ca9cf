package taskmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravikirankalal/go-fundamentals/taskgroup"
)

func newMetrics(t *testing.T) *Metrics {
	t.Helper()
	// Fresh registry per test to avoid duplicate registration.
	m, err := New(prometheus.NewRegistry())
	require.NoError(t, err)
	return m
}

func TestDuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	assert.Error(t, err)
}

func TestCountsSuccessfulTasks(t *testing.T) {
	m := newMetrics(t)
	g := taskgroup.New(context.Background(), taskgroup.Supervisor, taskgroup.WithObserver(m))
	for i := 0; i < 3; i++ {
		g.Go(func(_ context.Context) error { return nil })
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 3.0, testutil.ToFloat64(m.tasksStarted))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.tasksDone))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.tasksErrored))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.activeTasks))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.groupsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.groupWaits))
}

func TestCountsErrorsAndPanics(t *testing.T) {
	m := newMetrics(t)
	g := taskgroup.New(context.Background(), taskgroup.Supervisor, taskgroup.WithObserver(m))
	g.Go(func(_ context.Context) error { return errors.New("boom") })
	g.Go(func(_ context.Context) error { panic("sad") })
	g.Go(func(_ context.Context) error { return nil })
	assert.Error(t, g.Wait())

	assert.Equal(t, 3.0, testutil.ToFloat64(m.tasksDone))
	// The panic converts to an error, so it counts in both series.
	assert.Equal(t, 2.0, testutil.ToFloat64(m.tasksErrored))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tasksPanicked))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.activeTasks))
}

func TestCountsCancelledGroups(t *testing.T) {
	m := newMetrics(t)
	g := taskgroup.New(context.Background(), taskgroup.FailFast, taskgroup.WithObserver(m))
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	g.Cancel(errors.New("stop"))
	assert.Error(t, g.Wait())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.groupsCancelled))
}
