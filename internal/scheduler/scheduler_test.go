package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/pumpwatch/pkg/config"
	"github.com/wonny/pumpwatch/pkg/logger"
)

type fakeJob struct {
	name     string
	schedule string
	runs     atomic.Int32
	failN    int32 // fail the first N runs
}

func (j *fakeJob) Name() string     { return j.name }
func (j *fakeJob) Schedule() string { return j.schedule }

func (j *fakeJob) Run(ctx context.Context) error {
	n := j.runs.Add(1)
	if n <= j.failN {
		return errors.New("transient failure")
	}
	return nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	return logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
}

func TestScheduler_AddJob(t *testing.T) {
	sched := New(testLogger(t), time.UTC)

	job := &fakeJob{name: "test_job", schedule: "0 30 16 * * 1-5"}
	require.NoError(t, sched.AddJob(job))

	// Duplicate registration is rejected
	err := sched.AddJob(&fakeJob{name: "test_job", schedule: "0 0 9 * * *"})
	assert.Error(t, err)

	// Invalid cron expression is rejected
	err = sched.AddJob(&fakeJob{name: "bad_cron", schedule: "not a cron"})
	assert.Error(t, err)

	assert.Equal(t, []string{"test_job"}, sched.JobNames())
}

func TestScheduler_RunJob(t *testing.T) {
	sched := New(testLogger(t), time.UTC, WithRetry(0, time.Millisecond))

	job := &fakeJob{name: "once", schedule: "0 30 16 * * 1-5"}
	require.NoError(t, sched.AddJob(job))

	require.NoError(t, sched.RunJob("once"))
	waitForRuns(t, sched, "once", 1)

	stats := sched.Stats()["once"]
	assert.Equal(t, 1, stats.TotalRuns)
	assert.Equal(t, 1, stats.SuccessCount)
	assert.NotNil(t, stats.LastSuccess)

	// Unknown job
	assert.Error(t, sched.RunJob("missing"))
}

func TestScheduler_RetriesUntilSuccess(t *testing.T) {
	sched := New(testLogger(t), time.UTC, WithRetry(2, time.Millisecond))

	job := &fakeJob{name: "flaky", schedule: "0 30 16 * * 1-5", failN: 2}
	require.NoError(t, sched.AddJob(job))

	require.NoError(t, sched.RunJob("flaky"))
	waitForRuns(t, sched, "flaky", 1)

	stats := sched.Stats()["flaky"]
	assert.Equal(t, 1, stats.SuccessCount)
	assert.Equal(t, int32(3), job.runs.Load(), "should have retried twice before succeeding")
}

func TestScheduler_RecordsFailure(t *testing.T) {
	sched := New(testLogger(t), time.UTC, WithRetry(1, time.Millisecond))

	job := &fakeJob{name: "doomed", schedule: "0 30 16 * * 1-5", failN: 10}
	require.NoError(t, sched.AddJob(job))

	require.NoError(t, sched.RunJob("doomed"))
	waitForRuns(t, sched, "doomed", 1)

	stats := sched.Stats()["doomed"]
	assert.Equal(t, 1, stats.FailureCount)
	assert.Equal(t, 0.0, stats.SuccessRate)
	assert.NotNil(t, stats.LastFailure)
}

func waitForRuns(t *testing.T, sched *Scheduler, jobName string, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if sched.Stats()[jobName].TotalRuns >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("job %s did not record %d runs in time", jobName, want)
}

func TestJobHistory(t *testing.T) {
	history := &JobHistory{}

	assert.Nil(t, history.Latest())
	assert.Equal(t, 0.0, history.SuccessRate())

	history.AddResult(JobResult{JobName: "j", Success: true})
	history.AddResult(JobResult{JobName: "j", Success: false})
	history.AddResult(JobResult{JobName: "j", Success: true})

	assert.Equal(t, 1, history.FailureCount())
	assert.InDelta(t, 2.0/3.0, history.SuccessRate(), 1e-9)
	assert.True(t, history.Latest().Success)

	// History is capped
	for i := 0; i < 150; i++ {
		history.AddResult(JobResult{JobName: "j", Success: true})
	}
	assert.Len(t, history.Results, historyCap)
}
