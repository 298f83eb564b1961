package runner

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/avezina/cadence/internal/domain"
	"github.com/avezina/cadence/internal/repository"
	"github.com/avezina/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runnerFixture struct {
	plans *repository.FSPlanStore
	log   *repository.FSExecutionLog
}

func newRunnerFixture(t *testing.T) runnerFixture {
	t.Helper()
	dir := t.TempDir()
	plans, err := repository.NewFSPlanStore(filepath.Join(dir, "plans"))
	require.NoError(t, err)
	log, err := repository.NewFSExecutionLog(filepath.Join(dir, "executed_actions.json"))
	require.NoError(t, err)
	return runnerFixture{plans: plans, log: log}
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// failOnNthAppendLog wraps an ExecutionLog and injects an error on the
// Nth Append call, counted from 1.
type failOnNthAppendLog struct {
	inner  repository.ExecutionLog
	failOn int
	err    error

	count int
}

func (f *failOnNthAppendLog) Append(ctx context.Context, a domain.Action) error {
	f.count++
	if f.count == f.failOn {
		return f.err
	}
	return f.inner.Append(ctx, a)
}

func (f *failOnNthAppendLog) All(ctx context.Context) ([]domain.Action, error) {
	return f.inner.All(ctx)
}

func TestTick_ExecutesDueActions(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()
	now := testutil.At(2025, 4, 12, 12, 0, 0)

	actions := []domain.Action{
		testutil.NewTestAction(domain.ActionCreateComment, testutil.At(2025, 4, 12, 9, 30, 0)),
		testutil.NewTestAction(domain.ActionLikePost, testutil.At(2025, 4, 12, 11, 59, 59)),
		testutil.NewTestAction(domain.ActionPostPost, testutil.At(2025, 4, 12, 18, 30, 0)),
	}
	require.NoError(t, f.plans.Save(ctx, "2025-04-12", actions))

	r := New(f.plans, f.log, nil, WithClock(fixedClock(now)))
	require.NoError(t, r.Tick(ctx))

	loaded, err := f.plans.Load(ctx, "2025-04-12")
	require.NoError(t, err)
	assert.True(t, loaded[0].Executed)
	assert.True(t, loaded[1].Executed)
	assert.False(t, loaded[2].Executed, "future action stays pending")

	entries, err := f.log.All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Executed, "log snapshots carry the executed state")
}

func TestTick_ExactDueTimeExecutes(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()
	at := testutil.At(2025, 4, 12, 10, 15, 30)

	require.NoError(t, f.plans.Save(ctx, "2025-04-12", []domain.Action{
		testutil.NewTestAction(domain.ActionCreateComment, at),
	}))

	r := New(f.plans, f.log, nil, WithClock(fixedClock(at)))
	require.NoError(t, r.Tick(ctx))

	loaded, err := f.plans.Load(ctx, "2025-04-12")
	require.NoError(t, err)
	assert.True(t, loaded[0].Executed)

	entries, err := f.log.All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTick_IdempotentAcrossRestarts(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()
	now := testutil.At(2025, 4, 12, 12, 0, 0)

	require.NoError(t, f.plans.Save(ctx, "2025-04-12", []domain.Action{
		testutil.NewTestAction(domain.ActionCreateComment, testutil.At(2025, 4, 12, 9, 0, 0)),
	}))

	r := New(f.plans, f.log, nil, WithClock(fixedClock(now)))
	require.NoError(t, r.Tick(ctx))

	// A fresh runner over the same store simulates a restart.
	r2 := New(f.plans, f.log, nil, WithClock(fixedClock(now.Add(time.Minute))))
	require.NoError(t, r2.Tick(ctx))
	require.NoError(t, r2.Tick(ctx))

	entries, err := f.log.All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "an executed action must appear exactly once in the log")
}

func TestTick_NoPlanIsNotAnError(t *testing.T) {
	f := newRunnerFixture(t)

	r := New(f.plans, f.log, nil, WithClock(fixedClock(testutil.At(2025, 4, 12, 12, 0, 0))))
	assert.NoError(t, r.Tick(context.Background()))
}

func TestTick_NoChangesSkipsSave(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()
	now := testutil.At(2025, 4, 12, 8, 0, 0)

	require.NoError(t, f.plans.Save(ctx, "2025-04-12", []domain.Action{
		testutil.NewTestAction(domain.ActionCreateComment, testutil.At(2025, 4, 12, 9, 0, 0)),
	}))
	before, err := f.plans.Load(ctx, "2025-04-12")
	require.NoError(t, err)

	r := New(f.plans, f.log, nil, WithClock(fixedClock(now)))
	require.NoError(t, r.Tick(ctx))

	after, err := f.plans.Load(ctx, "2025-04-12")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTick_LogFailureLeavesActionPending(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()
	now := testutil.At(2025, 4, 12, 12, 0, 0)

	require.NoError(t, f.plans.Save(ctx, "2025-04-12", []domain.Action{
		testutil.NewTestAction(domain.ActionCreateComment, testutil.At(2025, 4, 12, 9, 0, 0)),
		testutil.NewTestAction(domain.ActionLikePost, testutil.At(2025, 4, 12, 10, 0, 0)),
	}))

	failing := &failOnNthAppendLog{
		inner:  f.log,
		failOn: 1,
		err:    errors.New("disk full"),
	}

	r := New(f.plans, failing, nil, WithClock(fixedClock(now)))
	require.NoError(t, r.Tick(ctx), "one bad append must not fail the tick")

	loaded, err := f.plans.Load(ctx, "2025-04-12")
	require.NoError(t, err)
	assert.False(t, loaded[0].Executed, "unlogged action stays pending for the next tick")
	assert.True(t, loaded[1].Executed)

	// The next tick retries the skipped action.
	require.NoError(t, r.Tick(ctx))
	loaded, err = f.plans.Load(ctx, "2025-04-12")
	require.NoError(t, err)
	assert.True(t, loaded[0].Executed)

	entries, err := f.log.All(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestTick_ReportsThroughObserver(t *testing.T) {
	f := newRunnerFixture(t)
	ctx := context.Background()
	now := testutil.At(2025, 4, 12, 12, 0, 0)

	require.NoError(t, f.plans.Save(ctx, "2025-04-12", []domain.Action{
		testutil.NewTestAction(domain.ActionCreateComment, testutil.At(2025, 4, 12, 9, 0, 0)),
		testutil.NewTestAction(domain.ActionPostPost, testutil.At(2025, 4, 12, 18, 0, 0)),
	}))

	var events []TickEvent
	obs := observerFunc(func(e TickEvent) { events = append(events, e) })

	r := New(f.plans, f.log, obs, WithClock(fixedClock(now)))
	require.NoError(t, r.Tick(ctx))

	require.Len(t, events, 1)
	assert.Equal(t, "2025-04-12", events[0].Date)
	assert.Equal(t, 2, events[0].Pending)
	assert.Equal(t, 1, events[0].Executed)
	assert.Zero(t, events[0].Failed)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	f := newRunnerFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	r := New(f.plans, f.log, nil,
		WithInterval(10*time.Millisecond),
		WithClock(fixedClock(testutil.At(2025, 4, 12, 12, 0, 0))))

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancellation")
	}
}

type observerFunc func(TickEvent)

func (f observerFunc) OnTickComplete(e TickEvent) { f(e) }
