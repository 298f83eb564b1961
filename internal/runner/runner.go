package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/avezina/cadence/internal/domain"
	"github.com/avezina/cadence/internal/repository"
)

// DefaultInterval is how long the runner sleeps between polls. Execution
// latency of up to one interval is acceptable for this domain; polling
// over persisted flags also makes restarts free, since no in-memory
// timers need rebuilding.
const DefaultInterval = 60 * time.Second

// Runner is the execution scheduler: a polling loop that flips due
// pending actions to executed and mirrors each one into the execution
// log. It is the sole writer of executed flags on the polling path.
type Runner struct {
	plans    repository.PlanStore
	log      repository.ExecutionLog
	interval time.Duration
	observer Observer
	now      func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithInterval overrides the polling interval.
func WithInterval(d time.Duration) Option {
	return func(r *Runner) { r.interval = d }
}

// WithClock overrides the wall-clock source. Tests use this to pin time.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// New creates a Runner over the given store and log.
func New(plans repository.PlanStore, log repository.ExecutionLog, observer Observer, opts ...Option) *Runner {
	if observer == nil {
		observer = NoopObserver{}
	}
	r := &Runner{
		plans:    plans,
		log:      log,
		interval: DefaultInterval,
		observer: observer,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run polls until ctx is cancelled. A failing tick is reported through
// the observer and the loop keeps going; only cancellation stops it.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := r.Tick(ctx); err != nil {
			r.observer.OnTickComplete(TickEvent{
				Date:  r.now().Format(domain.DateLayout),
				Error: err.Error(),
			})
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.interval):
		}
	}
}

// Tick runs one poll cycle: load today's plan, execute every due pending
// action, and persist the plan if anything changed. A failure to log one
// action skips that action and leaves it pending for the next tick; the
// rest of the cycle proceeds.
func (r *Runner) Tick(ctx context.Context) error {
	now := r.now()
	date := now.Format(domain.DateLayout)

	actions, err := r.plans.Load(ctx, date)
	if err != nil {
		return fmt.Errorf("loading plan for %s: %w", date, err)
	}

	event := TickEvent{Date: date, Pending: countPending(actions)}
	changed := false

	for i := range actions {
		if !actions[i].Due(now) {
			continue
		}

		// Log first, then flip: if the append fails the action stays
		// pending and is retried next tick, so the log never misses
		// an executed action.
		actions[i].Executed = true
		if err := r.log.Append(ctx, actions[i]); err != nil {
			actions[i].Executed = false
			event.Failed++
			continue
		}
		event.Executed++
		changed = true
	}

	if changed {
		if err := r.plans.Save(ctx, date, actions); err != nil {
			return fmt.Errorf("persisting plan for %s: %w", date, err)
		}
	}

	r.observer.OnTickComplete(event)
	return nil
}

func countPending(actions []domain.Action) int {
	n := 0
	for _, a := range actions {
		if !a.Executed {
			n++
		}
	}
	return n
}
