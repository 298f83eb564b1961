package runner

import (
	"fmt"
	"io"
	"time"
)

// TickEvent records the outcome of one poll cycle.
type TickEvent struct {
	Date     string
	Pending  int
	Executed int
	Failed   int
	Error    string
}

// Observer receives tick outcomes for logging.
type Observer interface {
	OnTickComplete(event TickEvent)
}

// LogObserver writes tick events to an io.Writer, one line per tick.
type LogObserver struct {
	w io.Writer

	// quiet suppresses ticks where nothing happened, which is most of
	// them over a long-running process.
	quiet bool
}

// NewLogObserver creates an Observer that logs events to w. When quiet is
// set, idle ticks are not reported.
func NewLogObserver(w io.Writer, quiet bool) *LogObserver {
	return &LogObserver{w: w, quiet: quiet}
}

func (o *LogObserver) OnTickComplete(event TickEvent) {
	if o.quiet && event.Executed == 0 && event.Failed == 0 && event.Error == "" {
		return
	}
	ts := time.Now().UTC().Format(time.RFC3339)
	if event.Error != "" {
		fmt.Fprintf(o.w, "[%s] tick date=%s status=err:%s\n", ts, event.Date, event.Error)
		return
	}
	fmt.Fprintf(o.w, "[%s] tick date=%s pending=%d executed=%d failed=%d\n",
		ts, event.Date, event.Pending, event.Executed, event.Failed)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnTickComplete(TickEvent) {}
