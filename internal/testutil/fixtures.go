package testutil

import (
	"time"

	"github.com/avezina/cadence/internal/domain"
)

// Action options
type ActionOption func(*domain.Action)

func WithContent(content string) ActionOption {
	return func(a *domain.Action) {
		a.Content = content
	}
}

func WithAccount(account string) ActionOption {
	return func(a *domain.Action) {
		a.Account = account
	}
}

func WithExecuted(executed bool) ActionOption {
	return func(a *domain.Action) {
		a.Executed = executed
	}
}

// NewTestAction builds a pending action of the given type at the given
// time with fixture defaults for the remaining fields.
func NewTestAction(t domain.ActionType, at time.Time, opts ...ActionOption) domain.Action {
	a := domain.Action{
		Time:    domain.NewActionTime(at),
		Type:    t,
		Account: "@testaccount",
		Link:    "https://instagram.com/example",
	}
	if t.RequiresContent() {
		a.Content = "fixture content"
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// At is shorthand for a local-time timestamp on a given date.
func At(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local)
}
