package repository

import (
	"context"
	"errors"

	"github.com/avezina/cadence/internal/domain"
)

// ErrNotFound is returned when a requested plan or action does not exist.
var ErrNotFound = errors.New("not found")

// PlanStore persists one ordered action list per calendar date.
//
// Save must publish atomically: a concurrent reader sees either the
// previous plan or the new one, never a partially written document.
// Load treats a missing or unreadable plan as empty, so callers stay
// resilient to first-run conditions; Exists distinguishes the two.
type PlanStore interface {
	Exists(ctx context.Context, date string) (bool, error)
	Load(ctx context.Context, date string) ([]domain.Action, error)
	Save(ctx context.Context, date string, actions []domain.Action) error
	Delete(ctx context.Context, date string) error
	ListDates(ctx context.Context) ([]string, error)
}

// ExecutionLog records every action at the moment it was marked executed.
// Entries are appended exactly once and never mutated afterward; the
// execution runner is the sole writer.
type ExecutionLog interface {
	Append(ctx context.Context, action domain.Action) error
	All(ctx context.Context) ([]domain.Action, error)
}
