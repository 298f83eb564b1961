package testutil

import (
	"context"
	"sync/atomic"

	"github.com/avezina/cadence/internal/llm"
)

// FakeCollaborator is a scripted llm.Client. Each task type answers with
// its configured text, or its configured error. The zero value fails
// every call with llm.ErrUnavailable.
type FakeCollaborator struct {
	Responses map[llm.TaskType]string
	Errs      map[llm.TaskType]error

	calls atomic.Int32
}

func (f *FakeCollaborator) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.calls.Add(1)
	if err, ok := f.Errs[req.Task]; ok {
		return nil, err
	}
	if text, ok := f.Responses[req.Task]; ok {
		return &llm.GenerateResponse{Text: text, Model: "fake"}, nil
	}
	return nil, llm.ErrUnavailable
}

func (f *FakeCollaborator) Available(context.Context) bool {
	return true
}

// Calls returns how many Generate calls were made.
func (f *FakeCollaborator) Calls() int {
	return int(f.calls.Load())
}

var _ llm.Client = (*FakeCollaborator)(nil)
