package builder

import (
	"context"
	"math/rand"
	"time"

	"github.com/avezina/cadence/internal/domain"
	"github.com/avezina/cadence/internal/llm"
	"github.com/avezina/cadence/internal/scheduler"
)

// MaxContentLen is the hard ceiling on generated content. Anything longer
// is truncated with an ellipsis so verbose model output cannot overflow a
// UI built for short captions.
const MaxContentLen = 220

const (
	secondsJitterMin = 5
	secondsJitterMax = 55
)

// Builder composes one Action per (type, slot) pair, filling in generated
// text and an account handle from the collaborator.
type Builder struct {
	client llm.Client
	rng    *rand.Rand
}

// New creates a Builder. The client may be nil, in which case every
// action gets the fallback handle and no content.
func New(client llm.Client, rng *rand.Rand) *Builder {
	return &Builder{client: client, rng: rng}
}

// Build assembles an action of the given type on the given calendar day,
// at the slot's hour and minute plus a few seconds of jitter. Collaborator
// failures never propagate: a failed handle becomes FallbackHandle and
// failed or empty content is omitted from the action entirely.
func (b *Builder) Build(ctx context.Context, t domain.ActionType, day time.Time, slot scheduler.Slot) domain.Action {
	seconds := secondsJitterMin + b.rng.Intn(secondsJitterMax-secondsJitterMin+1)
	at := time.Date(day.Year(), day.Month(), day.Day(), slot.Hour, slot.Minute, seconds, 0, time.Local)

	action := domain.Action{
		Time:    domain.NewActionTime(at),
		Type:    t,
		Account: b.handle(ctx),
		Link:    DefaultLink,
	}

	if t.RequiresContent() {
		action.Content = b.content(ctx, t)
	}

	return action
}

func (b *Builder) handle(ctx context.Context) string {
	if b.client == nil {
		return FallbackHandle
	}
	resp, err := b.client.Generate(ctx, llm.GenerateRequest{
		Task:     llm.TaskHandle,
		Messages: llm.User(handlePrompt()),
	})
	if err != nil || resp.Text == "" {
		return FallbackHandle
	}
	return resp.Text
}

func (b *Builder) content(ctx context.Context, t domain.ActionType) string {
	if b.client == nil {
		return ""
	}
	resp, err := b.client.Generate(ctx, llm.GenerateRequest{
		Task:     llm.TaskContent,
		Messages: llm.User(contentPrompt(t)),
	})
	if err != nil || resp.Text == "" {
		return ""
	}
	return Truncate(resp.Text, MaxContentLen)
}

// Truncate clips s to max runes, appending an ellipsis when it was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
