package contract

import (
	"fmt"
	"strconv"
	"time"

	"github.com/avezina/cadence/internal/domain"
)

// GenerateRequest asks for a new daily plan: a calendar date plus the
// requested number of actions per type.
type GenerateRequest struct {
	Date   string
	Counts map[domain.ActionType]int
}

// NewGenerateRequest builds a request from raw string counts, as supplied
// by a CLI flag or form. Unknown types, non-integer values, and negative
// counts are treated as zero rather than rejected.
func NewGenerateRequest(date string, rawCounts map[string]string) GenerateRequest {
	req := GenerateRequest{Date: date, Counts: make(map[domain.ActionType]int)}
	for name, raw := range rawCounts {
		if !domain.ValidActionTypes[name] {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			continue
		}
		req.Counts[domain.ActionType(name)] = n
	}
	return req
}

// Validate checks the date is well-formed. Counts are never invalid by
// construction; zero everywhere is legal and simply yields no plan.
func (r GenerateRequest) Validate() error {
	if _, err := time.ParseInLocation(domain.DateLayout, r.Date, time.Local); err != nil {
		return fmt.Errorf("invalid plan date %q: %w", r.Date, err)
	}
	return nil
}

// Total returns the number of actions requested across all types.
func (r GenerateRequest) Total() int {
	total := 0
	for _, n := range r.Counts {
		if n > 0 {
			total += n
		}
	}
	return total
}

// GenerateResult reports what a generation run did.
type GenerateResult struct {
	Date string

	// Created is the number of actions persisted. Zero with
	// AlreadyExists false means no plan file was written.
	Created int

	// AlreadyExists is set when a plan for the date was already on
	// disk and the run was a no-op.
	AlreadyExists bool

	// Skipped counts requested actions the allocator returned no slot
	// for. Allocation pads short windows up to the requested count, so
	// this stays zero unless a window cannot fit even its first slot.
	Skipped int
}
