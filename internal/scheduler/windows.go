package scheduler

import "github.com/avezina/cadence/internal/domain"

// DefaultWindow covers waking hours with wide, irregular spacing.
var DefaultWindow = Window{
	StartHour:     9,
	EndHour:       21,
	MinGapMinutes: 25,
	MaxGapMinutes: 95,
}

// PostWindow keeps feed posts in the evening engagement band, spaced
// tighter because the band is only three hours wide.
var PostWindow = Window{
	StartHour:     18,
	EndHour:       21,
	MinGapMinutes: 20,
	MaxGapMinutes: 45,
}

// WindowFor returns the allocation window for an action type.
func WindowFor(t domain.ActionType) Window {
	if t == domain.ActionPostPost {
		return PostWindow
	}
	return DefaultWindow
}
