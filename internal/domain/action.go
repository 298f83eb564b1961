package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the wire format for action timestamps inside plan files.
const TimeLayout = "2006-01-02 15:04:05"

// DateLayout identifies a plan's calendar date.
const DateLayout = "2006-01-02"

// ActionTime wraps time.Time so plan files carry second-precision
// "YYYY-MM-DD HH:MM:SS" strings in local time.
type ActionTime struct {
	time.Time
}

func NewActionTime(t time.Time) ActionTime {
	return ActionTime{t.Truncate(time.Second)}
}

func (t ActionTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimeLayout) + `"`), nil
}

func (t *ActionTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("parsing action time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Action is one scheduled social-media interaction.
type Action struct {
	Time     ActionTime `json:"time"`
	Type     ActionType `json:"type"`
	Account  string     `json:"account"`
	Link     string     `json:"link"`
	Content  string     `json:"content,omitempty"`
	Executed bool       `json:"executed"`
}

// Date returns the calendar date the action belongs to.
func (a Action) Date() string {
	return a.Time.Format(DateLayout)
}

// Due reports whether a pending action's scheduled time has been reached.
func (a Action) Due(now time.Time) bool {
	return !a.Executed && !a.Time.After(now)
}
