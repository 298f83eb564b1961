package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avezina/cadence/internal/domain"
)

// FSExecutionLog implements ExecutionLog as a single JSON array file.
// Append rewrites the whole array through the same atomic publish used
// for plans; the log is small enough that this stays cheap.
type FSExecutionLog struct {
	path string
}

// NewFSExecutionLog returns a log backed by the given file path. The file
// is created on first append.
func NewFSExecutionLog(path string) (*FSExecutionLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating log directory: %w", err)
		}
	}
	return &FSExecutionLog{path: path}, nil
}

func (l *FSExecutionLog) Append(ctx context.Context, action domain.Action) error {
	entries, err := l.All(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, action)

	data, err := marshalPlan(entries)
	if err != nil {
		return fmt.Errorf("encoding execution log: %w", err)
	}
	return writeFileAtomic(l.path, data)
}

func (l *FSExecutionLog) All(_ context.Context) ([]domain.Action, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading execution log: %w", err)
	}

	var entries []domain.Action
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding execution log: %w", err)
	}
	return entries, nil
}
