package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/avezina/cadence/internal/domain"
)

const (
	planFilePrefix = "daily_plan_"
	planFileSuffix = ".json"
)

// FSPlanStore implements PlanStore with one JSON document per date under
// a plans directory, named daily_plan_<YYYY-MM-DD>.json. This file layout
// is the external contract; other tools read these files directly.
type FSPlanStore struct {
	dir string
}

// NewFSPlanStore creates the plans directory if needed and returns a
// store over it.
func NewFSPlanStore(dir string) (*FSPlanStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating plans directory: %w", err)
	}
	return &FSPlanStore{dir: dir}, nil
}

func (s *FSPlanStore) planPath(date string) string {
	return filepath.Join(s.dir, planFilePrefix+date+planFileSuffix)
}

func (s *FSPlanStore) Exists(_ context.Context, date string) (bool, error) {
	_, err := os.Stat(s.planPath(date))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking plan file: %w", err)
}

func (s *FSPlanStore) Load(_ context.Context, date string) ([]domain.Action, error) {
	data, err := os.ReadFile(s.planPath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var actions []domain.Action
	if err := json.Unmarshal(data, &actions); err != nil {
		// A corrupt plan reads as empty; the next save replaces it.
		return nil, nil
	}
	return actions, nil
}

func (s *FSPlanStore) Save(_ context.Context, date string, actions []domain.Action) error {
	if actions == nil {
		actions = []domain.Action{}
	}
	data, err := marshalPlan(actions)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return writeFileAtomic(s.planPath(date), data)
}

func (s *FSPlanStore) Delete(_ context.Context, date string) error {
	err := os.Remove(s.planPath(date))
	if os.IsNotExist(err) {
		return fmt.Errorf("plan %s: %w", date, ErrNotFound)
	}
	return err
}

func (s *FSPlanStore) ListDates(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing plans directory: %w", err)
	}

	var dates []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, planFilePrefix) || !strings.HasSuffix(name, planFileSuffix) {
			continue
		}
		dates = append(dates, strings.TrimSuffix(strings.TrimPrefix(name, planFilePrefix), planFileSuffix))
	}
	sort.Strings(dates)
	return dates, nil
}

// marshalPlan renders a plan with stable 2-space indentation and non-ASCII
// characters left unescaped, so generated text stays readable in the file.
func marshalPlan(actions []domain.Action) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(actions); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes to a temp file in the same directory and renames
// it over the target, so a reader never observes a half-written document.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publishing %s: %w", filepath.Base(path), err)
	}
	return nil
}
