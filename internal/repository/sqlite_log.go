package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avezina/cadence/internal/domain"
	"github.com/google/uuid"
)

// SQLiteExecutionLog implements ExecutionLog over a SQLite database.
// The seq column preserves append order independently of action times.
type SQLiteExecutionLog struct {
	db *sql.DB
}

// NewSQLiteExecutionLog creates a new SQLiteExecutionLog.
func NewSQLiteExecutionLog(db *sql.DB) *SQLiteExecutionLog {
	return &SQLiteExecutionLog{db: db}
}

func (l *SQLiteExecutionLog) Append(ctx context.Context, a domain.Action) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO executed_actions (id, logged_at, seq, action_time, type, account, link, content, executed)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM executed_actions), ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		time.Now().UTC().Format(time.RFC3339),
		a.Time.Format(domain.TimeLayout),
		string(a.Type),
		a.Account,
		a.Link,
		contentToValue(a.Content),
		boolToInt(a.Executed),
	)
	if err != nil {
		return fmt.Errorf("appending execution log entry: %w", err)
	}
	return nil
}

func (l *SQLiteExecutionLog) All(ctx context.Context) ([]domain.Action, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT action_time, type, account, link, content, executed
		FROM executed_actions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("reading execution log: %w", err)
	}
	defer rows.Close()
	return scanActions(rows)
}

var _ ExecutionLog = (*SQLiteExecutionLog)(nil)
var _ PlanStore = (*SQLitePlanStore)(nil)
