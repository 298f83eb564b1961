package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avezina/cadence/internal/domain"
	"github.com/google/uuid"
)

// SQLitePlanStore implements PlanStore over a SQLite database, as an
// alternative to the JSON-file contract. Each date gets a plans row plus
// the ordered set of plan_actions rows sharing its plan_date; the plans
// row is what existence means, so a plan emptied of actions is still
// distinct from no plan at all. Save replaces the whole set in one
// transaction, giving the same all-or-nothing publish as the atomic
// file rename.
type SQLitePlanStore struct {
	db *sql.DB
}

// NewSQLitePlanStore creates a new SQLitePlanStore.
func NewSQLitePlanStore(db *sql.DB) *SQLitePlanStore {
	return &SQLitePlanStore{db: db}
}

func (s *SQLitePlanStore) Exists(ctx context.Context, date string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM plans WHERE plan_date = ?`, date).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking plan existence: %w", err)
	}
	return true, nil
}

func (s *SQLitePlanStore) Load(ctx context.Context, date string) ([]domain.Action, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT action_time, type, account, link, content, executed
		FROM plan_actions WHERE plan_date = ? ORDER BY position`, date)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	defer rows.Close()
	return scanActions(rows)
}

func (s *SQLitePlanStore) Save(ctx context.Context, date string, actions []domain.Action) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning plan save: %w", err)
	}
	defer tx.Rollback()

	// The plans row records existence independently of the action
	// rows, so saving an emptied plan does not make the date vanish.
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO plans (plan_date, created_at) VALUES (?, ?)
		ON CONFLICT(plan_date) DO NOTHING`,
		date, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("recording plan date: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM plan_actions WHERE plan_date = ?`, date); err != nil {
		return fmt.Errorf("clearing previous plan: %w", err)
	}

	for i, a := range actions {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO plan_actions (id, plan_date, position, action_time, type, account, link, content, executed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(),
			date,
			i,
			a.Time.Format(domain.TimeLayout),
			string(a.Type),
			a.Account,
			a.Link,
			contentToValue(a.Content),
			boolToInt(a.Executed),
		)
		if err != nil {
			return fmt.Errorf("inserting action %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing plan save: %w", err)
	}
	return nil
}

func (s *SQLitePlanStore) Delete(ctx context.Context, date string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning plan delete: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM plans WHERE plan_date = ?`, date)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("plan %s: %w", date, ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM plan_actions WHERE plan_date = ?`, date); err != nil {
		return fmt.Errorf("deleting plan actions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing plan delete: %w", err)
	}
	return nil
}

func (s *SQLitePlanStore) ListDates(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT plan_date FROM plans ORDER BY plan_date`)
	if err != nil {
		return nil, fmt.Errorf("listing plan dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning plan date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// scanActions reads action rows in the column order
// (action_time, type, account, link, content, executed).
func scanActions(rows *sql.Rows) ([]domain.Action, error) {
	var actions []domain.Action
	for rows.Next() {
		var a domain.Action
		var timeStr string
		var content sql.NullString
		var executed int

		if err := rows.Scan(&timeStr, &a.Type, &a.Account, &a.Link, &content, &executed); err != nil {
			return nil, fmt.Errorf("scanning action: %w", err)
		}

		t, err := time.ParseInLocation(domain.TimeLayout, timeStr, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing stored action time: %w", err)
		}
		a.Time = domain.NewActionTime(t)
		a.Content = content.String
		a.Executed = intToBool(executed)
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
