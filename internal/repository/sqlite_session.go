package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/evmartin/brigade/internal/db"
	"github.com/evmartin/brigade/internal/domain"
)

const sessionColumns = `id, title, notes, status, estimated_min, actual_min,
	started_at, finished_at, created_at, updated_at`

const stepColumns = `id, session_id, step_order, title, parallel_group, duration_min,
	equipment, supervision_only, noisy, temperature_c, status, started_at, finished_at`

// SQLiteSessionRepo implements SessionRepo over a DBTX, so the same repo
// works against the database directly or inside a unit-of-work transaction.
type SQLiteSessionRepo struct {
	db db.DBTX
}

func NewSQLiteSessionRepo(dbtx db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: dbtx}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO cook_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Title,
		s.Notes,
		string(s.Status),
		s.EstimatedMinutes,
		nullableIntValue(s.ActualMinutes),
		nullableTimeValue(s.StartedAt),
		nullableTimeValue(s.FinishedAt),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	for i := range s.Steps {
		if err := r.insertStep(ctx, &s.Steps[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) insertStep(ctx context.Context, st *domain.Step) error {
	query := `INSERT INTO session_steps (` + stepColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		st.ID,
		st.SessionID,
		st.Order,
		st.Title,
		st.ParallelGroup,
		st.DurationMinutes,
		joinEquipment(st.Equipment),
		boolToInt(st.SupervisionOnly),
		boolToInt(st.Noisy),
		nullableIntValue(st.TemperatureC),
		string(st.Status),
		nullableTimeValue(st.StartedAt),
		nullableTimeValue(st.FinishedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting step %d: %w", st.Order, err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM cook_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := r.scanSession(row)
	if err != nil {
		return nil, err
	}

	steps, err := r.loadSteps(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Steps = steps
	return s, nil
}

func (r *SQLiteSessionRepo) List(ctx context.Context, includeFinished bool) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM cook_sessions`
	if !includeFinished {
		query += ` WHERE status IN ('planned','in_progress')`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		s, err := r.scanSessionRow(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	for _, s := range sessions {
		steps, err := r.loadSteps(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Steps = steps
	}
	return sessions, nil
}

// Update rewrites the session row and every step row. Sessions are small
// (a handful of steps), so a full rewrite beats per-field dirty tracking.
func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	query := `UPDATE cook_sessions SET
		title = ?, notes = ?, status = ?, estimated_min = ?, actual_min = ?,
		started_at = ?, finished_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Title,
		s.Notes,
		string(s.Status),
		s.EstimatedMinutes,
		nullableIntValue(s.ActualMinutes),
		nullableTimeValue(s.StartedAt),
		nullableTimeValue(s.FinishedAt),
		s.UpdatedAt.Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session %s: %w", s.ID, ErrNotFound)
	}

	for i := range s.Steps {
		if err := r.updateStep(ctx, &s.Steps[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) updateStep(ctx context.Context, st *domain.Step) error {
	query := `UPDATE session_steps SET
		title = ?, parallel_group = ?, duration_min = ?, equipment = ?,
		supervision_only = ?, noisy = ?, temperature_c = ?, status = ?,
		started_at = ?, finished_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		st.Title,
		st.ParallelGroup,
		st.DurationMinutes,
		joinEquipment(st.Equipment),
		boolToInt(st.SupervisionOnly),
		boolToInt(st.Noisy),
		nullableIntValue(st.TemperatureC),
		string(st.Status),
		nullableTimeValue(st.StartedAt),
		nullableTimeValue(st.FinishedAt),
		st.ID,
	)
	if err != nil {
		return fmt.Errorf("updating step %d: %w", st.Order, err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	// Step rows go with the session via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM cook_sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) loadSteps(ctx context.Context, sessionID string) ([]domain.Step, error) {
	query := `SELECT ` + stepColumns + ` FROM session_steps
		WHERE session_id = ? ORDER BY step_order`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading steps: %w", err)
	}
	defer rows.Close()

	var steps []domain.Step
	for rows.Next() {
		var st domain.Step
		var equipment, status string
		var supervision, noisy int
		var tempC sql.NullInt64
		var startedAt, finishedAt sql.NullString

		err := rows.Scan(
			&st.ID, &st.SessionID, &st.Order, &st.Title, &st.ParallelGroup,
			&st.DurationMinutes, &equipment, &supervision, &noisy, &tempC,
			&status, &startedAt, &finishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning step row: %w", err)
		}

		st.Equipment = splitEquipment(equipment)
		st.SupervisionOnly = intToBool(supervision)
		st.Noisy = intToBool(noisy)
		if tempC.Valid {
			v := int(tempC.Int64)
			st.TemperatureC = &v
		}
		st.Status = domain.StepStatus(status)
		st.StartedAt = parseNullableTime(startedAt)
		st.FinishedAt = parseNullableTime(finishedAt)

		steps = append(steps, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating steps: %w", err)
	}
	return steps, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	s, err := scanSessionFields(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session: %w", ErrNotFound)
	}
	return s, err
}

func (r *SQLiteSessionRepo) scanSessionRow(rows *sql.Rows) (*domain.Session, error) {
	return scanSessionFields(rows)
}

func scanSessionFields(sc rowScanner) (*domain.Session, error) {
	var s domain.Session
	var status, createdAtStr, updatedAtStr string
	var actualMin sql.NullInt64
	var startedAt, finishedAt sql.NullString

	err := sc.Scan(
		&s.ID, &s.Title, &s.Notes, &status, &s.EstimatedMinutes, &actualMin,
		&startedAt, &finishedAt, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	s.Status = domain.SessionStatus(status)
	if actualMin.Valid {
		v := int(actualMin.Int64)
		s.ActualMinutes = &v
	}
	s.StartedAt = parseNullableTime(startedAt)
	s.FinishedAt = parseNullableTime(finishedAt)

	if s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &s, nil
}
