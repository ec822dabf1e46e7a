package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
)

// SQLiteCurriculumRepo implements CurriculumRepo using a SQLite database.
type SQLiteCurriculumRepo struct {
	db db.DBTX
}

// NewSQLiteCurriculumRepo creates a new SQLiteCurriculumRepo.
func NewSQLiteCurriculumRepo(conn db.DBTX) *SQLiteCurriculumRepo {
	return &SQLiteCurriculumRepo{db: conn}
}

const curriculumColumns = `id, topic, display_topic, pace, depth, styles, source, is_active, created_at, updated_at`

func (r *SQLiteCurriculumRepo) Create(ctx context.Context, c *domain.Curriculum, active bool) error {
	styles, err := encodeJSON(c.Preferences.Styles)
	if err != nil {
		return fmt.Errorf("encoding styles: %w", err)
	}
	query := `INSERT INTO curricula (` + curriculumColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		c.ID,
		c.Preferences.Topic,
		c.DisplayTopic,
		string(c.Preferences.Pace),
		string(c.Preferences.Depth),
		styles,
		c.Source,
		boolToInt(active),
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting curriculum: %w", err)
	}

	seqByDay := make(map[int]int, len(c.CompletedDays))
	for i, d := range c.CompletedDays {
		seqByDay[d] = i + 1
	}
	for _, d := range c.Days {
		if err := r.insertDay(ctx, c.ID, d, seqByDay[d.DayNumber]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteCurriculumRepo) insertDay(ctx context.Context, curriculumID string, d domain.DayPlan, seq int) error {
	objectives, err := encodeJSON(d.Objectives)
	if err != nil {
		return fmt.Errorf("encoding objectives for day %d: %w", d.DayNumber, err)
	}
	resources, err := encodeJSON(d.Resources)
	if err != nil {
		return fmt.Errorf("encoding resources for day %d: %w", d.DayNumber, err)
	}
	var completedAt interface{}
	if d.Completed {
		completedAt = nowUTC()
	} else {
		seq = 0
	}
	query := `INSERT INTO curriculum_days
		(curriculum_id, day_number, title, objectives, resources, assignment, completed, completed_seq, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		curriculumID,
		d.DayNumber,
		d.Title,
		objectives,
		resources,
		d.Assignment,
		boolToInt(d.Completed),
		seq,
		completedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting day %d: %w", d.DayNumber, err)
	}
	return nil
}

func (r *SQLiteCurriculumRepo) GetByID(ctx context.Context, id string) (*domain.Curriculum, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+curriculumColumns+` FROM curricula WHERE id = ?`, id)
	c, err := scanCurriculum(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCurriculumRepo) GetActive(ctx context.Context) (*domain.Curriculum, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+curriculumColumns+` FROM curricula WHERE is_active = 1`)
	c, err := scanCurriculum(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCurriculumRepo) List(ctx context.Context, limit int) ([]CurriculumSummary, error) {
	query := `SELECT c.id, c.topic, c.display_topic, c.pace, c.depth, c.source, c.is_active, c.created_at,
			COUNT(d.day_number), COALESCE(SUM(d.completed), 0)
		FROM curricula c
		LEFT JOIN curriculum_days d ON d.curriculum_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC, c.rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing curricula: %w", err)
	}
	defer rows.Close()

	var out []CurriculumSummary
	for rows.Next() {
		var s CurriculumSummary
		var pace, depth string
		var active int
		if err := rows.Scan(&s.ID, &s.Topic, &s.DisplayTopic, &pace, &depth, &s.Source, &active, &s.CreatedAt,
			&s.TotalDays, &s.CompletedDays); err != nil {
			return nil, fmt.Errorf("scanning curriculum summary: %w", err)
		}
		s.Pace = domain.Pace(pace)
		s.Depth = domain.Depth(depth)
		s.Active = intToBool(active)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating curricula: %w", err)
	}
	return out, nil
}

func (r *SQLiteCurriculumRepo) Deactivate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE curricula SET is_active = 0, updated_at = ? WHERE is_active = 1`, nowUTC())
	if err != nil {
		return fmt.Errorf("deactivating curricula: %w", err)
	}
	return nil
}

func (r *SQLiteCurriculumRepo) SetDayCompleted(ctx context.Context, id string, day int, completed bool) error {
	var (
		res sql.Result
		err error
	)
	if completed {
		res, err = r.db.ExecContext(ctx,
			`UPDATE curriculum_days
			 SET completed = 1,
			     completed_seq = (SELECT COALESCE(MAX(completed_seq), 0) + 1 FROM curriculum_days WHERE curriculum_id = ?),
			     completed_at = ?
			 WHERE curriculum_id = ? AND day_number = ?`, id, nowUTC(), id, day)
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE curriculum_days SET completed = 0, completed_seq = 0, completed_at = NULL
			 WHERE curriculum_id = ? AND day_number = ?`, id, day)
	}
	if err != nil {
		return fmt.Errorf("updating day %d: %w", day, err)
	}
	if err := requireAffected(res, fmt.Sprintf("curriculum %s day %d", id, day)); err != nil {
		return err
	}
	return r.touch(ctx, id)
}

func (r *SQLiteCurriculumRepo) ResetProgress(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE curriculum_days SET completed = 0, completed_seq = 0, completed_at = NULL WHERE curriculum_id = ?`, id)
	if err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}
	return r.touch(ctx, id)
}

func (r *SQLiteCurriculumRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM curricula WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting curriculum: %w", err)
	}
	return requireAffected(res, "curriculum "+id)
}

func (r *SQLiteCurriculumRepo) touch(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE curricula SET updated_at = ? WHERE id = ?`, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("touching curriculum: %w", err)
	}
	return requireAffected(res, "curriculum "+id)
}

func (r *SQLiteCurriculumRepo) loadDays(ctx context.Context, c *domain.Curriculum) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day_number, title, objectives, resources, assignment, completed, completed_seq
		 FROM curriculum_days WHERE curriculum_id = ? ORDER BY day_number`, c.ID)
	if err != nil {
		return fmt.Errorf("listing days: %w", err)
	}
	defer rows.Close()

	type completion struct{ day, seq int }
	var done []completion
	for rows.Next() {
		var d domain.DayPlan
		var objectives, resources string
		var completed, seq int
		if err := rows.Scan(&d.DayNumber, &d.Title, &objectives, &resources, &d.Assignment, &completed, &seq); err != nil {
			return fmt.Errorf("scanning day: %w", err)
		}
		if d.Objectives, err = decodeJSON[string](objectives, "objectives"); err != nil {
			return err
		}
		if d.Resources, err = decodeJSON[domain.Resource](resources, "resources"); err != nil {
			return err
		}
		d.Completed = intToBool(completed)
		if d.Completed {
			done = append(done, completion{day: d.DayNumber, seq: seq})
		}
		c.Days = append(c.Days, d)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating days: %w", err)
	}

	// CompletedDays keeps the order days were ticked off in.
	sort.SliceStable(done, func(i, j int) bool { return done[i].seq < done[j].seq })
	c.CompletedDays = make([]int, 0, len(done))
	for _, d := range done {
		c.CompletedDays = append(c.CompletedDays, d.day)
	}
	return nil
}

func scanCurriculum(row *sql.Row) (*domain.Curriculum, error) {
	var c domain.Curriculum
	var pace, depth, styles, createdAt, updatedAt string
	var active int
	err := row.Scan(&c.ID, &c.Preferences.Topic, &c.DisplayTopic, &pace, &depth, &styles, &c.Source, &active,
		&createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("curriculum: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning curriculum: %w", err)
	}
	c.Preferences.Pace = domain.Pace(pace)
	c.Preferences.Depth = domain.Depth(depth)
	if c.Preferences.Styles, err = decodeJSON[domain.Style](styles, "styles"); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
