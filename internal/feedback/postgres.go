package feedback

import (
	"context"
	"database/sql"
	"errors"

	"aureon.ai/internal/ids"
)

var _ Store = (*PGStore)(nil)

const feedbackColumns = `id, name, company_name, job_title, rating, comment, is_approved, submitted_at`

// PGStore implements Store using PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, fb *Feedback) error {
	if fb.ID == "" {
		fb.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into feedback(id, name, company_name, job_title, rating, comment, is_approved)
		 values($1,$2,$3,$4,$5,$6,$7)`,
		fb.ID, fb.Name, fb.CompanyName, fb.JobTitle, fb.Rating, fb.Comment, fb.Approved,
	)
	return err
}

func (s *PGStore) Find(ctx context.Context, id string) (*Feedback, error) {
	return scanOne(s.db.QueryRowContext(ctx,
		`select `+feedbackColumns+` from feedback where id=$1`, id))
}

func (s *PGStore) List(ctx context.Context) ([]*Feedback, error) {
	return s.queryMany(ctx, `select `+feedbackColumns+` from feedback order by submitted_at desc`)
}

func (s *PGStore) ListApproved(ctx context.Context) ([]*Feedback, error) {
	return s.queryMany(ctx,
		`select `+feedbackColumns+` from feedback where is_approved order by submitted_at desc`)
}

func (s *PGStore) Recent(ctx context.Context, limit int) ([]*Feedback, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.queryMany(ctx,
		`select `+feedbackColumns+` from feedback order by submitted_at desc limit $1`, limit)
}

func (s *PGStore) ListByName(ctx context.Context, name string) ([]*Feedback, error) {
	return s.queryMany(ctx,
		`select `+feedbackColumns+` from feedback where name=$1 order by submitted_at desc`, name)
}

func (s *PGStore) ListByCompany(ctx context.Context, company string) ([]*Feedback, error) {
	return s.queryMany(ctx,
		`select `+feedbackColumns+` from feedback where company_name=$1 order by submitted_at desc`, company)
}

func (s *PGStore) Update(ctx context.Context, fb *Feedback) error {
	res, err := s.db.ExecContext(ctx,
		`update feedback set name=$2, company_name=$3, job_title=$4, rating=$5, comment=$6, is_approved=$7
		 where id=$1`,
		fb.ID, fb.Name, fb.CompanyName, fb.JobTitle, fb.Rating, fb.Comment, fb.Approved,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) Delete(ctx context.Context, id string) (*Feedback, error) {
	return scanOne(s.db.QueryRowContext(ctx,
		`delete from feedback where id=$1 returning `+feedbackColumns, id))
}

func (s *PGStore) queryMany(ctx context.Context, query string, args ...any) ([]*Feedback, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Feedback
	for rows.Next() {
		var fb Feedback
		if err := rows.Scan(&fb.ID, &fb.Name, &fb.CompanyName, &fb.JobTitle, &fb.Rating, &fb.Comment, &fb.Approved, &fb.SubmittedAt); err != nil {
			return nil, err
		}
		res = append(res, &fb)
	}
	return res, rows.Err()
}

func scanOne(row *sql.Row) (*Feedback, error) {
	var fb Feedback
	if err := row.Scan(&fb.ID, &fb.Name, &fb.CompanyName, &fb.JobTitle, &fb.Rating, &fb.Comment, &fb.Approved, &fb.SubmittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &fb, nil
}
