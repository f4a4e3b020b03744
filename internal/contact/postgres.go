package contact

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"aureon.ai/internal/ids"
)

var _ Store = (*PGStore)(nil)

const contactColumns = `id, name, email, phone, company_name, country, job_title, messages, created_at`

// PGStore implements Store using PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, req *Request) error {
	if req.ID == "" {
		req.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into contacts(id, name, email, phone, company_name, country, job_title, messages)
		 values($1,$2,$3,$4,$5,$6,$7,$8)`,
		req.ID, req.Name, req.Email, req.Phone, req.CompanyName, req.Country, req.JobTitle, req.Messages,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *PGStore) Find(ctx context.Context, id string) (*Request, error) {
	return scanOne(s.db.QueryRowContext(ctx,
		`select `+contactColumns+` from contacts where id=$1`, id))
}

func (s *PGStore) FindByEmail(ctx context.Context, email string) (*Request, error) {
	return scanOne(s.db.QueryRowContext(ctx,
		`select `+contactColumns+` from contacts where email=$1`, email))
}

func (s *PGStore) FindByPhone(ctx context.Context, phone string) (*Request, error) {
	return scanOne(s.db.QueryRowContext(ctx,
		`select `+contactColumns+` from contacts where phone=$1`, phone))
}

func (s *PGStore) List(ctx context.Context) ([]*Request, error) {
	return s.queryMany(ctx, `select `+contactColumns+` from contacts order by created_at desc`)
}

func (s *PGStore) ListByField(ctx context.Context, field Field, value string) ([]*Request, error) {
	switch field {
	case FieldName, FieldCompany, FieldCountry, FieldJob:
	default:
		return nil, errors.New("contact: unknown filter field")
	}
	return s.queryMany(ctx,
		`select `+contactColumns+` from contacts where `+string(field)+`=$1 order by created_at desc`, value)
}

func (s *PGStore) Search(ctx context.Context, query string) ([]*Request, error) {
	pattern := "%" + query + "%"
	return s.queryMany(ctx,
		`select `+contactColumns+` from contacts
		 where name ilike $1 or email ilike $1 or company_name ilike $1 or country ilike $1 or job_title ilike $1
		 order by created_at desc`, pattern)
}

func (s *PGStore) Recent(ctx context.Context, limit int) ([]*Request, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryMany(ctx,
		`select `+contactColumns+` from contacts order by created_at desc limit $1`, limit)
}

func (s *PGStore) Update(ctx context.Context, req *Request) error {
	res, err := s.db.ExecContext(ctx,
		`update contacts set name=$2, email=$3, phone=$4, company_name=$5, country=$6, job_title=$7, messages=$8
		 where id=$1`,
		req.ID, req.Name, req.Email, req.Phone, req.CompanyName, req.Country, req.JobTitle, req.Messages,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return requireRow(res)
}

func (s *PGStore) Delete(ctx context.Context, id string) (*Request, error) {
	return scanOne(s.db.QueryRowContext(ctx,
		`delete from contacts where id=$1 returning `+contactColumns, id))
}

func (s *PGStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `select count(*) from contacts`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *PGStore) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByCountry: make(map[string]int)}
	if err := s.db.QueryRowContext(ctx, `select count(*) from contacts`).Scan(&stats.Total); err != nil {
		return nil, err
	}
	weekAgo := time.Now().UTC().Add(-7 * 24 * time.Hour)
	if err := s.db.QueryRowContext(ctx,
		`select count(*) from contacts where created_at > $1`, weekAgo).Scan(&stats.LastWeek); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `select country, count(*) from contacts group by country`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			country string
			count   int
		)
		if err := rows.Scan(&country, &count); err != nil {
			return nil, err
		}
		stats.ByCountry[country] = count
	}
	return stats, rows.Err()
}

func (s *PGStore) queryMany(ctx context.Context, query string, args ...any) ([]*Request, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Request
	for rows.Next() {
		var r Request
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Phone, &r.CompanyName, &r.Country, &r.JobTitle, &r.Messages, &r.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &r)
	}
	return res, rows.Err()
}

func scanOne(row *sql.Row) (*Request, error) {
	var r Request
	if err := row.Scan(&r.ID, &r.Name, &r.Email, &r.Phone, &r.CompanyName, &r.Country, &r.JobTitle, &r.Messages, &r.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
