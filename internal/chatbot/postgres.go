package chatbot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"aureon.ai/internal/ids"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store using PostgreSQL. Keywords live in a jsonb
// column so a rule edit never touches more than one row.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, r *Rule) error {
	if r.ID == "" {
		r.ID = ids.New()
	}
	keywords, err := json.Marshal(r.Keywords)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`insert into chatbot_rules(id, keywords, response) values($1,$2,$3)`,
		r.ID, keywords, r.Response,
	)
	return err
}

func (s *PGStore) Find(ctx context.Context, id string) (*Rule, error) {
	return scanRule(s.db.QueryRowContext(ctx,
		`select id, keywords, response, created_at from chatbot_rules where id=$1`, id))
}

func (s *PGStore) List(ctx context.Context) ([]*Rule, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, keywords, response, created_at from chatbot_rules order by created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Rule
	for rows.Next() {
		var (
			r   Rule
			raw []byte
		)
		if err := rows.Scan(&r.ID, &raw, &r.Response, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &r.Keywords); err != nil {
			return nil, err
		}
		res = append(res, &r)
	}
	return res, rows.Err()
}

func (s *PGStore) Update(ctx context.Context, r *Rule) error {
	keywords, err := json.Marshal(r.Keywords)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`update chatbot_rules set keywords=$2, response=$3 where id=$1`,
		r.ID, keywords, r.Response,
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

func (s *PGStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `delete from chatbot_rules where id=$1`, id)
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

func scanRule(row *sql.Row) (*Rule, error) {
	var (
		r   Rule
		raw []byte
	)
	if err := row.Scan(&r.ID, &raw, &r.Response, &r.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &r.Keywords); err != nil {
		return nil, err
	}
	return &r, nil
}
