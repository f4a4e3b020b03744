package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"aureon.ai/internal/ids"
)

const (
	postColumns     = `id, title, category, content, image_url, published, created_at`
	solutionColumns = `id, title, description, icon, features, display_order, active, created_at`
	industryColumns = `id, name, description, icon, active, created_at`
	projectColumns  = `id, title, description, icon, features, year, active, created_at`
	galleryColumns  = `id, title, category, content, image_filename, image_path, image_mime, image_size,
		date, location, published, featured, active, created_at`
)

// Feature lists are stored as jsonb so the column survives schema-less edits
// from the back office.
func encodeFeatures(features []string) ([]byte, error) {
	if features == nil {
		features = []string{}
	}
	return json.Marshal(features)
}

func decodeFeatures(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		*dst = nil
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func mapRowErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func requireUpdated(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// PGPostStore implements PostStore using PostgreSQL.
type PGPostStore struct {
	db *sql.DB
}

func NewPGPostStore(db *sql.DB) *PGPostStore {
	return &PGPostStore{db: db}
}

func (s *PGPostStore) Create(ctx context.Context, p *Post) error {
	if p.ID == "" {
		p.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into posts(id, title, category, content, image_url, published)
		 values($1,$2,$3,$4,$5,$6)`,
		p.ID, p.Title, p.Category, p.Content, p.ImageURL, p.Published,
	)
	return err
}

func (s *PGPostStore) Find(ctx context.Context, id string) (*Post, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`select `+postColumns+` from posts where id=$1`, id))
}

func (s *PGPostStore) List(ctx context.Context) ([]*Post, error) {
	return s.queryMany(ctx, `select `+postColumns+` from posts order by created_at desc`)
}

func (s *PGPostStore) ListPublished(ctx context.Context) ([]*Post, error) {
	return s.queryMany(ctx,
		`select `+postColumns+` from posts where published order by created_at desc`)
}

func (s *PGPostStore) ListByCategory(ctx context.Context, category PostCategory, publishedOnly bool) ([]*Post, error) {
	if publishedOnly {
		return s.queryMany(ctx,
			`select `+postColumns+` from posts where category=$1 and published order by created_at desc`, category)
	}
	return s.queryMany(ctx,
		`select `+postColumns+` from posts where category=$1 order by created_at desc`, category)
}

func (s *PGPostStore) Update(ctx context.Context, p *Post) error {
	res, err := s.db.ExecContext(ctx,
		`update posts set title=$2, category=$3, content=$4, image_url=$5, published=$6 where id=$1`,
		p.ID, p.Title, p.Category, p.Content, p.ImageURL, p.Published,
	)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (s *PGPostStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `delete from posts where id=$1`, id)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (s *PGPostStore) scanOne(row *sql.Row) (*Post, error) {
	var p Post
	if err := row.Scan(&p.ID, &p.Title, &p.Category, &p.Content, &p.ImageURL, &p.Published, &p.CreatedAt); err != nil {
		return nil, mapRowErr(err)
	}
	return &p, nil
}

func (s *PGPostStore) queryMany(ctx context.Context, query string, args ...any) ([]*Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.Content, &p.ImageURL, &p.Published, &p.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &p)
	}
	return res, rows.Err()
}

// PGSolutionStore implements SolutionStore using PostgreSQL.
type PGSolutionStore struct {
	db *sql.DB
}

func NewPGSolutionStore(db *sql.DB) *PGSolutionStore {
	return &PGSolutionStore{db: db}
}

func (s *PGSolutionStore) Create(ctx context.Context, sol *Solution) error {
	if sol.ID == "" {
		sol.ID = ids.New()
	}
	features, err := encodeFeatures(sol.Features)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`insert into solutions(id, title, description, icon, features, display_order, active)
		 values($1,$2,$3,$4,$5,$6,$7)`,
		sol.ID, sol.Title, sol.Description, sol.Icon, features, sol.DisplayOrder, sol.Active,
	)
	return err
}

func (s *PGSolutionStore) Find(ctx context.Context, id string) (*Solution, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`select `+solutionColumns+` from solutions where id=$1`, id))
}

func (s *PGSolutionStore) List(ctx context.Context) ([]*Solution, error) {
	return s.queryMany(ctx,
		`select `+solutionColumns+` from solutions order by display_order, created_at`)
}

func (s *PGSolutionStore) ListActive(ctx context.Context) ([]*Solution, error) {
	return s.queryMany(ctx,
		`select `+solutionColumns+` from solutions where active order by display_order, created_at`)
}

func (s *PGSolutionStore) Update(ctx context.Context, sol *Solution) error {
	features, err := encodeFeatures(sol.Features)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`update solutions set title=$2, description=$3, icon=$4, features=$5, display_order=$6, active=$7
		 where id=$1`,
		sol.ID, sol.Title, sol.Description, sol.Icon, features, sol.DisplayOrder, sol.Active,
	)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (s *PGSolutionStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `delete from solutions where id=$1`, id)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (s *PGSolutionStore) scanOne(row *sql.Row) (*Solution, error) {
	var (
		sol Solution
		raw []byte
	)
	if err := row.Scan(&sol.ID, &sol.Title, &sol.Description, &sol.Icon, &raw, &sol.DisplayOrder, &sol.Active, &sol.CreatedAt); err != nil {
		return nil, mapRowErr(err)
	}
	if err := decodeFeatures(raw, &sol.Features); err != nil {
		return nil, err
	}
	return &sol, nil
}

func (s *PGSolutionStore) queryMany(ctx context.Context, query string, args ...any) ([]*Solution, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Solution
	for rows.Next() {
		var (
			sol Solution
			raw []byte
		)
		if err := rows.Scan(&sol.ID, &sol.Title, &sol.Description, &sol.Icon, &raw, &sol.DisplayOrder, &sol.Active, &sol.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodeFeatures(raw, &sol.Features); err != nil {
			return nil, err
		}
		res = append(res, &sol)
	}
	return res, rows.Err()
}

// PGIndustryStore implements IndustryStore using PostgreSQL.
type PGIndustryStore struct {
	db *sql.DB
}

func NewPGIndustryStore(db *sql.DB) *PGIndustryStore {
	return &PGIndustryStore{db: db}
}

func (s *PGIndustryStore) Create(ctx context.Context, ind *Industry) error {
	if ind.ID == "" {
		ind.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into industries(id, name, description, icon, active)
		 values($1,$2,$3,$4,$5)`,
		ind.ID, ind.Name, ind.Description, ind.Icon, ind.Active,
	)
	return err
}

func (s *PGIndustryStore) Find(ctx context.Context, id string) (*Industry, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`select `+industryColumns+` from industries where id=$1`, id))
}

func (s *PGIndustryStore) List(ctx context.Context) ([]*Industry, error) {
	return s.queryMany(ctx, `select `+industryColumns+` from industries order by created_at`)
}

func (s *PGIndustryStore) ListActive(ctx context.Context) ([]*Industry, error) {
	return s.queryMany(ctx,
		`select `+industryColumns+` from industries where active order by created_at`)
}

func (s *PGIndustryStore) Update(ctx context.Context, ind *Industry) error {
	res, err := s.db.ExecContext(ctx,
		`update industries set name=$2, description=$3, icon=$4, active=$5 where id=$1`,
		ind.ID, ind.Name, ind.Description, ind.Icon, ind.Active,
	)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (s *PGIndustryStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `delete from industries where id=$1`, id)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (s *PGIndustryStore) scanOne(row *sql.Row) (*Industry, error) {
	var ind Industry
	if err := row.Scan(&ind.ID, &ind.Name, &ind.Description, &ind.Icon, &ind.Active, &ind.CreatedAt); err != nil {
		return nil, mapRowErr(err)
	}
	return &ind, nil
}

func (s *PGIndustryStore) queryMany(ctx context.Context, query string, args ...any) ([]*Industry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Industry
	for rows.Next() {
		var ind Industry
		if err := rows.Scan(&ind.ID, &ind.Name, &ind.Description, &ind.Icon, &ind.Active, &ind.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &ind)
	}
	return res, rows.Err()
}

// PGProjectStore implements ProjectStore using PostgreSQL.
type PGProjectStore struct {
	db *sql.DB
}

func NewPGProjectStore(db *sql.DB) *PGProjectStore {
	return &PGProjectStore{db: db}
}

func (s *PGProjectStore) Create(ctx context.Context, p *Project) error {
	if p.ID == "" {
		p.ID = ids.New()
	}
	features, err := encodeFeatures(p.Features)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`insert into projects(id, title, description, icon, features, year, active)
		 values($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Title, p.Description, p.Icon, features, p.Year, p.Active,
	)
	return err
}

func (s *PGProjectStore) Find(ctx context.Context, id string) (*Project, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`select `+projectColumns+` from projects where id=$1`, id))
}

func (s *PGProjectStore) List(ctx context.Context) ([]*Project, error) {
	return s.queryMany(ctx,
		`select `+projectColumns+` from projects order by year desc, created_at desc`)
}

func (s *PGProjectStore) ListActive(ctx context.Context) ([]*Project, error) {
	return s.queryMany(ctx,
		`select `+projectColumns+` from projects where active order by year desc, created_at desc`)
}

func (s *PGProjectStore) Update(ctx context.Context, p *Project) error {
	features, err := encodeFeatures(p.Features)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`update projects set title=$2, description=$3, icon=$4, features=$5, year=$6, active=$7
		 where id=$1`,
		p.ID, p.Title, p.Description, p.Icon, features, p.Year, p.Active,
	)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (s *PGProjectStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `delete from projects where id=$1`, id)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (s *PGProjectStore) scanOne(row *sql.Row) (*Project, error) {
	var (
		p   Project
		raw []byte
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Icon, &raw, &p.Year, &p.Active, &p.CreatedAt); err != nil {
		return nil, mapRowErr(err)
	}
	if err := decodeFeatures(raw, &p.Features); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PGProjectStore) queryMany(ctx context.Context, query string, args ...any) ([]*Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*Project
	for rows.Next() {
		var (
			p   Project
			raw []byte
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Icon, &raw, &p.Year, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}
		if err := decodeFeatures(raw, &p.Features); err != nil {
			return nil, err
		}
		res = append(res, &p)
	}
	return res, rows.Err()
}

// PGGalleryStore implements GalleryStore using PostgreSQL.
type PGGalleryStore struct {
	db *sql.DB
}

func NewPGGalleryStore(db *sql.DB) *PGGalleryStore {
	return &PGGalleryStore{db: db}
}

func (s *PGGalleryStore) Create(ctx context.Context, g *GalleryItem) error {
	if g.ID == "" {
		g.ID = ids.New()
	}
	_, err := s.db.ExecContext(ctx,
		`insert into gallery(id, title, category, content, image_filename, image_path, image_mime, image_size,
			date, location, published, featured, active)
		 values($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		g.ID, g.Title, g.Category, g.Content, g.ImageFilename, g.ImagePath, g.ImageMime, g.ImageSize,
		g.Date, g.Location, g.Published, g.Featured, g.Active,
	)
	return err
}

func (s *PGGalleryStore) Find(ctx context.Context, id string) (*GalleryItem, error) {
	return s.scanOne(s.db.QueryRowContext(ctx,
		`select `+galleryColumns+` from gallery where id=$1`, id))
}

func (s *PGGalleryStore) List(ctx context.Context) ([]*GalleryItem, error) {
	return s.queryMany(ctx, `select `+galleryColumns+` from gallery order by date desc`)
}

func (s *PGGalleryStore) ListPublished(ctx context.Context) ([]*GalleryItem, error) {
	return s.queryMany(ctx,
		`select `+galleryColumns+` from gallery where published and active order by date desc`)
}

func (s *PGGalleryStore) ListFeatured(ctx context.Context) ([]*GalleryItem, error) {
	return s.queryMany(ctx,
		`select `+galleryColumns+` from gallery where featured and published and active order by date desc`)
}

func (s *PGGalleryStore) ListByCategory(ctx context.Context, category GalleryCategory, publishedOnly bool) ([]*GalleryItem, error) {
	if publishedOnly {
		return s.queryMany(ctx,
			`select `+galleryColumns+` from gallery where category=$1 and published and active order by date desc`, category)
	}
	return s.queryMany(ctx,
		`select `+galleryColumns+` from gallery where category=$1 order by date desc`, category)
}

func (s *PGGalleryStore) Update(ctx context.Context, g *GalleryItem) error {
	res, err := s.db.ExecContext(ctx,
		`update gallery set title=$2, category=$3, content=$4, image_filename=$5, image_path=$6,
			image_mime=$7, image_size=$8, date=$9, location=$10, published=$11, featured=$12, active=$13
		 where id=$1`,
		g.ID, g.Title, g.Category, g.Content, g.ImageFilename, g.ImagePath, g.ImageMime, g.ImageSize,
		g.Date, g.Location, g.Published, g.Featured, g.Active,
	)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (s *PGGalleryStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `delete from gallery where id=$1`, id)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (s *PGGalleryStore) scanOne(row *sql.Row) (*GalleryItem, error) {
	var g GalleryItem
	if err := row.Scan(&g.ID, &g.Title, &g.Category, &g.Content, &g.ImageFilename, &g.ImagePath,
		&g.ImageMime, &g.ImageSize, &g.Date, &g.Location, &g.Published, &g.Featured, &g.Active, &g.CreatedAt); err != nil {
		return nil, mapRowErr(err)
	}
	return &g, nil
}

func (s *PGGalleryStore) queryMany(ctx context.Context, query string, args ...any) ([]*GalleryItem, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*GalleryItem
	for rows.Next() {
		var g GalleryItem
		if err := rows.Scan(&g.ID, &g.Title, &g.Category, &g.Content, &g.ImageFilename, &g.ImagePath,
			&g.ImageMime, &g.ImageSize, &g.Date, &g.Location, &g.Published, &g.Featured, &g.Active, &g.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &g)
	}
	return res, rows.Err()
}

var (
	_ PostStore     = (*PGPostStore)(nil)
	_ SolutionStore = (*PGSolutionStore)(nil)
	_ IndustryStore = (*PGIndustryStore)(nil)
	_ ProjectStore  = (*PGProjectStore)(nil)
	_ GalleryStore  = (*PGGalleryStore)(nil)
)
