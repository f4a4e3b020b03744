package content

import "context"

// PostStore persists marketing posts.
type PostStore interface {
	Create(ctx context.Context, p *Post) error
	Find(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	ListPublished(ctx context.Context) ([]*Post, error)
	ListByCategory(ctx context.Context, category PostCategory, publishedOnly bool) ([]*Post, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id string) error
}

// SolutionStore persists service offerings.
type SolutionStore interface {
	Create(ctx context.Context, s *Solution) error
	Find(ctx context.Context, id string) (*Solution, error)
	List(ctx context.Context) ([]*Solution, error)
	ListActive(ctx context.Context) ([]*Solution, error)
	Update(ctx context.Context, s *Solution) error
	Delete(ctx context.Context, id string) error
}

// IndustryStore persists industry verticals.
type IndustryStore interface {
	Create(ctx context.Context, ind *Industry) error
	Find(ctx context.Context, id string) (*Industry, error)
	List(ctx context.Context) ([]*Industry, error)
	ListActive(ctx context.Context) ([]*Industry, error)
	Update(ctx context.Context, ind *Industry) error
	Delete(ctx context.Context, id string) error
}

// ProjectStore persists delivered engagements.
type ProjectStore interface {
	Create(ctx context.Context, p *Project) error
	Find(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	ListActive(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id string) error
}

// GalleryStore persists gallery items.
type GalleryStore interface {
	Create(ctx context.Context, g *GalleryItem) error
	Find(ctx context.Context, id string) (*GalleryItem, error)
	List(ctx context.Context) ([]*GalleryItem, error)
	ListPublished(ctx context.Context) ([]*GalleryItem, error)
	ListFeatured(ctx context.Context) ([]*GalleryItem, error)
	ListByCategory(ctx context.Context, category GalleryCategory, publishedOnly bool) ([]*GalleryItem, error)
	Update(ctx context.Context, g *GalleryItem) error
	Delete(ctx context.Context, id string) error
}
