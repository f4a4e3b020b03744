package content

import (
	"context"
	"strings"
	"time"

	"aureon.ai/internal/validate"
)

// Service validates and stores the site's editorial content.
type Service struct {
	posts      PostStore
	solutions  SolutionStore
	industries IndustryStore
	projects   ProjectStore
	gallery    GalleryStore
	now        func() time.Time
}

type ServiceOption func(*Service)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

func NewService(posts PostStore, solutions SolutionStore, industries IndustryStore, projects ProjectStore, gallery GalleryStore, opts ...ServiceOption) *Service {
	s := &Service{
		posts:      posts,
		solutions:  solutions,
		industries: industries,
		projects:   projects,
		gallery:    gallery,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func validPostCategory(c PostCategory) bool {
	for _, cat := range PostCategories {
		if c == cat {
			return true
		}
	}
	return false
}

func validGalleryCategory(c GalleryCategory) bool {
	for _, cat := range GalleryCategories {
		if c == cat {
			return true
		}
	}
	return false
}

func validIcon(icon string) bool {
	for _, name := range Icons {
		if icon == name {
			return true
		}
	}
	return false
}

func validImageURL(raw string) bool {
	return strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://")
}

func validatePost(p *Post) error {
	var verr validate.Error
	verr.Length("title", p.Title, 3, 100)
	if !validPostCategory(p.Category) {
		verr.Add("category", "must be one of the known post categories")
	}
	verr.Length("content", p.Content, 10, 2000)
	if p.ImageURL != "" && !validImageURL(p.ImageURL) {
		verr.Add("image_url", "must be an http or https URL")
	}
	return verr.OrNil()
}

func validateSolution(sol *Solution) error {
	var verr validate.Error
	verr.Length("title", sol.Title, 3, 80)
	verr.Length("description", sol.Description, 10, 500)
	if !validIcon(sol.Icon) {
		verr.Add("icon", "must be one of the known icon names")
	}
	for _, f := range sol.Features {
		if strings.TrimSpace(f) == "" {
			verr.Add("features", "must not contain blank entries")
			break
		}
	}
	if sol.DisplayOrder < 0 {
		verr.Add("display_order", "must not be negative")
	}
	return verr.OrNil()
}

func validateIndustry(ind *Industry) error {
	var verr validate.Error
	verr.Length("name", ind.Name, 3, 80)
	verr.Length("description", ind.Description, 10, 500)
	if !validIcon(ind.Icon) {
		verr.Add("icon", "must be one of the known icon names")
	}
	return verr.OrNil()
}

func validateProject(p *Project) error {
	var verr validate.Error
	verr.Length("title", p.Title, 3, 80)
	verr.Length("description", p.Description, 10, 500)
	if !validIcon(p.Icon) {
		verr.Add("icon", "must be one of the known icon names")
	}
	for _, f := range p.Features {
		if strings.TrimSpace(f) == "" {
			verr.Add("features", "must not contain blank entries")
			break
		}
	}
	if p.Year < 2000 || p.Year > time.Now().Year()+1 {
		verr.Add("year", "must be a plausible delivery year")
	}
	return verr.OrNil()
}

func validateGalleryItem(g *GalleryItem) error {
	var verr validate.Error
	verr.Length("title", g.Title, 3, 120)
	if !validGalleryCategory(g.Category) {
		verr.Add("category", "must be one of the known gallery categories")
	}
	verr.Length("content", g.Content, 10, 2000)
	if g.ImageFilename == "" {
		verr.Add("image_filename", "is required")
	}
	if g.ImagePath == "" {
		verr.Add("image_path", "is required")
	}
	if g.ImageMime != "" && !strings.HasPrefix(g.ImageMime, "image/") {
		verr.Add("image_mime", "must be an image media type")
	}
	if g.ImageSize < 0 {
		verr.Add("image_size", "must not be negative")
	}
	if g.Date.IsZero() {
		verr.Add("date", "is required")
	}
	verr.Length("location", g.Location, 2, 120)
	return verr.OrNil()
}

// Posts.

func (s *Service) CreatePost(ctx context.Context, p *Post) (*Post, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	if err := validatePost(p); err != nil {
		return nil, err
	}
	p.CreatedAt = s.now().UTC()
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) FindPost(ctx context.Context, id string) (*Post, error) {
	return s.posts.Find(ctx, id)
}

// ListPosts returns every post, drafts included, for the back office.
func (s *Service) ListPosts(ctx context.Context) ([]*Post, error) {
	return s.posts.List(ctx)
}

// PublishedPosts returns only what the public site may show.
func (s *Service) PublishedPosts(ctx context.Context) ([]*Post, error) {
	return s.posts.ListPublished(ctx)
}

func (s *Service) PostsByCategory(ctx context.Context, category PostCategory, publishedOnly bool) ([]*Post, error) {
	if !validPostCategory(category) {
		var verr validate.Error
		verr.Add("category", "must be one of the known post categories")
		return nil, verr.OrNil()
	}
	return s.posts.ListByCategory(ctx, category, publishedOnly)
}

func (s *Service) UpdatePost(ctx context.Context, p *Post) (*Post, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	if err := validatePost(p); err != nil {
		return nil, err
	}
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.posts.Find(ctx, p.ID)
}

func (s *Service) DeletePost(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}

// Solutions.

func (s *Service) CreateSolution(ctx context.Context, sol *Solution) (*Solution, error) {
	sol.Title = strings.TrimSpace(sol.Title)
	sol.Description = strings.TrimSpace(sol.Description)
	if err := validateSolution(sol); err != nil {
		return nil, err
	}
	sol.CreatedAt = s.now().UTC()
	if err := s.solutions.Create(ctx, sol); err != nil {
		return nil, err
	}
	return sol, nil
}

func (s *Service) FindSolution(ctx context.Context, id string) (*Solution, error) {
	return s.solutions.Find(ctx, id)
}

func (s *Service) ListSolutions(ctx context.Context) ([]*Solution, error) {
	return s.solutions.List(ctx)
}

func (s *Service) ActiveSolutions(ctx context.Context) ([]*Solution, error) {
	return s.solutions.ListActive(ctx)
}

func (s *Service) UpdateSolution(ctx context.Context, sol *Solution) (*Solution, error) {
	sol.Title = strings.TrimSpace(sol.Title)
	sol.Description = strings.TrimSpace(sol.Description)
	if err := validateSolution(sol); err != nil {
		return nil, err
	}
	if err := s.solutions.Update(ctx, sol); err != nil {
		return nil, err
	}
	return s.solutions.Find(ctx, sol.ID)
}

func (s *Service) DeleteSolution(ctx context.Context, id string) error {
	return s.solutions.Delete(ctx, id)
}

// Industries.

func (s *Service) CreateIndustry(ctx context.Context, ind *Industry) (*Industry, error) {
	ind.Name = strings.TrimSpace(ind.Name)
	ind.Description = strings.TrimSpace(ind.Description)
	if err := validateIndustry(ind); err != nil {
		return nil, err
	}
	ind.CreatedAt = s.now().UTC()
	if err := s.industries.Create(ctx, ind); err != nil {
		return nil, err
	}
	return ind, nil
}

func (s *Service) FindIndustry(ctx context.Context, id string) (*Industry, error) {
	return s.industries.Find(ctx, id)
}

func (s *Service) ListIndustries(ctx context.Context) ([]*Industry, error) {
	return s.industries.List(ctx)
}

func (s *Service) ActiveIndustries(ctx context.Context) ([]*Industry, error) {
	return s.industries.ListActive(ctx)
}

func (s *Service) UpdateIndustry(ctx context.Context, ind *Industry) (*Industry, error) {
	ind.Name = strings.TrimSpace(ind.Name)
	ind.Description = strings.TrimSpace(ind.Description)
	if err := validateIndustry(ind); err != nil {
		return nil, err
	}
	if err := s.industries.Update(ctx, ind); err != nil {
		return nil, err
	}
	return s.industries.Find(ctx, ind.ID)
}

func (s *Service) DeleteIndustry(ctx context.Context, id string) error {
	return s.industries.Delete(ctx, id)
}

// Projects.

func (s *Service) CreateProject(ctx context.Context, p *Project) (*Project, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	if err := validateProject(p); err != nil {
		return nil, err
	}
	p.CreatedAt = s.now().UTC()
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) FindProject(ctx context.Context, id string) (*Project, error) {
	return s.projects.Find(ctx, id)
}

func (s *Service) ListProjects(ctx context.Context) ([]*Project, error) {
	return s.projects.List(ctx)
}

func (s *Service) ActiveProjects(ctx context.Context) ([]*Project, error) {
	return s.projects.ListActive(ctx)
}

func (s *Service) UpdateProject(ctx context.Context, p *Project) (*Project, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	if err := validateProject(p); err != nil {
		return nil, err
	}
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.projects.Find(ctx, p.ID)
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}

// Gallery.

func (s *Service) CreateGalleryItem(ctx context.Context, g *GalleryItem) (*GalleryItem, error) {
	g.Title = strings.TrimSpace(g.Title)
	g.Content = strings.TrimSpace(g.Content)
	g.Location = strings.TrimSpace(g.Location)
	if err := validateGalleryItem(g); err != nil {
		return nil, err
	}
	g.CreatedAt = s.now().UTC()
	if err := s.gallery.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) FindGalleryItem(ctx context.Context, id string) (*GalleryItem, error) {
	return s.gallery.Find(ctx, id)
}

func (s *Service) ListGallery(ctx context.Context) ([]*GalleryItem, error) {
	return s.gallery.List(ctx)
}

func (s *Service) PublishedGallery(ctx context.Context) ([]*GalleryItem, error) {
	return s.gallery.ListPublished(ctx)
}

func (s *Service) FeaturedGallery(ctx context.Context) ([]*GalleryItem, error) {
	return s.gallery.ListFeatured(ctx)
}

func (s *Service) GalleryByCategory(ctx context.Context, category GalleryCategory, publishedOnly bool) ([]*GalleryItem, error) {
	if !validGalleryCategory(category) {
		var verr validate.Error
		verr.Add("category", "must be one of the known gallery categories")
		return nil, verr.OrNil()
	}
	return s.gallery.ListByCategory(ctx, category, publishedOnly)
}

func (s *Service) UpdateGalleryItem(ctx context.Context, g *GalleryItem) (*GalleryItem, error) {
	g.Title = strings.TrimSpace(g.Title)
	g.Content = strings.TrimSpace(g.Content)
	g.Location = strings.TrimSpace(g.Location)
	if err := validateGalleryItem(g); err != nil {
		return nil, err
	}
	if err := s.gallery.Update(ctx, g); err != nil {
		return nil, err
	}
	return s.gallery.Find(ctx, g.ID)
}

func (s *Service) DeleteGalleryItem(ctx context.Context, id string) error {
	return s.gallery.Delete(ctx, id)
}
