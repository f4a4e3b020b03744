package feedback

import (
	"context"
	"strings"
	"time"

	"aureon.ai/internal/validate"
)

// Service validates testimonials and drives moderation.
type Service struct {
	store Store
	now   func() time.Time
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

func NewService(store Store, opts ...ServiceOption) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func validateFeedback(fb *Feedback) error {
	var verr validate.Error
	verr.Length("name", fb.Name, 3, 50)
	verr.Length("company_name", fb.CompanyName, 2, 30)
	verr.Length("job_title", fb.JobTitle, 2, 30)
	if fb.Rating < 0 || fb.Rating > 5 {
		verr.Add("rating", "must be between 0 and 5")
	}
	verr.Length("comment", fb.Comment, 10, 500)
	return verr.OrNil()
}

func normalize(fb *Feedback) {
	fb.Name = strings.TrimSpace(fb.Name)
	fb.CompanyName = strings.TrimSpace(fb.CompanyName)
	fb.JobTitle = strings.TrimSpace(fb.JobTitle)
	fb.Comment = strings.TrimSpace(fb.Comment)
}

// Create stores a new testimonial. Submissions always start unapproved;
// only an explicit admin update can publish one.
func (s *Service) Create(ctx context.Context, fb *Feedback) (*Feedback, error) {
	normalize(fb)
	if err := validateFeedback(fb); err != nil {
		return nil, err
	}
	fb.Approved = false
	fb.SubmittedAt = s.now().UTC()
	if err := s.store.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *Service) Find(ctx context.Context, id string) (*Feedback, error) {
	return s.store.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Feedback, error) {
	return s.store.List(ctx)
}

// ListApproved returns the testimonials shown on the public site.
func (s *Service) ListApproved(ctx context.Context) ([]*Feedback, error) {
	return s.store.ListApproved(ctx)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]*Feedback, error) {
	return s.store.Recent(ctx, limit)
}

func (s *Service) ListByName(ctx context.Context, name string) ([]*Feedback, error) {
	return s.store.ListByName(ctx, strings.TrimSpace(name))
}

func (s *Service) ListByCompany(ctx context.Context, company string) ([]*Feedback, error) {
	return s.store.ListByCompany(ctx, strings.TrimSpace(company))
}

// Update re-validates and writes back the full record, including the
// approved flag; this is the moderation path.
func (s *Service) Update(ctx context.Context, fb *Feedback) (*Feedback, error) {
	normalize(fb)
	if err := validateFeedback(fb); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, fb); err != nil {
		return nil, err
	}
	return s.store.Find(ctx, fb.ID)
}

func (s *Service) Delete(ctx context.Context, id string) (*Feedback, error) {
	return s.store.Delete(ctx, id)
}
