package contact

import (
	"context"
	"regexp"
	"strings"
	"time"

	"aureon.ai/internal/validate"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// Service validates and stores contact requests.
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

func validateRequest(req *Request) error {
	var verr validate.Error
	verr.Length("name", req.Name, 3, 20)
	if !emailPattern.MatchString(req.Email) {
		verr.Add("email", "must be a valid email address")
	}
	if !phonePattern.MatchString(req.Phone) {
		verr.Add("phone", "must be 10 digits")
	}
	verr.Length("company_name", req.CompanyName, 2, 30)
	verr.Length("country", req.Country, 2, 30)
	verr.Length("job_title", req.JobTitle, 2, 30)
	verr.Length("messages", req.Messages, 10, 500)
	return verr.OrNil()
}

func normalize(req *Request) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Country = strings.TrimSpace(req.Country)
	req.JobTitle = strings.TrimSpace(req.JobTitle)
	req.Messages = strings.TrimSpace(req.Messages)
}

// Create validates and persists a new contact request from the public form.
func (s *Service) Create(ctx context.Context, req *Request) (*Request, error) {
	normalize(req)
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	req.CreatedAt = s.now().UTC()
	if err := s.store.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *Service) Find(ctx context.Context, id string) (*Request, error) {
	return s.store.Find(ctx, id)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*Request, error) {
	return s.store.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Service) FindByPhone(ctx context.Context, phone string) (*Request, error) {
	return s.store.FindByPhone(ctx, strings.TrimSpace(phone))
}

func (s *Service) List(ctx context.Context) ([]*Request, error) {
	return s.store.List(ctx)
}

func (s *Service) ListByField(ctx context.Context, field Field, value string) ([]*Request, error) {
	return s.store.ListByField(ctx, field, strings.TrimSpace(value))
}

func (s *Service) Search(ctx context.Context, query string) ([]*Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.store.List(ctx)
	}
	return s.store.Search(ctx, query)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]*Request, error) {
	return s.store.Recent(ctx, limit)
}

// Update re-validates the full record before writing it back.
func (s *Service) Update(ctx context.Context, req *Request) (*Request, error) {
	normalize(req)
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, req); err != nil {
		return nil, err
	}
	return s.store.Find(ctx, req.ID)
}

func (s *Service) Delete(ctx context.Context, id string) (*Request, error) {
	return s.store.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.store.Stats(ctx)
}
