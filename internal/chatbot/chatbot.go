// Package chatbot answers site-visitor questions by keyword lookup.
package chatbot

import (
	"context"
	"errors"
	"strings"
	"time"

	"aureon.ai/internal/validate"
)

var ErrNotFound = errors.New("chatbot: rule not found")

// FallbackReply is returned when no rule keyword matches the message.
const FallbackReply = "That's an interesting question! Please check our Solutions page or contact our team for more information."

// Rule maps trigger keywords to a canned response.
type Rule struct {
	ID        string    `json:"id"`
	Keywords  []string  `json:"keywords"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists chatbot rules.
type Store interface {
	Create(ctx context.Context, r *Rule) error
	Find(ctx context.Context, id string) (*Rule, error)
	List(ctx context.Context) ([]*Rule, error)
	Update(ctx context.Context, r *Rule) error
	Delete(ctx context.Context, id string) error
}

// Service matches visitor messages against the rule set.
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

func validateRule(r *Rule) error {
	var verr validate.Error
	if len(r.Keywords) == 0 {
		verr.Add("keywords", "at least one keyword is required")
	}
	for _, kw := range r.Keywords {
		if strings.TrimSpace(kw) == "" {
			verr.Add("keywords", "must not contain blank entries")
			break
		}
	}
	verr.Length("response", r.Response, 2, 1000)
	return verr.OrNil()
}

func normalizeRule(r *Rule) {
	keywords := r.Keywords[:0]
	for _, kw := range r.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	r.Keywords = keywords
	r.Response = strings.TrimSpace(r.Response)
}

// Reply returns the response of the first rule with a keyword contained in
// the message, in rule creation order, or FallbackReply.
func (s *Service) Reply(ctx context.Context, message string) (string, error) {
	message = strings.ToLower(message)
	rules, err := s.store.List(ctx)
	if err != nil {
		return "", err
	}
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if kw != "" && strings.Contains(message, kw) {
				return r.Response, nil
			}
		}
	}
	return FallbackReply, nil
}

func (s *Service) CreateRule(ctx context.Context, r *Rule) (*Rule, error) {
	normalizeRule(r)
	if err := validateRule(r); err != nil {
		return nil, err
	}
	r.CreatedAt = s.now().UTC()
	if err := s.store.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) FindRule(ctx context.Context, id string) (*Rule, error) {
	return s.store.Find(ctx, id)
}

func (s *Service) ListRules(ctx context.Context) ([]*Rule, error) {
	return s.store.List(ctx)
}

func (s *Service) UpdateRule(ctx context.Context, r *Rule) (*Rule, error) {
	normalizeRule(r)
	if err := validateRule(r); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, r); err != nil {
		return nil, err
	}
	return s.store.Find(ctx, r.ID)
}

func (s *Service) DeleteRule(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
