package httpapi

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"aureon.ai/internal/auth"
	"aureon.ai/internal/chatbot"
	"aureon.ai/internal/config"
	"aureon.ai/internal/contact"
	"aureon.ai/internal/content"
	"aureon.ai/internal/feedback"
)

type memAdmins struct {
	mu     sync.Mutex
	seq    int
	admins map[string]*auth.Admin
}

func newMemAdmins() *memAdmins {
	return &memAdmins{admins: make(map[string]*auth.Admin)}
}

func (s *memAdmins) Create(_ context.Context, admin *auth.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.Username == admin.Username || a.Email == admin.Email {
			return auth.ErrDuplicateIdentity
		}
	}
	s.seq++
	if admin.ID == "" {
		admin.ID = fmt.Sprintf("admin-%03d", s.seq)
	}
	cp := *admin
	s.admins[admin.ID] = &cp
	return nil
}

func (s *memAdmins) Find(_ context.Context, id string) (*auth.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *memAdmins) FindByUsername(_ context.Context, username string) (*auth.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, auth.ErrNotFound
}

func (s *memAdmins) FindByEmail(_ context.Context, email string) (*auth.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, auth.ErrNotFound
}

type memDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newMemDenylist() *memDenylist {
	return &memDenylist{revoked: make(map[string]time.Time)}
}

func (d *memDenylist) Revoke(_ context.Context, token string, insertedAt time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.revoked[token]; !ok {
		d.revoked[token] = insertedAt
	}
	return nil
}

func (d *memDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.revoked[token]
	return ok, nil
}

type memContacts struct {
	mu   sync.Mutex
	seq  int
	reqs map[string]*contact.Request
}

func newMemContacts() *memContacts {
	return &memContacts{reqs: make(map[string]*contact.Request)}
}

func (s *memContacts) Create(_ context.Context, req *contact.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reqs {
		if r.Email == req.Email || r.Phone == req.Phone {
			return contact.ErrDuplicate
		}
	}
	s.seq++
	if req.ID == "" {
		req.ID = fmt.Sprintf("contact-%03d", s.seq)
	}
	cp := *req
	s.reqs[req.ID] = &cp
	return nil
}

func (s *memContacts) Find(_ context.Context, id string) (*contact.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reqs[id]
	if !ok {
		return nil, contact.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *memContacts) FindByEmail(_ context.Context, email string) (*contact.Request, error) {
	return s.findBy(func(r *contact.Request) bool { return r.Email == email })
}

func (s *memContacts) FindByPhone(_ context.Context, phone string) (*contact.Request, error) {
	return s.findBy(func(r *contact.Request) bool { return r.Phone == phone })
}

func (s *memContacts) findBy(match func(*contact.Request) bool) (*contact.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reqs {
		if match(r) {
			cp := *r
			return &cp, nil
		}
	}
	return nil, contact.ErrNotFound
}

func (s *memContacts) List(_ context.Context) ([]*contact.Request, error) {
	return s.filter(func(*contact.Request) bool { return true }), nil
}

func (s *memContacts) ListByField(_ context.Context, field contact.Field, value string) ([]*contact.Request, error) {
	return s.filter(func(r *contact.Request) bool {
		switch field {
		case contact.FieldName:
			return r.Name == value
		case contact.FieldCompany:
			return r.CompanyName == value
		case contact.FieldCountry:
			return r.Country == value
		case contact.FieldJob:
			return r.JobTitle == value
		}
		return false
	}), nil
}

func (s *memContacts) Search(_ context.Context, query string) ([]*contact.Request, error) {
	return s.filter(func(r *contact.Request) bool { return r.Name == query || r.Country == query }), nil
}

func (s *memContacts) Recent(_ context.Context, limit int) ([]*contact.Request, error) {
	all := s.filter(func(*contact.Request) bool { return true })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *memContacts) Update(_ context.Context, req *contact.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reqs[req.ID]; !ok {
		return contact.ErrNotFound
	}
	cp := *req
	s.reqs[req.ID] = &cp
	return nil
}

func (s *memContacts) Delete(_ context.Context, id string) (*contact.Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reqs[id]
	if !ok {
		return nil, contact.ErrNotFound
	}
	delete(s.reqs, id)
	return r, nil
}

func (s *memContacts) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reqs), nil
}

func (s *memContacts) Stats(_ context.Context) (*contact.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &contact.Stats{Total: len(s.reqs), ByCountry: make(map[string]int)}
	weekAgo := time.Now().UTC().Add(-7 * 24 * time.Hour)
	for _, r := range s.reqs {
		stats.ByCountry[r.Country]++
		if r.CreatedAt.After(weekAgo) {
			stats.LastWeek++
		}
	}
	return stats, nil
}

func (s *memContacts) filter(keep func(*contact.Request) bool) []*contact.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*contact.Request
	for _, r := range s.reqs {
		if keep(r) {
			cp := *r
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res
}

type memFeedback struct {
	mu  sync.Mutex
	seq int
	fbs map[string]*feedback.Feedback
}

func newMemFeedback() *memFeedback {
	return &memFeedback{fbs: make(map[string]*feedback.Feedback)}
}

func (s *memFeedback) Create(_ context.Context, fb *feedback.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if fb.ID == "" {
		fb.ID = fmt.Sprintf("feedback-%03d", s.seq)
	}
	cp := *fb
	s.fbs[fb.ID] = &cp
	return nil
}

func (s *memFeedback) Find(_ context.Context, id string) (*feedback.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb, ok := s.fbs[id]
	if !ok {
		return nil, feedback.ErrNotFound
	}
	cp := *fb
	return &cp, nil
}

func (s *memFeedback) List(_ context.Context) ([]*feedback.Feedback, error) {
	return s.filter(func(*feedback.Feedback) bool { return true }), nil
}

func (s *memFeedback) ListApproved(_ context.Context) ([]*feedback.Feedback, error) {
	return s.filter(func(fb *feedback.Feedback) bool { return fb.Approved }), nil
}

func (s *memFeedback) Recent(_ context.Context, limit int) ([]*feedback.Feedback, error) {
	all := s.filter(func(*feedback.Feedback) bool { return true })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *memFeedback) ListByName(_ context.Context, name string) ([]*feedback.Feedback, error) {
	return s.filter(func(fb *feedback.Feedback) bool { return fb.Name == name }), nil
}

func (s *memFeedback) ListByCompany(_ context.Context, company string) ([]*feedback.Feedback, error) {
	return s.filter(func(fb *feedback.Feedback) bool { return fb.CompanyName == company }), nil
}

func (s *memFeedback) Update(_ context.Context, fb *feedback.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fbs[fb.ID]; !ok {
		return feedback.ErrNotFound
	}
	cp := *fb
	s.fbs[fb.ID] = &cp
	return nil
}

func (s *memFeedback) Delete(_ context.Context, id string) (*feedback.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fb, ok := s.fbs[id]
	if !ok {
		return nil, feedback.ErrNotFound
	}
	delete(s.fbs, id)
	return fb, nil
}

func (s *memFeedback) filter(keep func(*feedback.Feedback) bool) []*feedback.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*feedback.Feedback
	for _, fb := range s.fbs {
		if keep(fb) {
			cp := *fb
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].SubmittedAt.After(res[j].SubmittedAt) })
	return res
}

type memRules struct {
	mu    sync.Mutex
	seq   int
	rules map[string]*chatbot.Rule
}

func newMemRules() *memRules {
	return &memRules{rules: make(map[string]*chatbot.Rule)}
}

func (s *memRules) Create(_ context.Context, r *chatbot.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if r.ID == "" {
		r.ID = fmt.Sprintf("rule-%03d", s.seq)
	}
	cp := *r
	s.rules[r.ID] = &cp
	return nil
}

func (s *memRules) Find(_ context.Context, id string) (*chatbot.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rules[id]
	if !ok {
		return nil, chatbot.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *memRules) List(_ context.Context) ([]*chatbot.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*chatbot.Rule
	for _, r := range s.rules {
		cp := *r
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (s *memRules) Update(_ context.Context, r *chatbot.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rules[r.ID]; !ok {
		return chatbot.ErrNotFound
	}
	cp := *r
	s.rules[r.ID] = &cp
	return nil
}

func (s *memRules) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rules[id]; !ok {
		return chatbot.ErrNotFound
	}
	delete(s.rules, id)
	return nil
}

type memPosts struct {
	mu    sync.Mutex
	seq   int
	posts map[string]*content.Post
}

func newMemPosts() *memPosts {
	return &memPosts{posts: make(map[string]*content.Post)}
}

func (s *memPosts) Create(_ context.Context, p *content.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if p.ID == "" {
		p.ID = fmt.Sprintf("post-%03d", s.seq)
	}
	cp := *p
	s.posts[p.ID] = &cp
	return nil
}

func (s *memPosts) Find(_ context.Context, id string) (*content.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, content.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memPosts) List(_ context.Context) ([]*content.Post, error) {
	return s.filter(func(*content.Post) bool { return true }), nil
}

func (s *memPosts) ListPublished(_ context.Context) ([]*content.Post, error) {
	return s.filter(func(p *content.Post) bool { return p.Published }), nil
}

func (s *memPosts) ListByCategory(_ context.Context, category content.PostCategory, publishedOnly bool) ([]*content.Post, error) {
	return s.filter(func(p *content.Post) bool {
		if p.Category != category {
			return false
		}
		return !publishedOnly || p.Published
	}), nil
}

func (s *memPosts) Update(_ context.Context, p *content.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[p.ID]; !ok {
		return content.ErrNotFound
	}
	cp := *p
	s.posts[p.ID] = &cp
	return nil
}

func (s *memPosts) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.posts[id]; !ok {
		return content.ErrNotFound
	}
	delete(s.posts, id)
	return nil
}

func (s *memPosts) filter(keep func(*content.Post) bool) []*content.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []*content.Post
	for _, p := range s.posts {
		if keep(p) {
			cp := *p
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func testConfig() config.Config {
	return config.Config{
		Addr:            ":0",
		AuthSecret:      "test-secret-test-secret-32bytes!",
		TokenTTL:        24 * time.Hour,
		CookieName:      "aureon_token",
		CORSOrigin:      "http://localhost:5173",
		MaxBodyBytes:    1 << 20,
		RateLimitBurst:  100,
		RateLimitPerSec: 100,
	}
}

// newTestAPI wires the full HTTP layer over in-memory stores.
func newTestAPI(t *testing.T) *API {
	t.Helper()
	cfg := testConfig()

	issuer, err := auth.NewTokenIssuer(cfg.AuthSecret)
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}
	authSvc := auth.NewService(newMemAdmins(), newMemDenylist(), issuer)
	contactSvc := contact.NewService(newMemContacts())
	feedbackSvc := feedback.NewService(newMemFeedback())
	contentSvc := content.NewService(newMemPosts(), nil, nil, nil, nil)
	chatbotSvc := chatbot.NewService(newMemRules())

	return New(cfg, ReadyProbe{}, "test", authSvc, contactSvc, feedbackSvc, contentSvc, chatbotSvc)
}
