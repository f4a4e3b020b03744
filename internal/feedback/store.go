package feedback

import "context"

// Store persists testimonials.
type Store interface {
	Create(ctx context.Context, fb *Feedback) error
	Find(ctx context.Context, id string) (*Feedback, error)
	List(ctx context.Context) ([]*Feedback, error)
	ListApproved(ctx context.Context) ([]*Feedback, error)
	Recent(ctx context.Context, limit int) ([]*Feedback, error)
	ListByName(ctx context.Context, name string) ([]*Feedback, error)
	ListByCompany(ctx context.Context, company string) ([]*Feedback, error)
	Update(ctx context.Context, fb *Feedback) error
	Delete(ctx context.Context, id string) (*Feedback, error)
}
