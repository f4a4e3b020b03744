package contact

import "context"

// Store persists contact requests. Email and phone are unique; Create
// reports collisions as ErrDuplicate.
type Store interface {
	Create(ctx context.Context, req *Request) error
	Find(ctx context.Context, id string) (*Request, error)
	FindByEmail(ctx context.Context, email string) (*Request, error)
	FindByPhone(ctx context.Context, phone string) (*Request, error)
	List(ctx context.Context) ([]*Request, error)
	ListByField(ctx context.Context, field Field, value string) ([]*Request, error)
	Search(ctx context.Context, query string) ([]*Request, error)
	Recent(ctx context.Context, limit int) ([]*Request, error)
	Update(ctx context.Context, req *Request) error
	Delete(ctx context.Context, id string) (*Request, error)
	Count(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*Stats, error)
}

// Field selects the column ListByField filters on. Keeping it a closed
// enum keeps user input out of SQL identifiers.
type Field string

const (
	FieldName    Field = "name"
	FieldCompany Field = "company_name"
	FieldCountry Field = "country"
	FieldJob     Field = "job_title"
)
