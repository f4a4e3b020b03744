package feedback

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("feedback: not found")

// Feedback is a client testimonial. It stays off the public site until
// an administrator sets Approved.
type Feedback struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name"`
	JobTitle    string    `json:"job_title"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	Approved    bool      `json:"is_approved"`
	SubmittedAt time.Time `json:"submitted_at"`
}
