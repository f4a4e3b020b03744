package contact

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("contact: not found")
	ErrDuplicate = errors.New("contact: email or phone already exists")
)

// Request is an inbound contact request from the public site form.
type Request struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CompanyName string    `json:"company_name"`
	Country     string    `json:"country"`
	JobTitle    string    `json:"job_title"`
	Messages    string    `json:"messages"`
	CreatedAt   time.Time `json:"created_at"`
}

// Stats summarizes intake volume for the admin dashboard.
type Stats struct {
	Total     int            `json:"total"`
	LastWeek  int            `json:"last_week"`
	ByCountry map[string]int `json:"by_country"`
}
