package auth

import "time"

// Admin is the single credential class the back-office knows about.
// PasswordHash is for internal verification only and never reaches a
// JSON response.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the decoded result of a verified session token.
type Identity struct {
	AdminID  string `json:"admin_id"`
	Username string `json:"username"`
}

// RevocationEntry records a token denied before its natural expiry.
// Entries stop counting 24 hours after insertion; by then the token
// itself has expired, so the list never needs to grow without bound.
type RevocationEntry struct {
	Token      string    `json:"-"`
	InsertedAt time.Time `json:"inserted_at"`
}
