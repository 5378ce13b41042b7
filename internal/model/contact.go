package model

import "time"

// ContactMessage represents a message submitted via the public contact form.
// Phone is nil when the sender left the optional phone field empty.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListOptions carries filter and pagination parameters for the admin inbox.
type ContactListOptions struct {
	// Unread restricts the listing to unread messages when true.
	Unread bool
	Limit  int
	Offset int
}
