package model

// ContactMessage represents a booking inquiry submitted via the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Date      string    `json:"date,omitempty"` // requested event date, free text
	Message   string    `json:"message"`
	CreatedAt Timestamp `json:"created_at"`
}

// ContactListOptions carries pagination parameters for listing contact messages.
// Messages are always returned newest first.
type ContactListOptions struct {
	Limit  int
	Offset int
}
