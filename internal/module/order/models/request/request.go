package request

// TicketLine is one (category, quantity) line of a school order. The client
// echoes the unit price it displayed; the server still prices the order
// itself.
type TicketLine struct {
	Type     string  `json:"type" validate:"required"`
	Quantity int     `json:"quantity" validate:"min=0"`
	Price    float64 `json:"price" validate:"min=0"`
}

type CreateSchoolOrder struct {
	SchoolName   string       `json:"schoolName" validate:"required"`
	ContactEmail string       `json:"contactEmail" validate:"required,email"`
	Tickets      []TicketLine `json:"tickets" validate:"required,dive"`
}

// OrderCreated is the event payload published after an order is persisted,
// consumed by the confirmation notifier.
type OrderCreated struct {
	InvoiceNumber string  `json:"invoice_number"`
	SchoolName    string  `json:"school_name"`
	ContactEmail  string  `json:"contact_email"`
	Total         float64 `json:"total"`
}
