package entity

import "time"

type Category string

func (c Category) String() string {
	return string(c)
}

const (
	CategoryAdult  Category = "adult"
	CategoryChild  Category = "child"
	CategorySenior Category = "senior"
	CategoryFamily Category = "family"
)

// TicketRecord is built once at submission and never mutated afterwards. It
// lives for the session and the rendered artifact only; nothing persists it.
// The JSON form is the QR payload.
type TicketRecord struct {
	ID          string    `json:"ticketId"`
	Name        string    `json:"name"`
	Age         int       `json:"age"`
	Gender      string    `json:"gender"`
	Category    Category  `json:"ticketType"`
	Price       float64   `json:"price"`
	VisitDate   time.Time `json:"visitDate"`
	PurchasedAt time.Time `json:"purchaseDate"`
	ValidUntil  time.Time `json:"validUntil"`
}
