package entity

import (
	"time"

	"github.com/google/uuid"
)

type SchoolOrder struct {
	ID            uuid.UUID `db:"id"`
	SchoolName    string    `db:"school_name"`
	ContactEmail  string    `db:"contact_email"`
	TotalAmount   float64   `db:"total_amount"`
	InvoiceNumber string    `db:"invoice_number"`
	CreatedAt     time.Time `db:"created_at"`
}

type OrderItem struct {
	ID       int64     `db:"id"`
	OrderID  uuid.UUID `db:"order_id"`
	Type     string    `db:"type"`
	Quantity int       `db:"quantity"`
	Price    float64   `db:"price"`
}
