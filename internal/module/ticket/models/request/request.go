package request

import "time"

// TicketForm carries the visitor form fields while the pipeline is
// collecting. VisitDate is zeroed again when a past date is rejected.
type TicketForm struct {
	Name      string    `json:"name" validate:"required"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Category  string    `json:"ticket_type" validate:"required"`
	VisitDate time.Time `json:"visit_date" validate:"required"`
}
