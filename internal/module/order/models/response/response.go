package response

// SchoolOrderCreated is the wire contract for a successful order.
type SchoolOrderCreated struct {
	Success       bool    `json:"success"`
	InvoiceNumber string  `json:"invoiceNumber"`
	Total         float64 `json:"total"`
}

type APIError struct {
	Error string `json:"error"`
}
