package client

import (
	"fmt"

	"zoo-ticketing/internal/module/order/models/request"
	ticketentity "zoo-ticketing/internal/module/ticket/models/entity"
	"zoo-ticketing/internal/module/ticket/pricing"
)

// discountRate shown to the user; the server recomputes it authoritatively.
const discountRate = 0.8

// OrderForm owns one line item per category. Quantities mutate live as the
// group form counters are adjusted; the form belongs to a single UI
// goroutine, so no locking.
type OrderForm struct {
	SchoolName   string
	ContactEmail string

	schedule   pricing.Schedule
	quantities map[ticketentity.Category]int
}

func NewOrderForm(schedule pricing.Schedule) *OrderForm {
	f := &OrderForm{
		schedule:   schedule,
		quantities: make(map[ticketentity.Category]int),
	}
	for _, c := range schedule.Categories() {
		f.quantities[c] = 0
	}
	return f
}

func (f *OrderForm) Quantity(category ticketentity.Category) int {
	return f.quantities[category]
}

// Increment is unbounded upward.
func (f *OrderForm) Increment(category ticketentity.Category) {
	if _, ok := f.quantities[category]; ok {
		f.quantities[category]++
	}
}

// Decrement floors at zero.
func (f *OrderForm) Decrement(category ticketentity.Category) {
	if q, ok := f.quantities[category]; ok && q > 0 {
		f.quantities[category] = q - 1
	}
}

// SetQuantity covers direct numeric entry. It floors at zero; everything
// else is re-validated at submission no matter how it was entered.
func (f *OrderForm) SetQuantity(category ticketentity.Category, quantity int) {
	if _, ok := f.quantities[category]; ok {
		if quantity < 0 {
			quantity = 0
		}
		f.quantities[category] = quantity
	}
}

func (f *OrderForm) Subtotal() float64 {
	var subtotal float64
	for _, c := range f.schedule.Categories() {
		price, _ := f.schedule.PriceOf(c)
		subtotal += float64(f.quantities[c]) * price
	}
	return subtotal
}

// Total is the discounted running total the form displays.
func (f *OrderForm) Total() float64 {
	return f.Subtotal() * discountRate
}

// DisplayTotal is the live running-total line, 2 decimal places with the
// discount rate shown.
func (f *OrderForm) DisplayTotal() string {
	return fmt.Sprintf("CHF %.2f (20%% discount applied)", f.Total())
}

func (f *OrderForm) hasTickets() bool {
	for _, q := range f.quantities {
		if q > 0 {
			return true
		}
	}
	return false
}

// lineItems assembles the request lines in stable category order.
func (f *OrderForm) lineItems() []request.TicketLine {
	lines := make([]request.TicketLine, 0, len(f.quantities))
	for _, c := range f.schedule.Categories() {
		price, _ := f.schedule.PriceOf(c)
		lines = append(lines, request.TicketLine{
			Type:     c.String(),
			Quantity: f.quantities[c],
			Price:    price,
		})
	}
	return lines
}

// Reset zeroes the quantities and the name fields, as after a successful
// submission.
func (f *OrderForm) Reset() {
	f.SchoolName = ""
	f.ContactEmail = ""
	for c := range f.quantities {
		f.quantities[c] = 0
	}
}
