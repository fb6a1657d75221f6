package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"zoo-ticketing/internal/module/order/models/request"
	"zoo-ticketing/internal/module/order/models/response"
	"zoo-ticketing/internal/pkg/errors"
	"zoo-ticketing/internal/pkg/log"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

// Submitter is the school-group order pipeline: ordered validation, a single
// non-retried POST to the order service, and the printable invoice on
// success.
type Submitter struct {
	httpClient *circuit.HTTPClient
	baseURL    string
	log        log.Logger
	now        func() time.Time
}

func NewSubmitter(httpClient *circuit.HTTPClient, baseURL string, logger log.Logger) *Submitter {
	return &Submitter{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        logger,
		now:        time.Now,
	}
}

// Submit validates the form and sends the order once. Validation failures
// abort before any request is made. On transport or server failure the form
// is left populated so the user can resubmit; the order is only considered
// placed when the service says so. The server's total is authoritative.
func (s *Submitter) Submit(ctx context.Context, form *OrderForm) (*Invoice, error) {
	if !form.hasTickets() {
		return nil, &errors.UserInputError{Reason: "please select at least one ticket"}
	}
	if strings.TrimSpace(form.SchoolName) == "" {
		return nil, &errors.UserInputError{Reason: "please enter the school name"}
	}

	payload := request.CreateSchoolOrder{
		SchoolName:   form.SchoolName,
		ContactEmail: form.ContactEmail,
		Tickets:      form.lineItems(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &errors.ServiceError{Reason: "booking failed, please try again", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/school-orders", bytes.NewReader(body))
	if err != nil {
		return nil, &errors.ServiceError{Reason: "booking failed, please try again", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Error(ctx, "error submit school order", "error", err)
		return nil, &errors.ServiceError{Reason: "booking failed, please try again", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr response.APIError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		s.log.Error(ctx, "order service rejected school order", "status", resp.StatusCode, "error", apiErr.Error)
		return nil, &errors.ServiceError{Reason: "booking failed, please try again"}
	}

	var out response.SchoolOrderCreated
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &errors.ServiceError{Reason: "booking failed, please try again", Err: err}
	}
	if !out.Success {
		return nil, &errors.ServiceError{Reason: "booking failed, please try again"}
	}

	invoice := &Invoice{
		Number:     out.InvoiceNumber,
		SchoolName: form.SchoolName,
		Date:       s.now(),
		Total:      out.Total,
	}

	s.log.Info(ctx, "school order placed",
		"invoice_number", invoice.Number,
		"total", fmt.Sprintf("%.2f", invoice.Total),
	)

	// only now is the form cleared; failures above leave it populated
	form.Reset()

	return invoice, nil
}
