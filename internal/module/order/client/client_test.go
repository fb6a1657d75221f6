package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"zoo-ticketing/config"
	"zoo-ticketing/internal/module/order/client"
	"zoo-ticketing/internal/module/order/models/request"
	ticketentity "zoo-ticketing/internal/module/ticket/models/entity"
	"zoo-ticketing/internal/module/ticket/pricing"
	"zoo-ticketing/internal/pkg/errors"
	"zoo-ticketing/internal/pkg/httpclient"
	log_internal "zoo-ticketing/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func newSubmitter(baseURL string) *client.Submitter {
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)

	cfg := &config.HttpClientConfig{Type: "consecutive", Timeout: 5, ConsecutiveFailures: 5}
	cb := httpclient.InitCircuitBreaker(cfg, cfg.Type)
	httpClient := httpclient.InitHttpClient(cfg, cb)

	return client.NewSubmitter(httpClient, baseURL, log_internal.GetLogger())
}

func filledForm() *client.OrderForm {
	form := client.NewOrderForm(pricing.Default())
	form.SchoolName = "Musterschule"
	form.ContactEmail = "office@musterschule.ch"
	form.SetQuantity(ticketentity.CategoryAdult, 2)
	form.SetQuantity(ticketentity.CategoryChild, 1)
	return form
}

func TestOrderFormRunningTotal(t *testing.T) {
	form := filledForm()

	assert.Equal(t, float64(75), form.Subtotal())
	assert.Equal(t, float64(60), form.Total())
	assert.Equal(t, "CHF 60.00 (20% discount applied)", form.DisplayTotal())
}

func TestOrderFormQuantityControls(t *testing.T) {
	form := client.NewOrderForm(pricing.Default())

	// decrement floors at zero
	form.Decrement(ticketentity.CategoryAdult)
	assert.Equal(t, 0, form.Quantity(ticketentity.CategoryAdult))

	// increment is unbounded upward
	for i := 0; i < 250; i++ {
		form.Increment(ticketentity.CategoryAdult)
	}
	assert.Equal(t, 250, form.Quantity(ticketentity.CategoryAdult))

	// direct entry floors at zero too
	form.SetQuantity(ticketentity.CategoryChild, -3)
	assert.Equal(t, 0, form.Quantity(ticketentity.CategoryChild))
}

func TestSubmitValidationOrder(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	}))
	defer srv.Close()

	submitter := newSubmitter(srv.URL)
	ctx := context.Background()

	t.Run("no tickets selected comes first", func(t *testing.T) {
		form := client.NewOrderForm(pricing.Default())
		// school name also empty: the ticket check must win
		_, err := submitter.Submit(ctx, form)

		var inputErr *errors.UserInputError
		assert.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "please select at least one ticket", inputErr.Reason)
	})

	t.Run("empty school name", func(t *testing.T) {
		form := client.NewOrderForm(pricing.Default())
		form.SetQuantity(ticketentity.CategoryAdult, 1)

		_, err := submitter.Submit(ctx, form)

		var inputErr *errors.UserInputError
		assert.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "please enter the school name", inputErr.Reason)
	})

	// validation failures never reach the network
	assert.Equal(t, int64(0), atomic.LoadInt64(&calls))
}

func TestSubmitSuccess(t *testing.T) {
	var received request.CreateSchoolOrder
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)

		w.Header().Set("Content-Type", "application/json")
		// server applies its own discount; 59.99 differs from the client estimate
		_, _ = w.Write([]byte(`{"success":true,"invoiceNumber":"INV-1714000000000","total":59.99}`))
	}))
	defer srv.Close()

	submitter := newSubmitter(srv.URL)
	form := filledForm()

	invoice, err := submitter.Submit(context.Background(), form)
	assert.NoError(t, err)

	// the submitted payload carries every line in display order
	assert.Equal(t, "Musterschule", received.SchoolName)
	assert.Len(t, received.Tickets, 4)
	assert.Equal(t, request.TicketLine{Type: "adult", Quantity: 2, Price: 30}, received.Tickets[0])

	// the server's total is authoritative, not the 60.00 estimate
	assert.Equal(t, 59.99, invoice.Total)
	assert.Equal(t, "INV-1714000000000", invoice.Number)
	assert.Equal(t, "Musterschule", invoice.SchoolName)

	// the form resets after success
	assert.Equal(t, 0, form.Quantity(ticketentity.CategoryAdult))
	assert.Equal(t, "", form.SchoolName)
	assert.Equal(t, float64(0), form.Total())
}

func TestSubmitServerFailureKeepsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
	}))
	defer srv.Close()

	submitter := newSubmitter(srv.URL)
	form := filledForm()

	_, err := submitter.Submit(context.Background(), form)

	var svcErr *errors.ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "booking failed, please try again", svcErr.Reason)

	// no order was placed, the form stays populated for resubmission
	assert.Equal(t, 2, form.Quantity(ticketentity.CategoryAdult))
	assert.Equal(t, "Musterschule", form.SchoolName)
}

func TestSubmitNetworkFailureKeepsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	submitter := newSubmitter(srv.URL)
	form := filledForm()

	_, err := submitter.Submit(context.Background(), form)

	var svcErr *errors.ServiceError
	assert.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Musterschule", form.SchoolName)
}

func TestInvoiceRenderHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"invoiceNumber":"INV-42","total":60}`))
	}))
	defer srv.Close()

	submitter := newSubmitter(srv.URL)
	invoice, err := submitter.Submit(context.Background(), filledForm())
	assert.NoError(t, err)

	html, err := invoice.RenderHTML()
	assert.NoError(t, err)
	assert.Contains(t, html, "Invoice INV-42")
	assert.Contains(t, html, "School: Musterschule")
	assert.Contains(t, html, "Total: CHF 60.00")
}
