package handler_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"zoo-ticketing/internal/module/order/handler"
	"zoo-ticketing/internal/module/order/mocks"
	"zoo-ticketing/internal/module/order/models/response"
	"zoo-ticketing/internal/pkg/errors"
	log_internal "zoo-ticketing/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	h   *handler.OrderHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup() {
	ucm = &mocks.Usecase{}
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)

	h = &handler.OrderHandler{
		Log:       log_internal.GetLogger(),
		Validator: validator.New(),
		Usecase:   ucm,
	}

	app = fiber.New()
	app.Post("/api/school-orders", h.CreateSchoolOrder)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func postOrder(t *testing.T, body []byte) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/school-orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))

	return resp.StatusCode, decoded
}

func TestCreateSchoolOrder(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := map[string]interface{}{
			"schoolName":   "Musterschule",
			"contactEmail": "office@musterschule.ch",
			"tickets": []map[string]interface{}{
				{"type": "adult", "quantity": 2, "price": 30},
				{"type": "child", "quantity": 1, "price": 15},
			},
		}
		body, _ := json.Marshal(payload)

		ucm.On("CreateSchoolOrder", mock.Anything, mock.Anything).
			Return(response.SchoolOrderCreated{Success: true, InvoiceNumber: "INV-1714000000000", Total: 60}, nil).Once()

		status, decoded := postOrder(t, body)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, decoded["success"])
		assert.Equal(t, "INV-1714000000000", decoded["invoiceNumber"])
		assert.Equal(t, float64(60), decoded["total"])
	})
}

func TestCreateSchoolOrderMissingFields(t *testing.T) {
	setup()
	defer teardown()

	testCases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{
			name: "missing school name",
			payload: map[string]interface{}{
				"contactEmail": "office@musterschule.ch",
				"tickets":      []map[string]interface{}{{"type": "adult", "quantity": 1, "price": 30}},
			},
		},
		{
			name: "missing contact email",
			payload: map[string]interface{}{
				"schoolName": "Musterschule",
				"tickets":    []map[string]interface{}{{"type": "adult", "quantity": 1, "price": 30}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.payload)

			status, decoded := postOrder(t, body)

			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, "school name and contact email are required", decoded["error"])
			ucm.AssertNotCalled(t, "CreateSchoolOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateSchoolOrderInvalidBody(t *testing.T) {
	setup()
	defer teardown()

	status, decoded := postOrder(t, []byte("{not json"))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid request body", decoded["error"])
}

func TestCreateSchoolOrderInternalFailure(t *testing.T) {
	setup()
	defer teardown()

	payload := map[string]interface{}{
		"schoolName":   "Musterschule",
		"contactEmail": "office@musterschule.ch",
		"tickets":      []map[string]interface{}{{"type": "adult", "quantity": 1, "price": 30}},
	}
	body, _ := json.Marshal(payload)

	ucm.On("CreateSchoolOrder", mock.Anything, mock.Anything).
		Return(response.SchoolOrderCreated{}, errors.InternalServerError("error create school order")).Once()

	status, decoded := postOrder(t, body)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	// generic message only, nothing internal leaks
	assert.Equal(t, "error create school order", decoded["error"])
}
