package usecases

import (
	"context"
	"fmt"
	"math"
	"time"

	"zoo-ticketing/internal/module/order/models/entity"
	"zoo-ticketing/internal/module/order/models/request"
	"zoo-ticketing/internal/module/order/models/response"
	"zoo-ticketing/internal/module/order/repositories"
	"zoo-ticketing/internal/pkg/errors"
	"zoo-ticketing/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// groupDiscountRate is the school group rate: 20% off the subtotal. The
// server is the sole authority for the discounted total; whatever the client
// displayed is only an estimate.
const groupDiscountRate = 0.8

const TopicOrderCreated = "school_order_created"

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	now     func() time.Time
}

type Usecase interface {
	CreateSchoolOrder(ctx context.Context, payload *request.CreateSchoolOrder) (response.SchoolOrderCreated, error)
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publisher,
		now:     time.Now,
	}
}

func (u *usecase) CreateSchoolOrder(ctx context.Context, payload *request.CreateSchoolOrder) (response.SchoolOrderCreated, error) {
	var subtotal float64
	for _, line := range payload.Tickets {
		subtotal += float64(line.Quantity) * line.Price
	}
	total := round2(subtotal * groupDiscountRate)

	order := entity.SchoolOrder{
		ID:            uuid.New(),
		SchoolName:    payload.SchoolName,
		ContactEmail:  payload.ContactEmail,
		TotalAmount:   total,
		InvoiceNumber: fmt.Sprintf("INV-%d", u.now().UnixMilli()),
		CreatedAt:     u.now(),
	}

	items := make([]entity.OrderItem, 0, len(payload.Tickets))
	for _, line := range payload.Tickets {
		items = append(items, entity.OrderItem{
			OrderID:  order.ID,
			Type:     line.Type,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	if err := u.repo.CreateOrderWithItems(ctx, order, items); err != nil {
		return response.SchoolOrderCreated{}, errors.InternalServerError("error create school order")
	}

	u.publishOrderCreated(ctx, order)

	return response.SchoolOrderCreated{
		Success:       true,
		InvoiceNumber: order.InvoiceNumber,
		Total:         order.TotalAmount,
	}, nil
}

// publishOrderCreated hands the order to the notification consumer. The order
// is already committed, so a publish failure is logged and swallowed.
func (u *usecase) publishOrderCreated(ctx context.Context, order entity.SchoolOrder) {
	if u.publish == nil {
		return
	}

	evt := request.OrderCreated{
		InvoiceNumber: order.InvoiceNumber,
		SchoolName:    order.SchoolName,
		ContactEmail:  order.ContactEmail,
		Total:         order.TotalAmount,
	}
	jsonPayload, err := json.Marshal(evt)
	if err != nil {
		u.log.Error(ctx, "error marshal order created event", "error", err)
		return
	}

	if err := u.publish.Publish(TopicOrderCreated, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish order created event", "error", err, "invoice_number", order.InvoiceNumber)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
