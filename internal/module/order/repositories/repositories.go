package repositories

import (
	"context"
	"database/sql"

	"zoo-ticketing/internal/module/order/models/entity"
	"zoo-ticketing/internal/pkg/errors"
	"zoo-ticketing/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// CreateOrderWithItems persists the order and all its line items as one
	// atomic unit. A partial write (order without items) is never observable.
	CreateOrderWithItems(ctx context.Context, order entity.SchoolOrder, items []entity.OrderItem) error
	FindOrderByInvoiceNumber(ctx context.Context, invoiceNumber string) (entity.SchoolOrder, error)
	FindItemsByOrderID(ctx context.Context, orderID string) ([]entity.OrderItem, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// CreateOrderWithItems implements Repositories.
func (r *repositories) CreateOrderWithItems(ctx context.Context, order entity.SchoolOrder, items []entity.OrderItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", "error", err)
		return errors.InternalServerError("error starting transaction")
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO school_orders (id, school_name, contact_email, total_amount, invoice_number, created_at)
		VALUES (:id, :school_name, :contact_email, :total_amount, :invoice_number, :created_at)
	`, order)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error inserting school order", "error", err)
		return errors.InternalServerError("error creating school order")
	}

	for _, item := range items {
		item.OrderID = order.ID
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO school_order_items (order_id, type, quantity, price)
			VALUES (:order_id, :type, :quantity, :price)
		`, item)
		if err != nil {
			tx.Rollback()
			r.log.Error(ctx, "error inserting order item", "error", err, "type", item.Type)
			return errors.InternalServerError("error creating school order")
		}
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", "error", err)
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// FindOrderByInvoiceNumber implements Repositories.
func (r *repositories) FindOrderByInvoiceNumber(ctx context.Context, invoiceNumber string) (entity.SchoolOrder, error) {
	query := `SELECT id, school_name, contact_email, total_amount, invoice_number, created_at FROM school_orders WHERE invoice_number = $1`
	var order entity.SchoolOrder
	err := r.db.GetContext(ctx, &order, query, invoiceNumber)
	if err == sql.ErrNoRows {
		return entity.SchoolOrder{}, nil
	}
	if err != nil {
		r.log.Error(ctx, "error find order by invoice number", "error", err)
		return entity.SchoolOrder{}, errors.InternalServerError("error find order by invoice number")
	}
	return order, nil
}

// FindItemsByOrderID implements Repositories.
func (r *repositories) FindItemsByOrderID(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	query := `SELECT id, order_id, type, quantity, price FROM school_order_items WHERE order_id = $1`
	var items []entity.OrderItem
	if err := r.db.SelectContext(ctx, &items, query, orderID); err != nil {
		r.log.Error(ctx, "error find items by order id", "error", err)
		return nil, errors.InternalServerError("error find items by order id")
	}
	return items, nil
}
