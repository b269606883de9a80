package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cardapio-be/internal/coupon"
	"cardapio-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) (*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByBusiness(ctx context.Context, businessID string, filter ListFilter) ([]*Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*Order, error)
	ListByDriver(ctx context.Context, driverID string, statuses []Status) ([]*Order, error)
	UpdateStatusTx(ctx context.Context, t Transition) error
	AssignDriver(ctx context.Context, businessID, orderID, driverID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `o.id, o.order_number, o.business_id, o.customer_id, o.customer_name, o.customer_phone,
	o.delivery_type, o.customer_address, o.customer_complement, o.customer_reference,
	o.payment_method, o.change_for, o.notes, o.subtotal, o.delivery_fee, o.discount, o.total,
	o.coupon_code, o.status, o.driver_id, o.created_at, o.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (*Order, error) {
	var o Order
	err := s.Scan(
		&o.ID, &o.OrderNumber, &o.BusinessID, &o.CustomerID, &o.CustomerName, &o.CustomerPhone,
		&o.DeliveryType, &o.CustomerAddress, &o.CustomerComplement, &o.CustomerReference,
		&o.PaymentMethod, &o.ChangeFor, &o.Notes, &o.Subtotal, &o.DeliveryFee, &o.Discount, &o.Total,
		&o.CouponCode, &o.Status, &o.DriverID, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrderTx writes the header, its items, the first history entry and
// the coupon usage together. Any failure leaves nothing behind.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// 1. Insert order
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			business_id, customer_id, customer_name, customer_phone, delivery_type,
			customer_address, customer_complement, customer_reference, payment_method,
			change_for, notes, subtotal, delivery_fee, discount, total, coupon_code, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING id, order_number, created_at, updated_at
	`,
		o.BusinessID,
		o.CustomerID,
		o.CustomerName,
		o.CustomerPhone,
		string(o.DeliveryType),
		o.CustomerAddress,
		o.CustomerComplement,
		o.CustomerReference,
		string(o.PaymentMethod),
		o.ChangeFor,
		o.Notes,
		o.Subtotal,
		o.DeliveryFee,
		o.Discount,
		o.Total,
		o.CouponCode,
		string(o.Status),
	).Scan(&o.ID, &o.OrderNumber, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// 2. Insert item snapshots
	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (
				order_id, product_id, product_name, quantity, unit_price, subtotal, addons, notes
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
			RETURNING id
		`,
			o.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
			item.Addons,
			item.Notes,
		).Scan(&item.ID)
		if err != nil {
			log.Error("failed to insert order item", zap.Int("index", i), zap.Error(err))
			return nil, err
		}
	}

	// 3. Initial history
	entry := HistoryEntry{OrderID: o.ID, Status: o.Status}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO order_history (order_id, status, notes)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, o.ID, string(o.Status), nil).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		log.Error("failed to insert order history", zap.Error(err))
		return nil, err
	}
	o.History = []HistoryEntry{entry}

	// 4. Consume the coupon
	if o.CouponCode != nil {
		res, err := tx.ExecContext(ctx, `
			UPDATE coupons
			SET current_uses = COALESCE(current_uses, 0) + 1
			WHERE business_id = $1
			  AND UPPER(code) = $2
			  AND (max_uses IS NULL OR COALESCE(current_uses, 0) < max_uses)
		`, o.BusinessID, coupon.NormalizeCode(*o.CouponCode))
		if err != nil {
			log.Error("failed to consume coupon", zap.Error(err))
			return nil, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			log.Info("coupon exhausted during checkout")
			return nil, coupon.ErrCouponNotFound
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order", zap.Error(err))
		return nil, err
	}

	return o, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetOrderByID"),
		zap.String("order_id", id),
	)

	o, err := scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		log.Error("failed to get order", zap.Error(err))
		return nil, err
	}

	items, err := r.itemsFor(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, status, notes, created_at
		FROM order_history
		WHERE order_id = $1
		ORDER BY created_at ASC
	`, o.ID)
	if err != nil {
		log.Error("failed to load order history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	o.History = []HistoryEntry{}
	for rows.Next() {
		var h HistoryEntry
		if err := rows.Scan(&h.ID, &h.OrderID, &h.Status, &h.Notes, &h.CreatedAt); err != nil {
			return nil, err
		}
		o.History = append(o.History, h)
	}
	return o, rows.Err()
}

/* ---------- LISTS ---------- */

func (r *repository) ListByBusiness(ctx context.Context, businessID string, filter ListFilter) ([]*Order, error) {
	where := []string{"o.business_id = $1"}
	args := []interface{}{businessID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		where = append(where, fmt.Sprintf("o.status = $%d", len(args)))
	}
	return r.list(ctx, "ListByBusiness", where, args)
}

func (r *repository) ListByCustomer(ctx context.Context, customerID string) ([]*Order, error) {
	return r.list(ctx, "ListByCustomer", []string{"o.customer_id = $1"}, []interface{}{customerID})
}

func (r *repository) ListByDriver(ctx context.Context, driverID string, statuses []Status) ([]*Order, error) {
	where := []string{"o.driver_id = $1"}
	args := []interface{}{driverID}

	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		args = append(args, pq.Array(values))
		where = append(where, fmt.Sprintf("o.status = ANY($%d)", len(args)))
	}
	return r.list(ctx, "ListByDriver", where, args)
}

func (r *repository) list(ctx context.Context, method string, where []string, args []interface{}) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", method),
	)

	query := `SELECT ` + orderColumns + ` FROM orders o WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY o.created_at DESC`

	log.Debug("executing orders query", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed "+method, zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	ids := []string{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = items[o.ID]
	}
	return orders, nil
}

func (r *repository) itemsFor(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, subtotal, addons, notes
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY created_at ASC
	`, pq.Array(orderIDs))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]Item, len(orderIDs))
	for _, id := range orderIDs {
		out[id] = []Item{}
	}
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity,
			&it.UnitPrice, &it.Subtotal, &it.Addons, &it.Notes,
		); err != nil {
			return nil, err
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

/* ---------- WRITES ---------- */

// UpdateStatusTx applies t only if the order is still in t.From, and
// records it in the history within the same transaction.
func (r *repository) UpdateStatusTx(ctx context.Context, t Transition) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateStatusTx"),
		zap.String("order_id", t.OrderID),
		zap.String("from", string(t.From)),
		zap.String("to", string(t.To)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`, string(t.To), t.OrderID, string(t.From))
	if err != nil {
		log.Error("failed to update status", zap.Error(err))
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStatusConflict
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO order_history (order_id, status, notes)
		VALUES ($1, $2, $3)
	`, t.OrderID, string(t.To), t.Notes); err != nil {
		log.Error("failed to insert history", zap.Error(err))
		return err
	}

	if t.CreditDriver != nil {
		if _, err := tx.ExecContext(ctx, `
			UPDATE delivery_drivers
			SET total_deliveries = COALESCE(total_deliveries, 0) + 1, updated_at = NOW()
			WHERE id = $1
		`, *t.CreditDriver); err != nil {
			log.Error("failed to credit driver", zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

func (r *repository) AssignDriver(ctx context.Context, businessID, orderID, driverID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET driver_id = $1, updated_at = NOW()
		WHERE id = $2 AND business_id = $3
	`, driverID, orderID, businessID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to assign driver", zap.String("order_id", orderID), zap.Error(err))
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
