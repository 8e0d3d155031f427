package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"go-table-order/database"
	"go-table-order/models"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrBlankCustomerName  = errors.New("customer name is required")
	ErrMissingTableNumber = errors.New("table number is required")
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrTerminalStatus     = errors.New("order is already paid")
)

type OrderService struct {
	store Store
	log   *slog.Logger
}

func NewOrderService(store Store, log *slog.Logger) *OrderService {
	return &OrderService{store: store, log: log}
}

// Submit flushes a cart into the order store. If the customer already has
// a pending order on the table (name compared case-insensitively) the
// cart lines are appended to it, leaving status and timestamp alone;
// otherwise a new pending order is created. merged reports which branch
// ran. The cart itself is not mutated; the caller clears the session cart
// only after a successful return.
func (s *OrderService) Submit(ctx context.Context, tableNumber, customerName string, cart models.Cart) (models.Order, bool, error) {
	customerName = strings.TrimSpace(customerName)
	if cart.Empty() {
		return models.Order{}, false, ErrEmptyCart
	}
	if customerName == "" {
		return models.Order{}, false, ErrBlankCustomerName
	}
	if strings.TrimSpace(tableNumber) == "" {
		return models.Order{}, false, ErrMissingTableNumber
	}

	pending, err := s.listOrders(ctx, database.Query{
		Filter: map[string]any{"table_number": tableNumber, "status": string(models.StatusPending)},
		Sort:   "-timestamp",
	})
	if err != nil {
		return models.Order{}, false, err
	}

	for _, existing := range pending {
		if !strings.EqualFold(strings.TrimSpace(existing.CustomerName), customerName) {
			continue
		}
		items := append(append([]models.OrderLine{}, existing.Items...), cart.OrderLines()...)
		rec, err := s.store.Update(ctx, OrdersCollection, existing.ID, map[string]any{"items": items})
		if err != nil {
			return models.Order{}, false, fmt.Errorf("merge order: %w", err)
		}
		updated, err := decodeOrder(rec)
		if err != nil {
			return models.Order{}, false, err
		}
		s.log.Info("order merged", "order_id", updated.ID, "table", tableNumber, "customer", customerName, "lines", len(cart.Lines))
		return updated, true, nil
	}

	order := models.Order{
		TableNumber:  tableNumber,
		CustomerName: customerName,
		Items:        cart.OrderLines(),
		Status:       models.StatusPending,
		Timestamp:    time.Now().UTC(),
	}
	rec, err := s.store.Create(ctx, OrdersCollection, order)
	if err != nil {
		return models.Order{}, false, fmt.Errorf("create order: %w", err)
	}
	created, err := decodeOrder(rec)
	if err != nil {
		return models.Order{}, false, err
	}
	s.log.Info("order created", "order_id", created.ID, "table", tableNumber, "customer", customerName, "total", created.Total())
	return created, false, nil
}

// List returns every order, newest first. table narrows to one table when
// non-empty.
func (s *OrderService) List(ctx context.Context, table string) ([]models.Order, error) {
	q := database.Query{Sort: "-timestamp"}
	if table != "" {
		q.Filter = map[string]any{"table_number": table}
	}
	return s.listOrders(ctx, q)
}

func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	orders, err := s.listOrders(ctx, database.Query{Filter: map[string]any{"id": id}})
	if err != nil {
		return models.Order{}, err
	}
	if len(orders) == 0 {
		return models.Order{}, database.ErrNotFound
	}
	return orders[0], nil
}

// Advance moves the order one step forward along the status chain.
func (s *OrderService) Advance(ctx context.Context, id string) (models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	next, ok := order.Status.Next()
	if !ok {
		if order.Status.Terminal() {
			return models.Order{}, ErrTerminalStatus
		}
		return models.Order{}, ErrUnknownStatus
	}
	return s.setStatus(ctx, id, order.Status, next)
}

// Override sets any defined status directly. This is the explicit staff
// control for reopening an earlier stage; it bypasses the forward-only
// rule on purpose and is logged as an override.
func (s *OrderService) Override(ctx context.Context, id string, to models.Status) (models.Order, error) {
	if !to.Valid() {
		return models.Order{}, ErrUnknownStatus
	}
	order, err := s.Get(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if !models.ValidTransition(order.Status, to) {
		s.log.Warn("status override", "order_id", id, "from", order.Status, "to", to)
	}
	return s.setStatus(ctx, id, order.Status, to)
}

func (s *OrderService) setStatus(ctx context.Context, id string, from, to models.Status) (models.Order, error) {
	rec, err := s.store.Update(ctx, OrdersCollection, id, map[string]any{"status": string(to)})
	if err != nil {
		return models.Order{}, fmt.Errorf("update status: %w", err)
	}
	updated, err := decodeOrder(rec)
	if err != nil {
		return models.Order{}, err
	}
	s.log.Info("order status changed", "order_id", id, "from", from, "to", to)
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, OrdersCollection, id); err != nil {
		return err
	}
	s.log.Info("order deleted", "order_id", id)
	return nil
}

func (s *OrderService) listOrders(ctx context.Context, q database.Query) ([]models.Order, error) {
	records, err := s.store.List(ctx, OrdersCollection, q)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		order, err := decodeOrder(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func decodeOrder(rec database.Record) (models.Order, error) {
	var order models.Order
	if err := bson.Unmarshal(rec, &order); err != nil {
		return models.Order{}, fmt.Errorf("decode order: %w", err)
	}
	return order, nil
}
