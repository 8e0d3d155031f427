package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"go-table-order/database"
	"go-table-order/models"
)

// BoardOrder is an order as the kitchen sees it: the record plus the one
// forward action staff may take on it. Delete is always available and is
// not repeated per order.
type BoardOrder struct {
	models.Order
	NextStatus models.Status `json:"nextStatus,omitempty"`
}

// BoardEvent is what the board forwards to its broadcast hook after it
// has applied a change-feed event.
type BoardEvent struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id"`
}

// KitchenBoard is the staff read model. It loads both collections once,
// then keeps itself current by applying targeted upserts and deletes from
// the store's change feed; it never refetches the full list on an event.
type KitchenBoard struct {
	store     Store
	log       *slog.Logger
	broadcast func(BoardEvent)

	mu     sync.RWMutex
	orders []models.Order
	calls  []models.WaiterCall

	unsubOrders func()
	unsubCalls  func()
}

// NewKitchenBoard builds the board. broadcast may be nil; when set it is
// invoked after every applied event (the websocket hub hangs off it).
func NewKitchenBoard(store Store, log *slog.Logger, broadcast func(BoardEvent)) *KitchenBoard {
	if broadcast == nil {
		broadcast = func(BoardEvent) {}
	}
	return &KitchenBoard{store: store, log: log, broadcast: broadcast}
}

// Start loads both collections newest-first and subscribes to their
// change feeds. ctx bounds the subscriptions' lifetime.
func (b *KitchenBoard) Start(ctx context.Context) error {
	orders, err := b.loadOrders(ctx)
	if err != nil {
		return err
	}
	calls, err := b.loadCalls(ctx)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.orders = orders
	b.calls = calls
	b.mu.Unlock()

	b.unsubOrders, err = b.store.Subscribe(ctx, OrdersCollection, "*", b.ApplyOrderEvent)
	if err != nil {
		return fmt.Errorf("subscribe orders: %w", err)
	}
	b.unsubCalls, err = b.store.Subscribe(ctx, WaiterCallsCollection, "*", b.ApplyCallEvent)
	if err != nil {
		b.unsubOrders()
		return fmt.Errorf("subscribe waiter calls: %w", err)
	}
	b.log.Info("kitchen board started", "orders", len(orders), "calls", len(calls))
	return nil
}

func (b *KitchenBoard) Stop() {
	if b.unsubOrders != nil {
		b.unsubOrders()
	}
	if b.unsubCalls != nil {
		b.unsubCalls()
	}
}

// Orders returns the board's orders, newest first, each with its single
// valid forward action. Paid orders stay listed until staff delete them.
func (b *KitchenBoard) Orders() []BoardOrder {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]BoardOrder, 0, len(b.orders))
	for _, o := range b.orders {
		bo := BoardOrder{Order: o}
		if next, ok := o.Status.Next(); ok {
			bo.NextStatus = next
		}
		out = append(out, bo)
	}
	return out
}

func (b *KitchenBoard) Calls() []models.WaiterCall {
	b.mu.RLock()
	defer b.mu.RUnlock()
	calls := make([]models.WaiterCall, len(b.calls))
	copy(calls, b.calls)
	return calls
}

// ApplyOrderEvent upserts or removes one order by id.
func (b *KitchenBoard) ApplyOrderEvent(ev database.Event) {
	if ev.Action == database.ActionDelete {
		b.mu.Lock()
		b.orders = removeOrder(b.orders, ev.ID)
		b.mu.Unlock()
		b.broadcast(BoardEvent{Collection: OrdersCollection, Action: ev.Action, ID: ev.ID})
		return
	}
	var order models.Order
	if err := bson.Unmarshal(ev.Record, &order); err != nil {
		b.log.Error("board: bad order event", "id", ev.ID, "error", err)
		return
	}
	b.mu.Lock()
	b.orders = upsertOrder(b.orders, order)
	b.mu.Unlock()
	b.broadcast(BoardEvent{Collection: OrdersCollection, Action: ev.Action, ID: ev.ID})
}

// ApplyCallEvent upserts or removes one waiter call by id.
func (b *KitchenBoard) ApplyCallEvent(ev database.Event) {
	if ev.Action == database.ActionDelete {
		b.mu.Lock()
		b.calls = removeCall(b.calls, ev.ID)
		b.mu.Unlock()
		b.broadcast(BoardEvent{Collection: WaiterCallsCollection, Action: ev.Action, ID: ev.ID})
		return
	}
	var call models.WaiterCall
	if err := bson.Unmarshal(ev.Record, &call); err != nil {
		b.log.Error("board: bad call event", "id", ev.ID, "error", err)
		return
	}
	b.mu.Lock()
	b.calls = upsertCall(b.calls, call)
	b.mu.Unlock()
	b.broadcast(BoardEvent{Collection: WaiterCallsCollection, Action: ev.Action, ID: ev.ID})
}

func (b *KitchenBoard) loadOrders(ctx context.Context) ([]models.Order, error) {
	records, err := b.store.List(ctx, OrdersCollection, database.Query{Sort: "-timestamp"})
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		var order models.Order
		if err := bson.Unmarshal(rec, &order); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (b *KitchenBoard) loadCalls(ctx context.Context) ([]models.WaiterCall, error) {
	records, err := b.store.List(ctx, WaiterCallsCollection, database.Query{Sort: "-timestamp"})
	if err != nil {
		return nil, fmt.Errorf("load waiter calls: %w", err)
	}
	calls := make([]models.WaiterCall, 0, len(records))
	for _, rec := range records {
		var call models.WaiterCall
		if err := bson.Unmarshal(rec, &call); err != nil {
			return nil, fmt.Errorf("decode waiter call: %w", err)
		}
		calls = append(calls, call)
	}
	return calls, nil
}

func upsertOrder(orders []models.Order, order models.Order) []models.Order {
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = order
			return orders
		}
	}
	orders = append(orders, order)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Timestamp.After(orders[j].Timestamp)
	})
	return orders
}

func removeOrder(orders []models.Order, id string) []models.Order {
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	return kept
}

func upsertCall(calls []models.WaiterCall, call models.WaiterCall) []models.WaiterCall {
	for i := range calls {
		if calls[i].ID == call.ID {
			calls[i] = call
			return calls
		}
	}
	calls = append(calls, call)
	sort.SliceStable(calls, func(i, j int) bool {
		return calls[i].Timestamp.After(calls[j].Timestamp)
	})
	return calls
}

func removeCall(calls []models.WaiterCall, id string) []models.WaiterCall {
	kept := calls[:0]
	for _, c := range calls {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return kept
}
