package services

import (
	"context"

	"go-table-order/database"
)

// Collections used by this service.
const (
	OrdersCollection      = "orders"
	WaiterCallsCollection = "waiter_calls"
)

// Store is the document-store contract the services depend on. It is
// satisfied by *database.Store and by the in-memory fake in the tests.
type Store interface {
	Create(ctx context.Context, collection string, doc any) (database.Record, error)
	Update(ctx context.Context, collection, id string, patch map[string]any) (database.Record, error)
	Delete(ctx context.Context, collection, id string) error
	List(ctx context.Context, collection string, q database.Query) ([]database.Record, error)
	Subscribe(ctx context.Context, collection, target string, fn func(database.Event)) (func(), error)
}
