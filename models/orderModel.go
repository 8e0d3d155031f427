package models

import "time"

// Status is the order lifecycle state. Staff advance it one step at a
// time along statusChain; "paid" is terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusPaid      Status = "paid"
)

var statusChain = []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusPaid}

func (s Status) Valid() bool {
	for _, st := range statusChain {
		if st == s {
			return true
		}
	}
	return false
}

// Next returns the following state in the chain. ok is false for "paid"
// and for anything not in the chain.
func (s Status) Next() (Status, bool) {
	for i, st := range statusChain {
		if st == s && i+1 < len(statusChain) {
			return statusChain[i+1], true
		}
	}
	return "", false
}

func (s Status) Terminal() bool { return s == StatusPaid }

// ValidTransition reports whether from -> to is the single forward step
// offered by the standard advance action.
func ValidTransition(from, to Status) bool {
	next, ok := from.Next()
	return ok && next == to
}

type OrderLine struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Note     string  `bson:"note" json:"note"`
}

type Order struct {
	ID           string      `bson:"id" json:"id"`
	TableNumber  string      `bson:"table_number" json:"tableNumber"`
	CustomerName string      `bson:"customer_name" json:"customerName"`
	Items        []OrderLine `bson:"items" json:"items"`
	Status       Status      `bson:"status" json:"status"`
	Timestamp    time.Time   `bson:"timestamp" json:"timestamp"`
}

func (o Order) Total() float64 {
	var total float64
	for _, line := range o.Items {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
