package models

import "testing"

func TestValidTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusReady, false},
		{StatusPending, StatusPaid, false},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusPending, false},
		{StatusReady, StatusDelivered, true},
		{StatusReady, StatusPreparing, false},
		{StatusDelivered, StatusPaid, true},
		{StatusDelivered, StatusReady, false},
		{StatusPaid, StatusPending, false},
		{StatusPaid, StatusPaid, false},
		{"", StatusPending, false},
		{StatusPending, "", false},
		{"bogus", StatusPreparing, false},
	}
	for _, tt := range tests {
		if got := ValidTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("ValidTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestNextStopsAtPaid(t *testing.T) {
	order := []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusPaid}
	for i := 0; i < len(order)-1; i++ {
		next, ok := order[i].Next()
		if !ok || next != order[i+1] {
			t.Errorf("%q.Next() = %q, %v; want %q, true", order[i], next, ok, order[i+1])
		}
	}
	if _, ok := StatusPaid.Next(); ok {
		t.Error("paid must have no next state")
	}
	if !StatusPaid.Terminal() {
		t.Error("paid must be terminal")
	}
	if StatusDelivered.Terminal() {
		t.Error("delivered is not terminal")
	}
}

func TestValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusPaid} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []Status{"", "PENDING", "done"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestOrderTotal(t *testing.T) {
	order := Order{Items: []OrderLine{
		{Name: "Margherita Pizza", Price: 8.99, Quantity: 2},
		{Name: "Caesar Salad", Price: 7.99, Quantity: 1},
	}}
	want := 8.99*2 + 7.99
	if got := order.Total(); got < want-1e-9 || got > want+1e-9 {
		t.Errorf("Total = %v, want %v", got, want)
	}
}
