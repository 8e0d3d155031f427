package models

import (
	"math"
	"testing"
)

func item(t *testing.T, id int) MenuItem {
	t.Helper()
	it, ok := MenuItemByID(id)
	if !ok {
		t.Fatalf("menu item %d missing from catalog", id)
	}
	return it
}

func TestAddAccumulatesQuantity(t *testing.T) {
	var cart Cart
	pizza := item(t, 1)
	for i := 0; i < 3; i++ {
		cart.Add(pizza, "Anna")
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", cart.Lines[0].Quantity)
	}
}

func TestAddMatchesCustomerCaseInsensitive(t *testing.T) {
	var cart Cart
	pizza := item(t, 1)
	cart.Add(pizza, "Anna")
	cart.Add(pizza, "anna")
	if len(cart.Lines) != 1 || cart.Lines[0].Quantity != 2 {
		t.Errorf("expected one line with quantity 2, got %+v", cart.Lines)
	}

	cart.Add(pizza, "Ben")
	if len(cart.Lines) != 2 {
		t.Errorf("different customers must get separate lines, got %+v", cart.Lines)
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	pizza, salad := MenuItems[0], MenuItems[2]

	var byZero Cart
	byZero.Add(pizza, "Anna")
	byZero.Add(salad, "Anna")
	byZero.SetQuantity(pizza.ID, "Anna", 0)

	var byRemove Cart
	byRemove.Add(pizza, "Anna")
	byRemove.Add(salad, "Anna")
	byRemove.Remove(pizza.ID, "Anna")

	if len(byZero.Lines) != len(byRemove.Lines) || len(byZero.Lines) != 1 {
		t.Fatalf("SetQuantity(0) and Remove diverge: %+v vs %+v", byZero.Lines, byRemove.Lines)
	}
	if byZero.Lines[0].ItemID != byRemove.Lines[0].ItemID {
		t.Errorf("remaining lines differ: %+v vs %+v", byZero.Lines[0], byRemove.Lines[0])
	}
}

func TestTotalAndNoteInvariance(t *testing.T) {
	var cart Cart
	pizza := item(t, 1)
	pasta := item(t, 2)
	cart.Add(pizza, "Anna")
	cart.Add(pizza, "Anna")
	cart.Add(pasta, "Anna")

	want := pizza.Price*2 + pasta.Price
	if math.Abs(cart.Total()-want) > 1e-9 {
		t.Errorf("Total = %v, want %v", cart.Total(), want)
	}

	cart.SetNote(pizza.ID, "Anna", "ohne Basilikum")
	if math.Abs(cart.Total()-want) > 1e-9 {
		t.Errorf("note edit changed the total: %v", cart.Total())
	}
	if cart.Lines[0].Note != "ohne Basilikum" {
		t.Errorf("note not set: %+v", cart.Lines[0])
	}
}

func TestSetQuantityUpdatesLine(t *testing.T) {
	var cart Cart
	pizza := item(t, 1)
	cart.Add(pizza, "Anna")
	cart.SetQuantity(pizza.ID, "Anna", 5)
	if cart.Lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", cart.Lines[0].Quantity)
	}
}

func TestOrderLinesConversion(t *testing.T) {
	var cart Cart
	pizza := item(t, 1)
	cart.Add(pizza, "Anna")
	cart.SetNote(pizza.ID, "Anna", "extra Käse")

	lines := cart.OrderLines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	if l.Name != pizza.Name || l.Price != pizza.Price || l.Quantity != 1 || l.Note != "extra Käse" {
		t.Errorf("unexpected order line: %+v", l)
	}
}

func TestEmpty(t *testing.T) {
	var cart Cart
	if !cart.Empty() {
		t.Error("new cart should be empty")
	}
	cart.Add(MenuItems[0], "Anna")
	if cart.Empty() {
		t.Error("cart with a line should not be empty")
	}
	cart.SetQuantity(MenuItems[0].ID, "Anna", 0)
	if !cart.Empty() {
		t.Error("cart should be empty again after quantity reaches 0")
	}
}
