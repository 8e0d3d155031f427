package models

import "strings"

// CartLine is one entry of an unsubmitted cart. Lines are keyed by
// (item id, lower-cased customer name): ordering the same dish for the
// same person bumps the quantity instead of adding a row.
type CartLine struct {
	ItemID       int     `json:"itemId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Note         string  `json:"note"`
	CustomerName string  `json:"customerName"`
}

// Cart is one browser session's in-progress selection. It is a plain
// value with no locking; CartService serialises access per session.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

func matches(line CartLine, itemID int, customerName string) bool {
	return line.ItemID == itemID && strings.EqualFold(line.CustomerName, customerName)
}

func (c *Cart) Add(item MenuItem, customerName string) {
	for i := range c.Lines {
		if matches(c.Lines[i], item.ID, customerName) {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ItemID:       item.ID,
		Name:         item.Name,
		Price:        item.Price,
		Quantity:     1,
		CustomerName: customerName,
	})
}

// SetQuantity sets the line's quantity; zero removes the line.
func (c *Cart) SetQuantity(itemID int, customerName string, quantity int) {
	if quantity <= 0 {
		c.Remove(itemID, customerName)
		return
	}
	for i := range c.Lines {
		if matches(c.Lines[i], itemID, customerName) {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) SetNote(itemID int, customerName, note string) {
	for i := range c.Lines {
		if matches(c.Lines[i], itemID, customerName) {
			c.Lines[i].Note = note
			return
		}
	}
}

func (c *Cart) Remove(itemID int, customerName string) {
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if !matches(line, itemID, customerName) {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
}

func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }

// OrderLines converts the cart for submission; the per-line customer name
// is dropped because the order document carries the submitting customer.
func (c *Cart) OrderLines() []OrderLine {
	lines := make([]OrderLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, OrderLine{Name: l.Name, Price: l.Price, Quantity: l.Quantity, Note: l.Note})
	}
	return lines
}
