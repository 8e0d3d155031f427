package services

import (
	"errors"
	"sync"

	"go-table-order/models"
)

var ErrUnknownMenuItem = errors.New("menu item not found")

// CartService keeps one cart per browser session. Carts never touch the
// store; they live only in this process, like the component state they
// replace.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*models.Cart)}
}

func (s *CartService) cart(sessionID string) *models.Cart {
	c, ok := s.carts[sessionID]
	if !ok {
		c = &models.Cart{}
		s.carts[sessionID] = c
	}
	return c
}

// Add puts one unit of the referenced menu item into the session's cart.
// Name and price come from the catalog, never from the client.
func (s *CartService) Add(sessionID string, itemID int, customerName string) error {
	item, ok := models.MenuItemByID(itemID)
	if !ok {
		return ErrUnknownMenuItem
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Add(item, customerName)
	return nil
}

func (s *CartService) SetQuantity(sessionID string, itemID int, customerName string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).SetQuantity(itemID, customerName, quantity)
}

func (s *CartService) SetNote(sessionID string, itemID int, customerName, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).SetNote(itemID, customerName, note)
}

func (s *CartService) Remove(sessionID string, itemID int, customerName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(sessionID).Remove(itemID, customerName)
}

// Snapshot returns a copy of the session's cart.
func (s *CartService) Snapshot(sessionID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	lines := make([]models.CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return models.Cart{Lines: lines}
}

func (s *CartService) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
