package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"go-table-order/database"
	"go-table-order/models"
)

var ErrCallCooldown = errors.New("waiter already called for this table")

const DefaultCallCooldown = 60 * time.Second

// WaiterCallService creates and acknowledges waiter calls. Repeat calls
// from the same table inside the cooldown window are rejected. The
// cooldown lives in memory only: after a restart one extra call slips
// through, which is harmless.
type WaiterCallService struct {
	store    Store
	log      *slog.Logger
	cooldown time.Duration
	now      func() time.Time

	mu       sync.Mutex
	lastCall map[string]time.Time
}

func NewWaiterCallService(store Store, log *slog.Logger, cooldown time.Duration) *WaiterCallService {
	if cooldown <= 0 {
		cooldown = DefaultCallCooldown
	}
	return &WaiterCallService{
		store:    store,
		log:      log,
		cooldown: cooldown,
		now:      time.Now,
		lastCall: make(map[string]time.Time),
	}
}

func (s *WaiterCallService) Call(ctx context.Context, tableNumber string) (models.WaiterCall, error) {
	tableNumber = strings.TrimSpace(tableNumber)
	if tableNumber == "" {
		return models.WaiterCall{}, ErrMissingTableNumber
	}

	s.mu.Lock()
	if last, ok := s.lastCall[tableNumber]; ok && s.now().Sub(last) < s.cooldown {
		s.mu.Unlock()
		return models.WaiterCall{}, ErrCallCooldown
	}
	s.mu.Unlock()

	call := models.WaiterCall{TableNumber: tableNumber, Timestamp: s.now().UTC()}
	rec, err := s.store.Create(ctx, WaiterCallsCollection, call)
	if err != nil {
		return models.WaiterCall{}, fmt.Errorf("create waiter call: %w", err)
	}
	if err := bson.Unmarshal(rec, &call); err != nil {
		return models.WaiterCall{}, fmt.Errorf("decode waiter call: %w", err)
	}

	s.mu.Lock()
	s.lastCall[tableNumber] = s.now()
	s.mu.Unlock()

	s.log.Info("waiter called", "call_id", call.ID, "table", tableNumber)
	return call, nil
}

// Acknowledge removes the call; staff pressed the button.
func (s *WaiterCallService) Acknowledge(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, WaiterCallsCollection, id); err != nil {
		return err
	}
	s.log.Info("waiter call acknowledged", "call_id", id)
	return nil
}

func (s *WaiterCallService) List(ctx context.Context) ([]models.WaiterCall, error) {
	records, err := s.store.List(ctx, WaiterCallsCollection, database.Query{Sort: "-timestamp"})
	if err != nil {
		return nil, fmt.Errorf("list waiter calls: %w", err)
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
