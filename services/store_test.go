package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"go-table-order/database"
)

// fakeStore is an in-memory Store. Documents are kept in their bson wire
// form so the services' decode paths run exactly as against MongoDB.
// Subscriptions fire synchronously from Create/Update/Delete.
type fakeStore struct {
	mu   sync.Mutex
	seq  int
	data map[string][]database.Record
	subs map[string][]*fakeSub

	failCreate bool
	failUpdate bool
	failList   bool
}

type fakeSub struct {
	target   string
	fn       func(database.Event)
	canceled bool
}

var errStoreDown = errors.New("store unavailable")

func newFakeStore() *fakeStore {
	return &fakeStore{
		data: make(map[string][]database.Record),
		subs: make(map[string][]*fakeSub),
	}
}

func recID(rec database.Record) string {
	if v, err := rec.LookupErr("id"); err == nil {
		if s, ok := v.StringValueOK(); ok {
			return s
		}
	}
	return ""
}

func (f *fakeStore) Create(ctx context.Context, collection string, doc any) (database.Record, error) {
	f.mu.Lock()
	if f.failCreate {
		f.mu.Unlock()
		return nil, errStoreDown
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.seq++
	id := fmt.Sprintf("rec%03d", f.seq)
	m["id"] = id
	rec, err := bson.Marshal(m)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	f.data[collection] = append(f.data[collection], rec)
	f.mu.Unlock()

	f.emit(collection, database.Event{Action: database.ActionCreate, ID: id, Record: rec})
	return rec, nil
}

func (f *fakeStore) Update(ctx context.Context, collection, id string, patch map[string]any) (database.Record, error) {
	f.mu.Lock()
	if f.failUpdate {
		f.mu.Unlock()
		return nil, errStoreDown
	}
	docs := f.data[collection]
	for i, rec := range docs {
		if recID(rec) != id {
			continue
		}
		var m bson.M
		if err := bson.Unmarshal(rec, &m); err != nil {
			f.mu.Unlock()
			return nil, err
		}
		for k, v := range patch {
			m[k] = v
		}
		updated, err := bson.Marshal(m)
		if err != nil {
			f.mu.Unlock()
			return nil, err
		}
		docs[i] = updated
		f.mu.Unlock()

		f.emit(collection, database.Event{Action: database.ActionUpdate, ID: id, Record: updated})
		return updated, nil
	}
	f.mu.Unlock()
	return nil, database.ErrNotFound
}

func (f *fakeStore) Delete(ctx context.Context, collection, id string) error {
	f.mu.Lock()
	docs := f.data[collection]
	for i, rec := range docs {
		if recID(rec) == id {
			f.data[collection] = append(docs[:i:i], docs[i+1:]...)
			f.mu.Unlock()
			f.emit(collection, database.Event{Action: database.ActionDelete, ID: id})
			return nil
		}
	}
	f.mu.Unlock()
	return database.ErrNotFound
}

func (f *fakeStore) List(ctx context.Context, collection string, q database.Query) ([]database.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, errStoreDown
	}
	var out []database.Record
	for _, rec := range f.data[collection] {
		if matchesFilter(rec, q.Filter) {
			out = append(out, rec)
		}
	}
	if q.Sort == "-timestamp" {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Lookup("timestamp").Time().After(out[j].Lookup("timestamp").Time())
		})
	}
	return out, nil
}

func matchesFilter(rec database.Record, filter map[string]any) bool {
	for k, want := range filter {
		v, err := rec.LookupErr(k)
		if err != nil {
			return false
		}
		s, ok := v.StringValueOK()
		if !ok || s != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func (f *fakeStore) Subscribe(ctx context.Context, collection, target string, fn func(database.Event)) (func(), error) {
	sub := &fakeSub{target: target, fn: fn}
	f.mu.Lock()
	f.subs[collection] = append(f.subs[collection], sub)
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		sub.canceled = true
		f.mu.Unlock()
	}, nil
}

func (f *fakeStore) emit(collection string, ev database.Event) {
	f.mu.Lock()
	var subs []*fakeSub
	for _, sub := range f.subs[collection] {
		if !sub.canceled {
			subs = append(subs, sub)
		}
	}
	f.mu.Unlock()
	for _, sub := range subs {
		if sub.target != "*" && sub.target != ev.ID {
			continue
		}
		sub.fn(ev)
	}
}

func (f *fakeStore) count(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.data[collection])
}
