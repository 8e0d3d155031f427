package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Record is a stored document in its wire form; callers decode it into
// their own model types with bson.Unmarshal.
type Record = bson.Raw

// Query narrows and orders a List call. Sort uses "field" for ascending
// and "-field" for descending, comma-separated.
type Query struct {
	Filter map[string]any
	Sort   string
}

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Event is one change-feed notification. Record is nil for deletes.
type Event struct {
	Action string
	ID     string
	Record Record
}

var ErrNotFound = errors.New("record not found")

// Store is the document-store handle for one database. Every document it
// creates is stamped with an opaque string "id" field that Update, Delete
// and Subscribe address records by.
type Store struct {
	db  *mongo.Database
	log *slog.Logger
}

func NewStore(db *mongo.Database, log *slog.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) Create(ctx context.Context, collection string, doc any) (Record, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	oid := primitive.NewObjectID()
	m["_id"] = oid
	m["id"] = oid.Hex()

	if _, err := s.db.Collection(collection).InsertOne(ctx, m); err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}
	rec, err := bson.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return rec, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, patch map[string]any) (Record, error) {
	res := s.db.Collection(collection).FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M(patch)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	rec, err := res.Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) List(ctx context.Context, collection string, q Query) ([]Record, error) {
	filter := bson.M{}
	for k, v := range q.Filter {
		filter[k] = v
	}
	opts := options.Find()
	if sort := parseSort(q.Sort); len(sort) > 0 {
		opts.SetSort(sort)
	}
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var records []Record
	for cursor.Next(ctx) {
		rec := make(Record, len(cursor.Current))
		copy(rec, cursor.Current)
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return records, nil
}

func parseSort(sort string) bson.D {
	var d bson.D
	for _, field := range strings.Split(sort, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		dir := 1
		if strings.HasPrefix(field, "-") {
			dir = -1
			field = field[1:]
		}
		d = append(d, bson.E{Key: field, Value: dir})
	}
	return d
}

// Subscribe watches a collection via a change stream and invokes fn for
// every matching event. target is a record id or "*" for the whole
// collection. The returned function cancels the subscription. A broken
// stream stops delivering until the caller resubscribes; there is no
// automatic retry.
func (s *Store) Subscribe(ctx context.Context, collection, target string, fn func(Event)) (func(), error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace", "delete"}},
		}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := s.db.Collection(collection).Watch(ctx, pipeline, opts)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", collection, err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	go func() {
		defer stream.Close(context.Background())
		for stream.Next(subCtx) {
			var change struct {
				OperationType string   `bson:"operationType"`
				FullDocument  bson.Raw `bson:"fullDocument"`
				DocumentKey   struct {
					ID primitive.ObjectID `bson:"_id"`
				} `bson:"documentKey"`
			}
			if err := stream.Decode(&change); err != nil {
				s.log.Error("change stream decode failed", "collection", collection, "error", err)
				continue
			}
			ev := Event{ID: change.DocumentKey.ID.Hex(), Record: change.FullDocument}
			switch change.OperationType {
			case "insert":
				ev.Action = ActionCreate
			case "update", "replace":
				ev.Action = ActionUpdate
			case "delete":
				ev.Action = ActionDelete
			default:
				continue
			}
			if target != "*" && target != ev.ID {
				continue
			}
			fn(ev)
		}
		if err := stream.Err(); err != nil && subCtx.Err() == nil {
			s.log.Error("change stream closed", "collection", collection, "error", err)
		}
	}()
	return cancel, nil
}
