package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is a process-local Store used when MONGO_MODE=memory. It
// understands the subset of the query language the handlers emit: field
// equality, $eq/$ne/$gt/$gte/$lt/$lte, and $set/$push updates.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[name]
	if !ok {
		coll = &memoryCollection{}
		s.collections[name] = coll
	}
	return coll
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close(context.Context) error {
	return nil
}

type memoryCollection struct {
	mu   sync.RWMutex
	docs []bson.M
}

func (c *memoryCollection) Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []bson.M{}
	for _, doc := range c.docs {
		ok, err := matches(doc, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out = append(out, cloneDoc(doc))
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (c *memoryCollection) FindOne(ctx context.Context, filter bson.M) (bson.M, error) {
	docs, err := c.Find(ctx, filter, 1)
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return docs[0], nil
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc bson.M) (*InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := cloneDoc(doc)
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.docs {
		if valuesEqual(existing["_id"], stored["_id"]) {
			return nil, fmt.Errorf("insert: duplicate key _id %v", stored["_id"])
		}
	}
	c.docs = append(c.docs, stored)
	return &InsertResult{Acknowledged: true, InsertedID: stored["_id"]}, nil
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter bson.M, update bson.M, upsert bool) (*UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		ok, err := matches(doc, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		updated, err := applyUpdate(doc, update)
		if err != nil {
			return nil, err
		}
		res := &UpdateResult{Acknowledged: true, MatchedCount: 1}
		if !reflect.DeepEqual(doc, updated) {
			res.ModifiedCount = 1
		}
		c.docs[i] = updated
		return res, nil
	}

	if !upsert {
		return &UpdateResult{Acknowledged: true}, nil
	}

	seed := bson.M{}
	for key, value := range filter {
		if strings.HasPrefix(key, "$") {
			continue
		}
		if _, isOperator := operatorDoc(value); isOperator {
			continue
		}
		seed[key] = value
	}
	created, err := applyUpdate(seed, update)
	if err != nil {
		return nil, err
	}
	if _, ok := created["_id"]; !ok {
		created["_id"] = primitive.NewObjectID()
	}
	c.docs = append(c.docs, created)
	return &UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: created["_id"]}, nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error) {
	return c.delete(ctx, filter, 1)
}

func (c *memoryCollection) DeleteMany(ctx context.Context, filter bson.M) (*DeleteResult, error) {
	return c.delete(ctx, filter, 0)
}

func (c *memoryCollection) delete(ctx context.Context, filter bson.M, max int64) (*DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var deleted int64
	kept := make([]bson.M, 0, len(c.docs))
	for _, doc := range c.docs {
		if max == 0 || deleted < max {
			ok, err := matches(doc, filter)
			if err != nil {
				return nil, err
			}
			if ok {
				deleted++
				continue
			}
		}
		kept = append(kept, doc)
	}
	c.docs = kept
	return &DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}

func (c *memoryCollection) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	docs, err := c.Find(ctx, filter, 0)
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}

func matches(doc bson.M, filter bson.M) (bool, error) {
	for key, expected := range filter {
		if strings.HasPrefix(key, "$") {
			return false, fmt.Errorf("unsupported top-level operator %s", key)
		}
		actual, present := doc[key]

		ops, isOperator := operatorDoc(expected)
		if !isOperator {
			if !equalsField(actual, present, expected) {
				return false, nil
			}
			continue
		}

		for op, operand := range ops {
			ok, err := compare(op, actual, present, operand)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

func compare(op string, actual interface{}, present bool, operand interface{}) (bool, error) {
	switch op {
	case "$eq":
		return equalsField(actual, present, operand), nil
	case "$ne":
		return !equalsField(actual, present, operand), nil
	case "$gt", "$gte", "$lt", "$lte":
		if !present {
			return false, nil
		}
		a, ok := toFloat(actual)
		if !ok {
			return false, nil
		}
		b, ok := toFloat(operand)
		if !ok {
			return false, fmt.Errorf("%s expects a number, got %T", op, operand)
		}
		switch op {
		case "$gt":
			return a > b, nil
		case "$gte":
			return a >= b, nil
		case "$lt":
			return a < b, nil
		default:
			return a <= b, nil
		}
	}
	return false, fmt.Errorf("unsupported operator %s", op)
}

// equalsField follows document-store semantics where a nil operand also
// matches a missing field.
func equalsField(actual interface{}, present bool, expected interface{}) bool {
	if expected == nil {
		return !present || actual == nil
	}
	if !present {
		return false
	}
	return valuesEqual(actual, expected)
}

func applyUpdate(doc bson.M, update bson.M) (bson.M, error) {
	out := cloneDoc(doc)
	for op, spec := range update {
		fields, ok := asDoc(spec)
		if !ok {
			return nil, fmt.Errorf("update operator %s needs a document", op)
		}
		switch op {
		case "$set":
			for key, value := range fields {
				out[key] = value
			}
		case "$push":
			for key, value := range fields {
				var items []interface{}
				switch existing := out[key].(type) {
				case nil:
				case []interface{}:
					items = append(items, existing...)
				case bson.A:
					items = append(items, existing...)
				default:
					return nil, fmt.Errorf("$push target %s is not an array", key)
				}
				out[key] = append(items, value)
			}
		default:
			return nil, fmt.Errorf("unsupported update operator %s", op)
		}
	}
	return out, nil
}

func operatorDoc(v interface{}) (bson.M, bool) {
	var m map[string]interface{}
	switch t := v.(type) {
	case bson.M:
		m = t
	case map[string]interface{}:
		m = t
	default:
		return nil, false
	}
	if len(m) == 0 {
		return nil, false
	}
	for key := range m {
		if !strings.HasPrefix(key, "$") {
			return bson.M(m), false
		}
	}
	return bson.M(m), true
}

func asDoc(v interface{}) (bson.M, bool) {
	switch t := v.(type) {
	case bson.M:
		return t, true
	case map[string]interface{}:
		return bson.M(t), true
	}
	return nil, false
}

func valuesEqual(a, b interface{}) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
