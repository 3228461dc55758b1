package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

type memoryDocument struct {
	seq int64
	doc []byte
}

// MemoryCollection keeps documents in process memory (for development and tests)
type MemoryCollection struct {
	mu   sync.RWMutex
	seq  int64
	docs map[string]memoryDocument
}

func NewMemoryCollection() *MemoryCollection {
	return &MemoryCollection{docs: make(map[string]memoryDocument)}
}

func (c *MemoryCollection) Insert(ctx context.Context, id string, doc []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.docs[id]; exists {
		return fmt.Errorf("document %s already exists", id)
	}
	c.seq++
	c.docs[id] = memoryDocument{seq: c.seq, doc: clone(doc)}
	return nil
}

func (c *MemoryCollection) Get(ctx context.Context, id string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(d.doc), nil
}

func (c *MemoryCollection) List(ctx context.Context) ([][]byte, error) {
	return c.Find(ctx, Filter{})
}

func (c *MemoryCollection) Find(ctx context.Context, filter Filter) ([][]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	matched := make([]memoryDocument, 0, len(c.docs))
	for _, d := range c.docs {
		ok, err := matches(d.doc, filter)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, d)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	out := make([][]byte, len(matched))
	for i, d := range matched {
		out[i] = clone(d.doc)
	}
	return out, nil
}

func (c *MemoryCollection) Replace(ctx context.Context, id string, doc []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, ok := c.docs[id]
	if !ok {
		return ErrNotFound
	}
	d.doc = clone(doc)
	c.docs[id] = d
	return nil
}

func (c *MemoryCollection) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	delete(c.docs, id)
	return nil
}

func matches(doc []byte, filter Filter) (bool, error) {
	if len(filter.Match) == 0 && filter.Range == nil {
		return true, nil
	}
	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(doc, &attrs); err != nil {
		return false, fmt.Errorf("decode stored document: %w", err)
	}

	if filter.Range != nil && !filter.Range.contains(attribute(attrs, filter.Range.Attribute)) {
		return false, nil
	}
	if len(filter.Match) == 0 {
		return true, nil
	}
	for _, clause := range filter.Match {
		all := true
		for name, want := range clause {
			if attribute(attrs, name) != want {
				all = false
				break
			}
		}
		if all {
			return true, nil
		}
	}
	return false, nil
}

// attribute reads a top-level string attribute; absent or null reads as "".
// Non-string values compare by their JSON text.
func attribute(attrs map[string]json.RawMessage, name string) string {
	raw, ok := attrs[name]
	if !ok || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
