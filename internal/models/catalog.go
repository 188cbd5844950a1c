package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Catalog is the id -> record mapping. Iteration follows insertion order,
// which for a decoded file is document order.
type Catalog struct {
	order   []string
	records map[string]*Character
}

// NewCatalog returns an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{records: make(map[string]*Character)}
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.order)
}

// Get returns the record stored under id
func (c *Catalog) Get(id string) (*Character, bool) {
	ch, ok := c.records[id]
	return ch, ok
}

// Has reports whether id is present
func (c *Catalog) Has(id string) bool {
	_, ok := c.records[id]
	return ok
}

// Put stores a record. A new id is appended; an existing id keeps its position.
func (c *Catalog) Put(id string, ch *Character) {
	if _, ok := c.records[id]; !ok {
		c.order = append(c.order, id)
	}
	c.records[id] = ch
}

// IDs returns the identifiers in catalog order
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// All iterates over the records in catalog order
func (c *Catalog) All() iter.Seq2[string, *Character] {
	return func(yield func(string, *Character) bool) {
		for _, id := range c.order {
			if !yield(id, c.records[id]) {
				return
			}
		}
	}
}

// InGroup returns the ids of the records assigned to g, in catalog order
func (c *Catalog) InGroup(g Group) []string {
	var ids []string
	for id, ch := range c.All() {
		if ch.Group == g {
			ids = append(ids, id)
		}
	}
	return ids
}

// Clone returns a deep copy
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		order:   make([]string, len(c.order)),
		records: make(map[string]*Character, len(c.records)),
	}
	copy(out.order, c.order)
	for id, ch := range c.records {
		out.records[id] = ch.Clone()
	}
	return out
}

// Encode renders the catalog as an indented JSON document, four spaces per
// level, keys in catalog order.
func (c *Catalog) Encode() ([]byte, error) {
	if len(c.order) == 0 {
		return []byte("{}\n"), nil
	}
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, id := range c.order {
		key, err := encodeJSON(id, "")
		if err != nil {
			return nil, err
		}
		value, err := encodeJSON(c.records[id], "    ")
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", id, err)
		}
		buf.WriteString("    ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(c.order)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler, keeping catalog order
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return c.Encode()
}

func encodeJSON(v any, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
