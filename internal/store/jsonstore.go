package store

import (
	"bytes"
	"encoding/json"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Record is a single JSON object within a stored collection.
type Record = map[string]any

// Collection mirrors a JSON array file in memory. The file is read once when
// the collection is opened and only ever rewritten as a whole; the in-memory
// slice is the source of truth for the life of the process.
type Collection struct {
	mu      sync.Mutex
	path    string
	records []Record
}

// Open loads the array at path. A missing, unreadable, empty or malformed
// file yields an empty collection rather than an error: bad data on disk must
// not take the service down.
func Open(path string) *Collection {
	c := &Collection{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Warn("store: starting with empty collection")
		return c
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	// Keep numbers as json.Number so record values round-trip verbatim.
	dec.UseNumber()
	if err := dec.Decode(&c.records); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("store: malformed collection file, starting empty")
		c.records = nil
	}
	return c
}

// All returns a copy of the in-memory sequence, in stored order.
func (c *Collection) All() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Len reports the number of records currently held.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Prepend inserts rec at the front of the sequence and rewrites the backing
// file. The record is live in memory even when the write fails; the returned
// error only reports the durability gap.
func (c *Collection) Prepend(rec Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append([]Record{rec}, c.records...)
	return c.persistLocked()
}

// Persist rewrites the whole array to the backing file, pretty-printed.
func (c *Collection) Persist() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persistLocked()
}

func (c *Collection) persistLocked() error {
	data, err := json.MarshalIndent(c.records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}
