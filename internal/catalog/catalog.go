// Package catalog provides access to the career catalog. The catalog is
// read-only after startup; implementations that mirror it into a persistent
// store fall back to the in-memory seed on any store error, so callers never
// observe storage failures.
package catalog

import (
	"context"
	"strings"

	"github.com/lalasa2485/AI-Career-Path-Recommendation/internal/career"
)

// Catalog is the single read contract for career records. All returns records
// in catalog order. Get reports false for unknown ids. Search performs a
// case-insensitive substring match; an empty query matches everything.
type Catalog interface {
	All(ctx context.Context) []career.Record
	Get(ctx context.Context, id string) (career.Record, bool)
	Search(ctx context.Context, query string) []career.Record
}

// Memory serves the seed set directly. It is the authoritative source when no
// persistent store is configured and the fallback when one fails.
type Memory struct {
	records []career.Record
}

// NewMemory creates an in-memory catalog over the given records.
func NewMemory(records []career.Record) *Memory {
	return &Memory{records: records}
}

func (m *Memory) All(_ context.Context) []career.Record {
	out := make([]career.Record, len(m.records))
	copy(out, m.records)
	return out
}

func (m *Memory) Get(_ context.Context, id string) (career.Record, bool) {
	for _, record := range m.records {
		if record.ID == id {
			return record, true
		}
	}
	return career.Record{}, false
}

func (m *Memory) Search(_ context.Context, query string) []career.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]career.Record, len(m.records))
		copy(out, m.records)
		return out
	}

	var out []career.Record
	for _, record := range m.records {
		if strings.Contains(strings.ToLower(record.Title), q) ||
			strings.Contains(strings.ToLower(record.Description), q) ||
			strings.Contains(strings.ToLower(record.Category), q) ||
			strings.Contains(strings.ToLower(strings.Join(record.RequiredSkills, ", ")), q) {
			out = append(out, record)
		}
	}
	return out
}
