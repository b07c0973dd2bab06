// Package index provides an R-tree over serialized geometry values for
// spatial pruning.
//
// Entries are keyed by the envelope recovered through the codec's fast path,
// so indexing a value never materializes its vertices. A query returns the
// candidate set whose envelopes intersect the query envelope; exact geometry
// tests, when needed, are the caller's job on the candidates.
package index

import (
	"github.com/dhconnelly/rtreego"

	"github.com/jagill/geoserde/envelope"
	"github.com/jagill/geoserde/serde"
)

// rtreego rejects degenerate rectangles, so point-like extents are padded by
// an epsilon. Padding only widens the candidate set; Search filters by the
// exact envelope afterwards.
const degenerateExtentPad = 1e-9

// Entry is one indexed serialized geometry value.
type Entry struct {
	// ID is an opaque caller-provided identifier, typically a row position.
	ID uint64
	// Data is the serialized record the entry was built from.
	Data []byte

	env envelope.Envelope
}

// Envelope returns the entry's bounding envelope.
func (e Entry) Envelope() envelope.Envelope {
	return e.env
}

// Bounds implements the rtreego.Spatial interface.
func (e Entry) Bounds() rtreego.Rect {
	point := rtreego.Point{e.env.XMin, e.env.YMin}

	lengths := []float64{
		e.env.XMax - e.env.XMin,
		e.env.YMax - e.env.YMin,
	}
	for i, l := range lengths {
		if l <= 0 {
			lengths[i] = degenerateExtentPad
		}
	}

	rect, _ := rtreego.NewRect(point, lengths)

	return rect
}

// SpatialIndex is an R-tree over serialized geometry values.
//
// It is not safe for concurrent mutation; guard Insert with a lock or build
// the index up front and share it read-only.
type SpatialIndex struct {
	tree   *rtreego.Rtree
	count  int
	bounds envelope.Envelope
}

// New creates an empty 2-D spatial index.
func New() *SpatialIndex {
	return &SpatialIndex{
		// 2D, min=25 children, max=50 children
		tree:   rtreego.NewTree(2, 25, 50),
		bounds: envelope.Empty(),
	}
}

// Insert adds a serialized value under the given ID. The envelope comes from
// the fast decode path; values with an empty envelope are skipped, since they
// intersect nothing. Malformed records return a decode error.
func (idx *SpatialIndex) Insert(id uint64, data []byte) error {
	env, err := serde.DeserializeEnvelope(data)
	if err != nil {
		return err
	}

	if env.IsEmpty() {
		return nil
	}

	idx.tree.Insert(Entry{ID: id, Data: data, env: env})
	idx.count++
	idx.bounds.Extend(env)

	return nil
}

// Search returns the entries whose envelopes intersect the query envelope.
// An empty query envelope matches nothing.
func (idx *SpatialIndex) Search(query envelope.Envelope) []Entry {
	if query.IsEmpty() || idx.count == 0 {
		return nil
	}

	queryEntry := Entry{env: query}
	spatials := idx.tree.SearchIntersect(queryEntry.Bounds())

	var result []Entry
	for _, spatial := range spatials {
		entry := spatial.(Entry)

		// The R-tree rectangles are padded for degenerate extents; re-check
		// against the exact envelopes.
		if !entry.env.Intersects(query) {
			continue
		}

		result = append(result, entry)
	}

	return result
}

// Len returns the number of indexed entries.
func (idx *SpatialIndex) Len() int {
	return idx.count
}

// Bounds returns the union envelope of every indexed entry.
func (idx *SpatialIndex) Bounds() envelope.Envelope {
	return idx.bounds
}
