// Package hashing provides position keys and repetition counting.
package hashing

import (
	"github.com/cespare/xxhash/v2"
)

// Key identifies a position for repetition detection. Canonical is the
// position's text form (piece placement, side to move, castling rights and
// en passant target); Sum is its 64-bit digest used for table lookups.
type Key struct {
	Sum       uint64
	Canonical string
}

// NewKey hashes the canonical text of a position.
func NewKey(canonical string) Key {
	return Key{
		Sum:       xxhash.Sum64String(canonical),
		Canonical: canonical,
	}
}

// entry stores one distinct position and how often it occurred.
type entry struct {
	canonical string
	count     int
}

// RepetitionTable counts how many times each position has been reached.
// Entries sharing a digest are kept apart by their canonical text, so a
// hash collision never merges two different positions.
type RepetitionTable struct {
	table map[uint64][]entry
	// max is the highest count currently in the table
	max int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		table: make(map[uint64][]entry),
	}
}

// Add records one more occurrence of key and returns the new count.
func (r *RepetitionTable) Add(key Key) int {
	entries := r.table[key.Sum]
	for i := range entries {
		if entries[i].canonical == key.Canonical {
			entries[i].count++
			if entries[i].count > r.max {
				r.max = entries[i].count
			}
			return entries[i].count
		}
	}
	r.table[key.Sum] = append(entries, entry{canonical: key.Canonical, count: 1})
	if r.max < 1 {
		r.max = 1
	}
	return 1
}

// Remove forgets one occurrence of key. Removing an absent key is a no-op.
func (r *RepetitionTable) Remove(key Key) {
	entries := r.table[key.Sum]
	for i := range entries {
		if entries[i].canonical != key.Canonical {
			continue
		}
		wasMax := entries[i].count == r.max
		entries[i].count--
		if entries[i].count == 0 {
			entries = append(entries[:i], entries[i+1:]...)
			if len(entries) == 0 {
				delete(r.table, key.Sum)
			} else {
				r.table[key.Sum] = entries
			}
		}
		if wasMax {
			r.recomputeMax()
		}
		return
	}
}

// Count returns how many times key has occurred.
func (r *RepetitionTable) Count(key Key) int {
	for _, e := range r.table[key.Sum] {
		if e.canonical == key.Canonical {
			return e.count
		}
	}
	return 0
}

// Max returns the highest occurrence count of any position.
func (r *RepetitionTable) Max() int {
	return r.max
}

func (r *RepetitionTable) recomputeMax() {
	r.max = 0
	for _, entries := range r.table {
		for _, e := range entries {
			if e.count > r.max {
				r.max = e.count
			}
		}
	}
}
