package hashing

import (
	"testing"
)

const (
	initialKey = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"
	afterE4Key = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3"
)

func TestNewKeyConsistency(t *testing.T) {
	k1 := NewKey(initialKey)
	k2 := NewKey(initialKey)

	if k1 != k2 {
		t.Errorf("Identical positions produced different keys: %x != %x", k1.Sum, k2.Sum)
	}
}

func TestNewKeyDifferentPositions(t *testing.T) {
	k1 := NewKey(initialKey)
	k2 := NewKey(afterE4Key)

	if k1.Sum == k2.Sum {
		t.Error("Different positions produced the same digest")
	}
}

func TestRepetitionTable_AddCount(t *testing.T) {
	table := NewRepetitionTable()
	key := NewKey(initialKey)

	for want := 1; want <= 3; want++ {
		if got := table.Add(key); got != want {
			t.Errorf("Add() = %d; want %d", got, want)
		}
	}
	if got := table.Count(key); got != 3 {
		t.Errorf("Count() = %d; want 3", got)
	}
	if got := table.Max(); got != 3 {
		t.Errorf("Max() = %d; want 3", got)
	}
	if got := table.Count(NewKey(afterE4Key)); got != 0 {
		t.Errorf("Count(unseen) = %d; want 0", got)
	}
}

func TestRepetitionTable_Remove(t *testing.T) {
	table := NewRepetitionTable()
	a := NewKey(initialKey)
	b := NewKey(afterE4Key)

	table.Add(a)
	table.Add(a)
	table.Add(b)

	table.Remove(a)
	if got := table.Count(a); got != 1 {
		t.Errorf("Count(a) after Remove = %d; want 1", got)
	}
	if got := table.Max(); got != 1 {
		t.Errorf("Max() after Remove = %d; want 1", got)
	}

	table.Remove(a)
	table.Remove(a) // absent, no-op
	if got := table.Count(a); got != 0 {
		t.Errorf("Count(a) after removing every occurrence = %d; want 0", got)
	}
	if got := table.Count(b); got != 1 {
		t.Errorf("Count(b) = %d; want 1", got)
	}
}

func TestRepetitionTable_CollisionKeptApart(t *testing.T) {
	table := NewRepetitionTable()
	// Force two different positions onto the same digest.
	a := Key{Sum: 42, Canonical: initialKey}
	b := Key{Sum: 42, Canonical: afterE4Key}

	table.Add(a)
	table.Add(a)
	table.Add(b)

	if got := table.Count(a); got != 2 {
		t.Errorf("Count(a) = %d; want 2", got)
	}
	if got := table.Count(b); got != 1 {
		t.Errorf("Count(b) = %d; want 1", got)
	}
	if got := table.Max(); got != 2 {
		t.Errorf("Max() = %d; want 2", got)
	}
}
