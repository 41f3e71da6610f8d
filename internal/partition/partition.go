// Package partition implements the named-scalar partition shared by the
// training and extra halves of a parameter set.
//
// A Partition is an ordered name -> float64 mapping backed by a red-black
// tree, so lookup, insert and delete are logarithmic and iteration runs in
// ascending name order. The zero value is an empty partition.
package partition

import (
	"iter"

	"github.com/emirpasic/gods/maps/treemap"
)

// Partition is an ordered mapping from parameter name to scalar value.
//
// It is not safe for concurrent mutation. Concurrent readers with no writer
// are fine.
type Partition struct {
	tree *treemap.Map
}

// FromMap builds a partition holding every pair of m.
func FromMap(m map[string]float64) Partition {
	var p Partition
	for name, v := range m {
		p.Set(name, v)
	}
	return p
}

// Has reports whether name is present.
func (p *Partition) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Get returns the value stored under name.
func (p *Partition) Get(name string) (float64, bool) {
	if p.tree == nil {
		return 0, false
	}
	v, ok := p.tree.Get(name)
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

// Set inserts or overwrites the value stored under name.
func (p *Partition) Set(name string, v float64) {
	if p.tree == nil {
		p.tree = treemap.NewWithStringComparator()
	}
	p.tree.Put(name, v)
}

// Delete removes name. Deleting an absent name is a no-op.
func (p *Partition) Delete(name string) {
	if p.tree == nil {
		return
	}
	p.tree.Remove(name)
}

// Len returns the number of entries.
func (p *Partition) Len() int {
	if p.tree == nil {
		return 0
	}
	return p.tree.Size()
}

// Clear drops every entry.
func (p *Partition) Clear() {
	p.tree = nil
}

// Names returns the entry names in ascending order.
// The slice is freshly allocated on every call.
func (p *Partition) Names() []string {
	names := make([]string, 0, p.Len())
	for name := range p.All() {
		names = append(names, name)
	}
	return names
}

// All returns an iterator over the entries in ascending name order.
// The walk starts when the iterator is ranged over, not when All is called.
func (p *Partition) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		if p.tree == nil {
			return
		}
		it := p.tree.Iterator()
		for it.Next() {
			if !yield(it.Key().(string), it.Value().(float64)) {
				return
			}
		}
	}
}

// Clone returns a deep copy that shares no storage with p.
func (p *Partition) Clone() Partition {
	var c Partition
	for name, v := range p.All() {
		c.Set(name, v)
	}
	return c
}

// Equal reports whether p and o hold the same names with the same values.
// Values are compared with ==, so a NaN entry never equals anything.
func (p *Partition) Equal(o *Partition) bool {
	if p.Len() != o.Len() {
		return false
	}
	if p.Len() == 0 {
		return true
	}

	a, b := p.tree.Iterator(), o.tree.Iterator()
	for a.Next() && b.Next() {
		if a.Key().(string) != b.Key().(string) {
			return false
		}
		if a.Value().(float64) != b.Value().(float64) {
			return false
		}
	}
	return true
}
