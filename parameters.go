package rbparams

import (
	"iter"

	"github.com/hupe1980/rbparams/internal/partition"
)

// Parameters is a set of scalar parameters indexed by name.
//
// It holds two independent partitions: training parameters, which drive
// reduced-basis training and sampling, and extra parameters, which are
// carried alongside but never consulted by training. A name may exist in
// either, both or neither.
//
// The zero value is an empty set ready to use. Assigning a Parameters value
// shares its storage; use Clone for an independent copy.
//
// Parameters is not safe for concurrent mutation. Concurrent reads with no
// writer are safe.
type Parameters struct {
	training partition.Partition
	extra    partition.Partition
}

// New returns an empty parameter set.
func New() *Parameters {
	return &Parameters{}
}

// FromMap returns a parameter set whose training partition holds every pair
// of m. The extra partition starts empty.
func FromMap(m map[string]float64) *Parameters {
	return &Parameters{
		training: partition.FromMap(m),
	}
}

// Clear removes all training and extra parameters.
func (p *Parameters) Clear() {
	p.training.Clear()
	p.extra.Clear()
}

// Clone returns a deep copy of p. The copy shares no storage with p.
func (p *Parameters) Clone() *Parameters {
	if p == nil {
		return New()
	}
	return &Parameters{
		training: p.training.Clone(),
		extra:    p.extra.Clone(),
	}
}

// HasValue reports whether the training parameter name is set.
func (p *Parameters) HasValue(name string) bool {
	return p.training.Has(name)
}

// Value returns the training parameter name.
// It returns a *NotFoundError if name is not set.
func (p *Parameters) Value(name string) (float64, error) {
	v, ok := p.training.Get(name)
	if !ok {
		return 0, &NotFoundError{Name: name, Partition: Training}
	}
	return v, nil
}

// ValueOr returns the training parameter name, or def if it is not set.
func (p *Parameters) ValueOr(name string, def float64) float64 {
	if v, ok := p.training.Get(name); ok {
		return v
	}
	return def
}

// SetValue sets the training parameter name, adding it if absent.
func (p *Parameters) SetValue(name string, v float64) {
	p.training.Set(name, v)
}

// Erase removes the training parameter name. Erasing an absent name does nothing.
func (p *Parameters) Erase(name string) {
	p.training.Delete(name)
}

// NumParameters returns the number of training parameters.
func (p *Parameters) NumParameters() int {
	return p.training.Len()
}

// Names returns the training parameter names in ascending order.
func (p *Parameters) Names() []string {
	return p.training.Names()
}

// All iterates the training parameters in ascending name order.
//
// Mutating p while the iteration is in progress is not supported.
func (p *Parameters) All() iter.Seq2[string, float64] {
	return p.training.All()
}

// HasExtraValue reports whether the extra parameter name is set.
func (p *Parameters) HasExtraValue(name string) bool {
	return p.extra.Has(name)
}

// ExtraValue returns the extra parameter name.
// It returns a *NotFoundError if name is not set.
func (p *Parameters) ExtraValue(name string) (float64, error) {
	v, ok := p.extra.Get(name)
	if !ok {
		return 0, &NotFoundError{Name: name, Partition: ExtraPartition}
	}
	return v, nil
}

// ExtraValueOr returns the extra parameter name, or def if it is not set.
func (p *Parameters) ExtraValueOr(name string, def float64) float64 {
	if v, ok := p.extra.Get(name); ok {
		return v
	}
	return def
}

// SetExtraValue sets the extra parameter name, adding it if absent.
func (p *Parameters) SetExtraValue(name string, v float64) {
	p.extra.Set(name, v)
}

// EraseExtra removes the extra parameter name. Erasing an absent name does nothing.
func (p *Parameters) EraseExtra(name string) {
	p.extra.Delete(name)
}

// NumExtraParameters returns the number of extra parameters.
func (p *Parameters) NumExtraParameters() int {
	return p.extra.Len()
}

// ExtraNames returns the extra parameter names in ascending order.
func (p *Parameters) ExtraNames() []string {
	return p.extra.Names()
}

// Extra iterates the extra parameters in ascending name order.
func (p *Parameters) Extra() iter.Seq2[string, float64] {
	return p.extra.All()
}

// Equal reports whether p and other hold the same training parameters.
//
// Extra parameters do not take part in the comparison. A nil set equals an
// empty one.
func (p *Parameters) Equal(other *Parameters) bool {
	var a, b partition.Partition
	if p != nil {
		a = p.training
	}
	if other != nil {
		b = other.training
	}
	return a.Equal(&b)
}
