package rbparams

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup names a parameter that is not set.
	ErrNotFound = errors.New("parameter not found")
)

// Partition identifies one of the two halves of a parameter set.
type Partition uint8

const (
	// Training is the partition consumed by reduced-basis training.
	Training Partition = iota
	// ExtraPartition holds parameters carried alongside but ignored by training.
	ExtraPartition
)

// String returns the name of the partition.
func (p Partition) String() string {
	switch p {
	case Training:
		return "training"
	case ExtraPartition:
		return "extra"
	default:
		return "unknown"
	}
}

// NotFoundError indicates a lookup of an absent parameter.
//
// It matches ErrNotFound via errors.Is.
type NotFoundError struct {
	Name      string
	Partition Partition
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s parameter %q not found", e.Partition, e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
