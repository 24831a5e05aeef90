package minmax

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Bounds is the (min, max) pair of a sequence. Both values are elements of it.
type Bounds[T Number] struct {
	Min T
	Max T
}

// Morph widens b so that it also covers other.
func (b *Bounds[T]) Morph(other Bounds[T]) bool {

	changes := 0

	if other.Min < b.Min {
		b.Min = other.Min
		changes += 1
	}
	if other.Max > b.Max {
		b.Max = other.Max
		changes += 1
	}

	return changes != 0
}

func (b Bounds[T]) String() string {
	return fmt.Sprintf("(%v, %v)", b.Min, b.Max)
}

// Scan finds the bounds with a single linear pass. It is the reference the
// divide and conquer selection is checked against.
func Scan[T Number](arr []T) (Bounds[T], error) {
	if len(arr) == 0 {
		return Bounds[T]{}, ErrEmptyInput
	}

	resultBounds := Bounds[T]{
		Min: arr[0],
		Max: arr[0],
	}

	for _, v := range arr[1:] {
		if v < resultBounds.Min {
			resultBounds.Min = v
		}
		if v > resultBounds.Max {
			resultBounds.Max = v
		}
	}
	return resultBounds, nil
}
