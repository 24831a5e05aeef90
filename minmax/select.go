// Package minmax finds the minimum and maximum of a sequence at the same time
// with a divide and conquer selection that spends ceil(3n/2)-2 comparisons.
package minmax

import (
	"iter"
	"slices"
)

// Select returns the bounds of values. Values is only read.
func Select[T Number](values []T) (Bounds[T], error) {
	result, _, err := SelectWithCount(values)
	return result, err
}

// SelectWithCount is Select that also reports how many comparisons were made,
// pairwise leaf comparisons and combination comparisons alike.
func SelectWithCount[T Number](values []T) (Bounds[T], int, error) {
	if len(values) == 0 {
		return Bounds[T]{}, 0, ErrEmptyInput
	}

	result, count := selectRange(values, 0, len(values)-1, nil)
	return result, count, nil
}

// SelectSeq drains seq once and selects over the collected values.
func SelectSeq[T Number](seq iter.Seq[T]) (Bounds[T], error) {
	return Select(slices.Collect(seq))
}

// SelectSeqWithCount drains seq once and selects with counting.
func SelectSeqWithCount[T Number](seq iter.Seq[T]) (Bounds[T], int, error) {
	return SelectWithCount(slices.Collect(seq))
}

// selectRange solves the inclusive range [lo, hi] and returns its bounds
// together with the comparisons spent in the whole subtree.
func selectRange[T Number](a []T, lo, hi int, visit func(Step[T])) (Bounds[T], int) {

	var (
		result Bounds[T]
		kind   StepKind
		cost   int
		total  int
	)

	switch hi - lo + 1 {
	case 1:
		kind = SingleStep
		result = Bounds[T]{Min: a[lo], Max: a[lo]}

	case 2:
		kind = PairStep
		cost = 1
		total = 1

		x, y := a[lo], a[hi]
		if x <= y {
			result = Bounds[T]{Min: x, Max: y}
		} else {
			result = Bounds[T]{Min: y, Max: x}
		}

	default:
		kind = MergeStep

		mid := split(lo, hi)
		left, leftCount := selectRange(a, lo, mid, visit)
		right, rightCount := selectRange(a, mid+1, hi, visit)

		result, cost = combine(left, right)
		total = leftCount + rightCount + cost
	}

	if visit != nil {
		visit(Step[T]{
			Lo:          lo,
			Hi:          hi,
			Kind:        kind,
			Comparisons: cost,
			Bounds:      result,
		})
	}

	return result, total
}

// split returns the last index of the left half. The left half never gets
// fewer elements than the right one and always has an even length, so every
// element of it ends up in a pair leaf and the whole tree costs ceil(3n/2)-2.
// The halves may differ by more than one element, six values split 4/2.
func split(lo, hi int) int {
	mid := (lo + hi) / 2
	if (mid-lo+1)%2 == 1 {
		mid++
	}
	return mid
}

// combine merges two sub results with exactly two comparisons. Ties keep the
// value of the left half.
func combine[T Number](left, right Bounds[T]) (Bounds[T], int) {

	var result Bounds[T]

	if left.Max >= right.Max {
		result.Max = left.Max
	} else {
		result.Max = right.Max
	}

	if left.Min <= right.Min {
		result.Min = left.Min
	} else {
		result.Min = right.Min
	}

	return result, 2
}
