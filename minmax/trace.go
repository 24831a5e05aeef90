package minmax

type StepKind uint8

const (
	SingleStep StepKind = iota
	PairStep
	MergeStep
)

func (k StepKind) String() string {
	switch k {
	case SingleStep:
		return "single"
	case PairStep:
		return "pair"
	case MergeStep:
		return "merge"
	default:
		return ""
	}
}

// Step is one node of the recursion tree.
type Step[T Number] struct {
	Lo   int
	Hi   int
	Kind StepKind

	// comparisons made at this node only, children excluded
	Comparisons int
	Bounds      Bounds[T]
}

// Trace lists the nodes of one selection in post-order, so the root is last.
type Trace[T Number] []Step[T]

func (t Trace[T]) Comparisons() int {
	total := 0
	for _, step := range t {
		total += step.Comparisons
	}
	return total
}

// SelectWithTrace runs the same selection as SelectWithCount and records
// every node it visits.
func SelectWithTrace[T Number](values []T) (Bounds[T], Trace[T], error) {
	if len(values) == 0 {
		return Bounds[T]{}, nil, ErrEmptyInput
	}

	trace := make(Trace[T], 0, len(values))

	result, _ := selectRange(values, 0, len(values)-1, func(step Step[T]) {
		trace = append(trace, step)
	})

	return result, trace, nil
}
