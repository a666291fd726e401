package quicksort

// span is an inclusive [low, high] index range awaiting partitioning.
type span struct {
	low, high int
}

// IterativeSorter simulates quicksort's recursion with an explicit
// stack of spans. The zero value is ready to use.
type IterativeSorter struct {
	instrument
}

var _ Sorter = (*IterativeSorter)(nil)

// Variant returns Iterative.
func (s *IterativeSorter) Variant() Variant { return Iterative }

// Sort sorts data in place. It returns an *UnsortedError if the result
// is not in ascending order.
func (s *IterativeSorter) Sort(data []int) error {
	return s.timed(Iterative, data, s.quicksort)
}

// quicksort counts one operation per pop-and-partition cycle. Spans of a
// single element are never pushed.
func (s *IterativeSorter) quicksort(arr []int) {
	if len(arr) < 2 {
		return
	}

	// Pending spans never exceed half the input length.
	stack := make([]span, 0, len(arr)/2+1)
	stack = append(stack, span{0, len(arr) - 1})

	for len(stack) > 0 {
		s.count++

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := s.partition(arr, top.low, top.high)

		if p-1 > top.low {
			stack = append(stack, span{top.low, p - 1})
		}

		if p+1 < top.high {
			stack = append(stack, span{p + 1, top.high})
		}
	}
}
