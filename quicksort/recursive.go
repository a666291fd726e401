package quicksort

// RecursiveSorter is the classic two-way recursive quicksort.
// The zero value is ready to use.
type RecursiveSorter struct {
	instrument
}

var _ Sorter = (*RecursiveSorter)(nil)

// Variant returns Recursive.
func (s *RecursiveSorter) Variant() Variant { return Recursive }

// Sort sorts data in place. It returns an *UnsortedError if the result
// is not in ascending order.
func (s *RecursiveSorter) Sort(data []int) error {
	return s.timed(Recursive, data, func(arr []int) {
		s.quicksort(arr, 0, len(arr)-1)
	})
}

// quicksort counts every invocation, including the base case.
func (s *RecursiveSorter) quicksort(arr []int, low, high int) {
	s.count++

	if low >= high {
		return
	}

	p := s.partition(arr, low, high)
	s.quicksort(arr, low, p-1)
	s.quicksort(arr, p+1, high)
}
