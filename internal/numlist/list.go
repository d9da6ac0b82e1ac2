package numlist

// List is the ordered collection of numbers the calculator operates on.
// Duplicates are permitted. The zero value is an empty list ready to use.
type List struct {
	values []float64
}

// New creates a list holding a copy of the given values.
func New(values ...float64) *List {
	l := &List{}
	l.Extend(values)
	return l
}

// Append adds a single value to the end of the list.
func (l *List) Append(v float64) {
	l.values = append(l.values, v)
}

// Extend appends all values in order.
func (l *List) Extend(vs []float64) {
	l.values = append(l.values, vs...)
}

// Remove deletes the first element equal to v and reports whether one was
// found. The last element is moved into the vacated slot, so the order of
// the remaining elements is not preserved. NaN never matches.
func (l *List) Remove(v float64) bool {
	for i, x := range l.values {
		if x != v {
			continue
		}
		last := len(l.values) - 1
		l.values[i] = l.values[last]
		l.values = l.values[:last]
		return true
	}
	return false
}

// Clear empties the list.
func (l *List) Clear() {
	l.values = l.values[:0]
}

// Len returns the number of values in the list.
func (l *List) Len() int {
	return len(l.values)
}

// IsEmpty reports whether the list has no values.
func (l *List) IsEmpty() bool {
	return len(l.values) == 0
}

// Values returns a copy of the values in list order.
func (l *List) Values() []float64 {
	out := make([]float64, len(l.values))
	copy(out, l.values)
	return out
}
