package numlist

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Max returns the largest value. The scan starts from the first element and
// replaces the candidate only when a later element compares greater, so a
// leading NaN is returned as is and later NaNs are skipped.
func Max(xs []float64) float64 {
	largest := xs[0]
	for _, x := range xs[1:] {
		if x > largest {
			largest = x
		}
	}
	return largest
}

// Min returns the smallest value, scanning like Max.
func Min(xs []float64) float64 {
	smallest := xs[0]
	for _, x := range xs[1:] {
		if x < smallest {
			smallest = x
		}
	}
	return smallest
}

// Sum adds the values left to right. The sum of no values is 0.
func Sum(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum
}

// Product multiplies the values left to right. The product of no values is 1.
func Product(xs []float64) float64 {
	prod := 1.0
	for _, x := range xs {
		prod *= x
	}
	return prod
}

// Mean returns Sum(xs) divided by the number of values.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		panic("numlist: mean of empty slice")
	}
	return Sum(xs) / float64(len(xs))
}

// Range returns Max(xs) - Min(xs).
func Range(xs []float64) float64 {
	return Max(xs) - Min(xs)
}

// SortedAscending returns a sorted copy of xs.
//
// Ordering follows cmp.Compare: NaN values come before every other value,
// and -0 and +0 compare equal. The sort is stable.
func SortedAscending(xs []float64) []float64 {
	out := slices.Clone(xs)
	slices.SortStableFunc(out, cmp.Compare[float64])
	return out
}

// SortedDescending returns the exact reverse of SortedAscending(xs), so NaN
// values come last.
func SortedDescending(xs []float64) []float64 {
	out := SortedAscending(xs)
	slices.Reverse(out)
	return out
}

// Median returns the middle value of the sorted values, or the mean of the
// two middle values when the count is even. gonum's stat.Quantile returns
// the lower middle value for even counts, so the average is taken here.
func Median(xs []float64) float64 {
	if len(xs) == 0 {
		panic("numlist: median of empty slice")
	}
	s := SortedAscending(xs)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2.0
}

// StdDev returns the population standard deviation of xs.
func StdDev(xs []float64) float64 {
	return stat.PopStdDev(xs, nil)
}
