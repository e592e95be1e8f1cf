package lis

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Length returns the length of a longest strictly increasing subsequence of s.
//
// Algorithm (patience sorting):
//  1. Keep tails, where tails[k] is the smallest tail of any increasing
//     subsequence of length k+1 seen so far. tails is sorted.
//  2. For each x: find the first k with tails[k] >= x (binary search).
//     If none, append x; otherwise replace tails[k] with x.
//  3. len(tails) is the answer.
//
// Complexity: O(m log m) time, O(m) memory.
func Length[T cmp.Ordered](s []T) (int, error) {
	if err := validate(s); err != nil {
		return 0, err
	}
	tails := make([]T, 0, len(s))
	for _, x := range s {
		k, _ := slices.BinarySearch(tails, x)
		if k == len(tails) {
			tails = append(tails, x)
		} else {
			tails[k] = x
		}
	}

	return len(tails), nil
}

// Indices returns the positions in s of one longest strictly increasing
// subsequence, in ascending order. An empty s yields an empty result.
//
// Next to tails it keeps pile[k], the position of the element currently on
// top of pile k, and trace[i], the top of pile k-1 at the moment s[i] was
// placed on pile k. Walking trace back from the top of the last pile
// rebuilds the subsequence in reverse.
func Indices[T cmp.Ordered](s []T) ([]int, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	if len(s) == 0 {
		return []int{}, nil
	}

	tails := make([]T, 0, len(s))
	pile := make([]int, 0, len(s))
	trace := make([]int, len(s))
	for i, x := range s {
		k, _ := slices.BinarySearch(tails, x)
		trace[i] = -1
		if k > 0 {
			trace[i] = pile[k-1]
		}
		if k == len(tails) {
			tails = append(tails, x)
			pile = append(pile, i)
		} else {
			tails[k] = x
			pile[k] = i
		}
	}

	out := make([]int, 0, len(tails))
	for t := pile[len(pile)-1]; t >= 0; t = trace[t] {
		out = append(out, t)
	}
	slices.Reverse(out)

	return out, nil
}

// Sequence returns one longest strictly increasing subsequence of s.
// See Indices for the tie policy.
func Sequence[T cmp.Ordered](s []T) ([]T, error) {
	idx, err := Indices(s)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(idx))
	for i, p := range idx {
		out[i] = s[p]
	}

	return out, nil
}

// validate rejects NaN and infinite floating-point elements.
func validate[T cmp.Ordered](s []T) error {
	for i, x := range s {
		if x != x { // NaN, whatever the float kind
			return fmt.Errorf("%w: NaN at position %d", ErrNonFiniteInput, i)
		}
		switch v := any(x).(type) {
		case float64:
			if math.IsInf(v, 0) {
				return fmt.Errorf("%w: %v at position %d", ErrNonFiniteInput, v, i)
			}
		case float32:
			if math.IsInf(float64(v), 0) {
				return fmt.Errorf("%w: %v at position %d", ErrNonFiniteInput, v, i)
			}
		}
	}

	return nil
}
