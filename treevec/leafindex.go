package treevec

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"cloudeng.io/errors"
)

// LeafIndex maps leaf names to leaf indices 1..n and so fixes a total order
// on the leaves. Two vectors are comparable only when built from the same
// LeafIndex.
type LeafIndex map[string]int

// ReadLeafIndex decodes a JSON object such as {"A": 1, "B": 2}.
func ReadLeafIndex(r io.Reader) (LeafIndex, error) {
	var m LeafIndex
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLeafMapping, err)
	}

	return m, nil
}

// Validate checks that m is a bijection onto 1..n. Every violation is
// reported; the returned error matches ErrInvalidLeafMapping.
func (m LeafIndex) Validate(n int) error {
	errs := &errors.M{}
	if len(m) != n {
		errs.Append(fmt.Errorf("%w: %d names for %d leaves", ErrInvalidLeafMapping, len(m), n))
	}

	owner := make(map[int]string, len(m))
	for _, name := range m.sortedNames() {
		i := m[name]
		if i < 1 || i > n {
			errs.Append(fmt.Errorf("%w: leaf %q has index %d outside 1..%d", ErrInvalidLeafMapping, name, i, n))
			continue
		}
		if prev, dup := owner[i]; dup {
			errs.Append(fmt.Errorf("%w: index %d used by %q and %q", ErrInvalidLeafMapping, i, prev, name))
			continue
		}
		owner[i] = name
	}
	for i := 1; i <= n; i++ {
		if _, ok := owner[i]; !ok {
			errs.Append(fmt.Errorf("%w: index %d is not assigned", ErrInvalidLeafMapping, i))
		}
	}

	return errs.Err()
}

// Names inverts m into index → name.
func (m LeafIndex) Names() map[int]string {
	out := make(map[int]string, len(m))
	for name, i := range m {
		out[i] = name
	}

	return out
}

// LabelNames returns the leaf names of l's members in index order.
func (m LeafIndex) LabelNames(l Label) []string {
	return Entry{Label: l}.LabelNames(m.Names())
}

func (m LeafIndex) sortedNames() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
