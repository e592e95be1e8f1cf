package hop

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/treevec/lis"
	"github.com/katalvlaran/treevec/treevec"
)

// segmentResult is the outcome for one pair of segments.
type segmentResult struct {
	length  int
	matched []treevec.Label // labels of A, only when a sequence is wanted
}

// Similarity returns n plus the summed per-segment LCS lengths of a and b.
//
// Returns ErrLeafSetMismatch when the vectors have different leaf counts or
// name different leaves at the same index.
func Similarity(a, b treevec.Vector, opts ...Option) (int, error) {
	res, err := compare(a, b, false, buildOptions(opts))
	if err != nil {
		return 0, err
	}
	total := a.N()
	for _, r := range res {
		total += r.length
	}

	return total, nil
}

// Alignment returns one longest alignment witness: for each leaf j, the
// labels of A's segment j that are matched in B (in A order), followed by
// the leaf j marker.
func Alignment(a, b treevec.Vector, opts ...Option) ([]Match, error) {
	res, err := compare(a, b, true, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	leaves := a.Leaves()
	out := make([]Match, 0, len(a))
	for j, r := range res {
		for _, l := range r.matched {
			out = append(out, Match{Label: l})
		}
		out = append(out, Match{Label: leaves[j].Label, Leaf: true})
	}

	return out, nil
}

// Distance returns n + max(internal(a), internal(b)) − Similarity(a, b).
func Distance(a, b treevec.Vector, opts ...Option) (int, error) {
	sim, err := Similarity(a, b, opts...)
	if err != nil {
		return 0, err
	}

	return a.N() + max(a.InternalCount(), b.InternalCount()) - sim, nil
}

// compare validates both vectors and evaluates every segment pair.
func compare(a, b treevec.Vector, wantSeq bool, o Options) ([]segmentResult, error) {
	if err := sameLeaves(a, b); err != nil {
		return nil, err
	}
	segA, segB := treevec.Segments(a), treevec.Segments(b)
	res := make([]segmentResult, len(segA))

	eval := func(j int) error {
		r, err := compareSegment(a.Labels(segA[j]), b.Labels(segB[j]), wantSeq)
		if err != nil {
			return fmt.Errorf("segment %d: %w", j+1, err)
		}
		o.Logger.Debug("segment compared",
			slog.Int("leaf", j+1),
			slog.Int("len_a", segA[j].Len()),
			slog.Int("len_b", segB[j].Len()),
			slog.Int("lcs", r.length))
		res[j] = r

		return nil
	}

	if o.Workers < 2 {
		for j := range res {
			if err := eval(j); err != nil {
				return nil, err
			}
		}

		return res, nil
	}

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for j := range res {
		g.Go(func() error { return eval(j) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// compareSegment relabels segB into segA's positions, drops labels absent
// from segA and runs LIS on the result. The relabeling needs every label of
// segA to be distinct; segments holding several unary nodes (empty labels)
// go through the quadratic table instead.
func compareSegment(segA, segB []treevec.Label, wantSeq bool) (segmentResult, error) {
	if len(segA) == 0 || len(segB) == 0 {
		return segmentResult{}, nil
	}

	pos := make(map[treevec.Label]int, len(segA))
	for i, l := range segA {
		if _, dup := pos[l]; dup {
			return tableLCS(segA, segB, wantSeq), nil
		}
		pos[l] = i
	}
	rel := make([]int, 0, len(segB))
	for _, l := range segB {
		if p, ok := pos[l]; ok {
			rel = append(rel, p)
		}
	}

	if !wantSeq {
		n, err := lis.Length(rel)

		return segmentResult{length: n}, err
	}
	seq, err := lis.Sequence(rel)
	if err != nil {
		return segmentResult{}, err
	}
	matched := make([]treevec.Label, len(seq))
	for k, p := range seq {
		matched[k] = segA[p]
	}

	return segmentResult{length: len(seq), matched: matched}, nil
}

// sameLeaves validates both vectors and checks that leaf j has the same
// name in both.
func sameLeaves(a, b treevec.Vector) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("first vector: %w", err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("second vector: %w", err)
	}
	la, lb := a.Leaves(), b.Leaves()
	if len(la) != len(lb) {
		return fmt.Errorf("%w: %d leaves vs %d", ErrLeafSetMismatch, len(la), len(lb))
	}
	for j := range la {
		if la[j].Name != lb[j].Name {
			return fmt.Errorf("%w: leaf %d is %q vs %q", ErrLeafSetMismatch, j+1, la[j].Name, lb[j].Name)
		}
	}

	return nil
}
