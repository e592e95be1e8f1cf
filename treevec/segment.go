package treevec

// Segment is the half-open range [Start, End) of internal entries that
// precede leaf Leaf, after the previous leaf. The dummy root is not part of
// any segment.
type Segment struct {
	Leaf  int
	Start int
	End   int
}

// Len returns the number of entries in the segment.
func (s Segment) Len() int {
	if s.End <= s.Start {
		return 0
	}

	return s.End - s.Start
}

// Empty reports whether the segment holds no entry.
func (s Segment) Empty() bool {
	return s.Len() == 0
}

// Segments splits v with one linear scan into exactly v.N() segments, the
// j-th one ending right before leaf j.
func Segments(v Vector) []Segment {
	out := make([]Segment, 0, len(v)/2+1)
	start, leaf := 1, 0
	for p := 1; p < len(v); p++ {
		if !v[p].Leaf {
			continue
		}
		leaf++
		out = append(out, Segment{Leaf: leaf, Start: start, End: p})
		start = p + 1
	}

	return out
}

// Labels returns the labels of the entries covered by s.
func (v Vector) Labels(s Segment) []Label {
	out := make([]Label, 0, s.Len())
	for p := s.Start; p < s.End; p++ {
		out = append(out, v[p].Label)
	}

	return out
}
