package treevec

import (
	"encoding/binary"
	"errors"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLeafMapping indicates the leaf index map is not a bijection
	// from the tree's leaf names onto 1..n.
	ErrInvalidLeafMapping = errors.New("treevec: invalid leaf mapping")

	// ErrMalformedVector indicates a vector that does not satisfy the
	// encoding invariants.
	ErrMalformedVector = errors.New("treevec: malformed vector")

	// ErrInvalidBranchLength indicates a tree edge whose length is negative
	// or not finite. Edges without a length are accepted.
	ErrInvalidBranchLength = errors.New("treevec: invalid branch length")

	// ErrNilTree indicates Encode was given a nil tree or a tree without root.
	ErrNilTree = errors.New("treevec: tree is nil")

	// ErrFormat indicates a vector that cannot be written to, or read from,
	// the text format.
	ErrFormat = errors.New("treevec: invalid text format")
)

// Label is an immutable set of leaf indices.
//
// Labels compare by value with == and can be used as map keys. The zero
// Label is the empty set, which only unary internal nodes carry.
type Label struct {
	// members packed as 8-byte big-endian words, ascending, sign bit
	// flipped so byte order matches numeric order
	key string
}

const (
	wordSize = 8
	signBit  = 1 << 63
)

// NewLabel returns the set of the given indices. Order and duplicates in
// the arguments do not matter.
func NewLabel(indices ...int) Label {
	s := slices.Clone(indices)
	slices.Sort(s)
	s = slices.Compact(s)
	buf := make([]byte, 0, len(s)*wordSize)
	for _, x := range s {
		buf = binary.BigEndian.AppendUint64(buf, uint64(x)^signBit)
	}

	return Label{key: string(buf)}
}

// at returns the k-th smallest member.
func (l Label) at(k int) int {
	var w uint64
	for j := k * wordSize; j < (k+1)*wordSize; j++ {
		w = w<<8 | uint64(l.key[j])
	}

	return int(w ^ signBit)
}

// Indices returns the members in ascending order. Never nil.
func (l Label) Indices() []int {
	out := make([]int, l.Len())
	for k := range out {
		out[k] = l.at(k)
	}

	return out
}

// Len returns the number of members.
func (l Label) Len() int {
	return len(l.key) / wordSize
}

// IsEmpty reports whether the set is empty.
func (l Label) IsEmpty() bool {
	return l.key == ""
}

// Contains reports whether i is a member. O(log |l|), no allocation.
func (l Label) Contains(i int) bool {
	lo, hi := 0, l.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch x := l.at(mid); {
		case x == i:
			return true
		case x < i:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

// Min returns the smallest member; ok is false for the empty set.
func (l Label) Min() (minIdx int, ok bool) {
	if l.IsEmpty() {
		return 0, false
	}

	return l.at(0), true
}

// Key returns the members as text, e.g. "2 5".
func (l Label) Key() string {
	parts := make([]string, l.Len())
	for k := range parts {
		parts[k] = strconv.Itoa(l.at(k))
	}

	return strings.Join(parts, " ")
}

// Equal reports whether l and o hold the same indices. Labels are also
// comparable with ==.
func (l Label) Equal(o Label) bool {
	return l.key == o.key
}

// String renders the set as "{2 5}".
func (l Label) String() string {
	return "{" + l.Key() + "}"
}

// Entry is one node record of a Vector.
type Entry struct {
	// Label is the leaf's own index for a leaf, the set label otherwise.
	Label Label `json:"label" yaml:"label"`

	// Name is the node name as found in the tree.
	Name string `json:"name" yaml:"name"`

	// BranchLength is the length of the edge to the parent; 0 for the root
	// and the dummy root, and for edges without a length.
	BranchLength float64 `json:"branch_length" yaml:"branch_length"`

	// Leaf is true on the leaf occurrence, false on internal-node entries.
	Leaf bool `json:"leaf" yaml:"leaf"`
}

// Index returns the leaf index of a leaf entry, or 0 for internal entries.
func (e Entry) Index() int {
	if !e.Leaf {
		return 0
	}
	i, _ := e.Label.Min()

	return i
}

// LabelNames returns the leaf names of the label's members, in index order.
// Indices missing from names are skipped.
func (e Entry) LabelNames(names map[int]string) []string {
	var out []string
	for _, i := range e.Label.Indices() {
		if s, ok := names[i]; ok {
			out = append(out, s)
		}
	}

	return out
}

// Vector is the canonical encoding of a tree: the dummy root entry, then
// for each leaf i = 1..n the internal nodes whose min is i (top-down)
// followed by leaf i.
type Vector []Entry

// N returns the number of leaves.
func (v Vector) N() int {
	n := 0
	for _, e := range v {
		if e.Leaf {
			n++
		}
	}

	return n
}

// InternalCount returns the number of internal entries, the dummy root
// excluded.
func (v Vector) InternalCount() int {
	if len(v) == 0 {
		return 0
	}

	return len(v) - v.N() - 1
}

// Leaves returns the leaf entries in index order.
func (v Vector) Leaves() []Entry {
	out := make([]Entry, 0, len(v)/2+1)
	for _, e := range v {
		if e.Leaf {
			out = append(out, e)
		}
	}

	return out
}

// Names returns the Name field of every entry, in vector order.
func (v Vector) Names() []string {
	out := make([]string, len(v))
	for i, e := range v {
		out[i] = e.Name
	}

	return out
}

// LeafIndex returns the leaf index map the vector was built with.
func (v Vector) LeafIndex() LeafIndex {
	m := make(LeafIndex, len(v)/2+1)
	for _, e := range v {
		if e.Leaf {
			m[e.Name] = e.Index()
		}
	}

	return m
}
