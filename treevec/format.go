package treevec

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// SepNode separates the fields of one entry.
	SepNode = ":"
	// SepVec separates entries.
	SepVec = ","
)

// Format selects which fields the text form carries.
type Format int

const (
	// WithLengths writes label:name:dist.
	WithLengths Format = 1
	// NamesOnly writes label:name; lengths read back as 0.
	NamesOnly Format = 2
)

// FormatOptions configures Vector.Format and ParseVector.
//
// In compact mode leaf entries drop their label and name, which are
// recovered from the leaf order and an index → name table: a leaf is
// written as its branch length (WithLengths) or as an empty field
// (NamesOnly).
type FormatOptions struct {
	Format  Format
	Compact bool
}

// DefaultFormatOptions returns the non-compact WithLengths layout.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{Format: WithLengths}
}

// Format writes v as text. Internal labels are written as explicit sets
// ("{2 5}"), leaf labels as their index. Names containing a separator or a
// brace cannot be written and yield ErrFormat.
func (v Vector) Format(opts FormatOptions) (string, error) {
	if opts.Format != WithLengths && opts.Format != NamesOnly {
		return "", fmt.Errorf("%w: unknown format %d", ErrFormat, opts.Format)
	}
	parts := make([]string, len(v))
	for p, e := range v {
		if strings.ContainsAny(e.Name, SepNode+SepVec+"{}") {
			return "", fmt.Errorf("%w: entry %d name %q contains a separator", ErrFormat, p, e.Name)
		}
		dist := strconv.FormatFloat(e.BranchLength, 'g', -1, 64)

		var fields []string
		switch {
		case e.Leaf && opts.Compact && opts.Format == WithLengths:
			fields = []string{dist}
		case e.Leaf && opts.Compact:
			fields = []string{""}
		case e.Leaf:
			fields = []string{strconv.Itoa(e.Index()), e.Name}
		default:
			fields = []string{e.Label.String(), e.Name}
		}
		if opts.Format == WithLengths && !(e.Leaf && opts.Compact) {
			fields = append(fields, dist)
		}
		parts[p] = strings.Join(fields, SepNode)
	}

	return strings.Join(parts, SepVec), nil
}

// ParseVector reads the text form written by Format with the same options.
// names maps leaf indices to leaf names and is required in compact mode.
// The result is validated; structural problems yield ErrMalformedVector.
func ParseVector(s string, names map[int]string, opts FormatOptions) (Vector, error) {
	if opts.Format != WithLengths && opts.Format != NamesOnly {
		return nil, fmt.Errorf("%w: unknown format %d", ErrFormat, opts.Format)
	}
	fieldCount := 2
	if opts.Format == WithLengths {
		fieldCount = 3
	}

	var v Vector
	leaf := 0
	for p, item := range strings.Split(strings.TrimSpace(s), SepVec) {
		internal := strings.HasPrefix(item, "{")
		if !internal && opts.Compact {
			leaf++
			e, err := parseCompactLeaf(item, leaf, names, opts.Format)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", p, err)
			}
			v = append(v, e)
			continue
		}

		fields := strings.Split(item, SepNode)
		if len(fields) != fieldCount {
			return nil, fmt.Errorf("%w: entry %d %q has %d fields, want %d", ErrFormat, p, item, len(fields), fieldCount)
		}
		e := Entry{Name: fields[1], Leaf: !internal}
		if internal {
			l, err := parseLabel(fields[0])
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", p, err)
			}
			e.Label = l
		} else {
			i, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d leaf index %q", ErrFormat, p, fields[0])
			}
			leaf++
			e.Label = NewLabel(i)
		}
		if opts.Format == WithLengths {
			d, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: entry %d branch length %q", ErrFormat, p, fields[2])
			}
			e.BranchLength = d
		}
		v = append(v, e)
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}

	return v, nil
}

func parseCompactLeaf(item string, leaf int, names map[int]string, f Format) (Entry, error) {
	name, ok := names[leaf]
	if !ok {
		return Entry{}, fmt.Errorf("%w: no name for leaf %d", ErrFormat, leaf)
	}
	e := Entry{Label: NewLabel(leaf), Name: name, Leaf: true}
	if f == NamesOnly {
		if item != "" {
			return Entry{}, fmt.Errorf("%w: compact leaf %d should be empty, got %q", ErrFormat, leaf, item)
		}

		return e, nil
	}
	d, err := strconv.ParseFloat(item, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: compact leaf %d branch length %q", ErrFormat, leaf, item)
	}
	e.BranchLength = d

	return e, nil
}

// parseLabel reads "{2 5}".
func parseLabel(s string) (Label, error) {
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return Label{}, fmt.Errorf("%w: label %q is not a set", ErrFormat, s)
	}
	fields := strings.Fields(s[1 : len(s)-1])
	idx := make([]int, len(fields))
	for k, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil {
			return Label{}, fmt.Errorf("%w: label %q: %v", ErrFormat, s, err)
		}
		idx[k] = i
	}

	return NewLabel(idx...), nil
}
