package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/treevec/treevec"
)

var errInput = errors.New("treevec: bad input")

// pair is the content of a compare file.
type pair struct {
	TreeA, TreeB   string
	IndexA, IndexB treevec.LeafIndex
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}

	return out, sc.Err()
}

// readPair reads four lines: tree A, its JSON leaf map, tree B, its map.
func readPair(r io.Reader) (pair, error) {
	lines, err := readLines(r)
	if err != nil {
		return pair{}, err
	}
	if len(lines) < 4 {
		return pair{}, fmt.Errorf("%w: want 4 lines (tree, leaf map, tree, leaf map), got %d", errInput, len(lines))
	}
	p := pair{TreeA: lines[0], TreeB: lines[2]}
	if p.IndexA, err = treevec.ReadLeafIndex(strings.NewReader(lines[1])); err != nil {
		return pair{}, fmt.Errorf("line 2: %w", err)
	}
	if p.IndexB, err = treevec.ReadLeafIndex(strings.NewReader(lines[3])); err != nil {
		return pair{}, fmt.Errorf("line 4: %w", err)
	}

	return p, nil
}

// readSequences reads one whitespace separated integer sequence per line.
func readSequences(r io.Reader) ([][]int, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	seqs := make([][]int, 0, len(lines))
	for i, line := range lines {
		fields := strings.Fields(line)
		seq := make([]int, len(fields))
		for k, f := range fields {
			if seq[k], err = strconv.Atoi(f); err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", errInput, i+1, f)
			}
		}
		seqs = append(seqs, seq)
	}

	return seqs, nil
}

// readLeafIndexFile loads a JSON leaf map; an empty path yields nil.
func readLeafIndexFile(path string) (treevec.LeafIndex, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return treevec.ReadLeafIndex(f)
}

// readVector decodes a vector written in the given output form.
func readVector(r io.Reader, form string, names map[int]string, opts treevec.FormatOptions) (treevec.Vector, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var v treevec.Vector
	switch form {
	case "json":
		err = json.Unmarshal(data, &v)
	case "yaml":
		err = yaml.Unmarshal(data, &v)
	default:
		return treevec.ParseVector(strings.TrimSpace(string(data)), names, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInput, err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	return v, nil
}

// writeVector prints v in the given output form.
func writeVector(w io.Writer, v treevec.Vector, form string, opts treevec.FormatOptions) error {
	switch form {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		s, err := v.Format(opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)

		return err
	}
}
