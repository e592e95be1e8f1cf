package treevec

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalJSON writes the label as an array of indices, even for a leaf.
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Indices())
}

// UnmarshalJSON reads an array of indices.
func (l *Label) UnmarshalJSON(b []byte) error {
	var idx []int
	if err := json.Unmarshal(b, &idx); err != nil {
		return fmt.Errorf("%w: label: %v", ErrFormat, err)
	}
	*l = NewLabel(idx...)

	return nil
}

// MarshalYAML writes the label as a flow sequence, e.g. [2, 5].
func (l Label) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, i := range l.Indices() {
		seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)})
	}

	return seq, nil
}

// UnmarshalYAML reads a sequence of indices.
func (l *Label) UnmarshalYAML(value *yaml.Node) error {
	var idx []int
	if err := value.Decode(&idx); err != nil {
		return fmt.Errorf("%w: label: %v", ErrFormat, err)
	}
	*l = NewLabel(idx...)

	return nil
}
