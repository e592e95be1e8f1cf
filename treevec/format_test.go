package treevec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/treevec/treevec"
)

// TestFormat_Layouts checks the four text layouts on the binary example.
func TestFormat_Layouts(t *testing.T) {
	v := mustEncode(t, binaryNewick, binaryIndex)
	cases := []struct {
		name string
		opts treevec.FormatOptions
		want string
	}{
		{"lengths", treevec.FormatOptions{Format: treevec.WithLengths},
			"{1}::0,{3}:R:0,{2}:AB:3,1:A:1,2:B:2,{4}:CD:6,3:C:4,4:D:5"},
		{"names", treevec.FormatOptions{Format: treevec.NamesOnly},
			"{1}:,{3}:R,{2}:AB,1:A,2:B,{4}:CD,3:C,4:D"},
		{"lengths compact", treevec.FormatOptions{Format: treevec.WithLengths, Compact: true},
			"{1}::0,{3}:R:0,{2}:AB:3,1,2,{4}:CD:6,4,5"},
		{"names compact", treevec.FormatOptions{Format: treevec.NamesOnly, Compact: true},
			"{1}:,{3}:R,{2}:AB,,,{4}:CD,,"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := v.Format(tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s)

			back, err := treevec.ParseVector(s, binaryIndex.Names(), tc.opts)
			require.NoError(t, err)
			require.Len(t, back, len(v))
			for i := range v {
				assert.Equal(t, v[i].Label, back[i].Label)
				assert.Equal(t, v[i].Name, back[i].Name)
				assert.Equal(t, v[i].Leaf, back[i].Leaf)
				if tc.opts.Format == treevec.WithLengths {
					assert.Equal(t, v[i].BranchLength, back[i].BranchLength)
				}
			}
		})
	}
}

// TestFormat_SetLabelsStaySets ensures a multifurcation is never collapsed.
func TestFormat_SetLabelsStaySets(t *testing.T) {
	v := mustEncode(t, multiNewick, multiIndex)
	s, err := v.Format(treevec.DefaultFormatOptions())
	require.NoError(t, err)
	assert.Contains(t, s, "{2 3 4}:R:0")

	back, err := treevec.ParseVector(s, nil, treevec.DefaultFormatOptions())
	require.NoError(t, err)
	assert.Equal(t, v, back)
}

// TestFormat_Errors covers unwritable names and unreadable text.
func TestFormat_Errors(t *testing.T) {
	v := mustEncode(t, "((A,B),C);", treevec.LeafIndex{"A": 1, "B": 2, "C": 3})
	v[2].Name = "a:b"
	_, err := v.Format(treevec.DefaultFormatOptions())
	assert.ErrorIs(t, err, treevec.ErrFormat)

	_, err = v.Format(treevec.FormatOptions{Format: 9})
	assert.ErrorIs(t, err, treevec.ErrFormat)

	_, err = treevec.ParseVector("{1}::x,1:A:0", nil, treevec.DefaultFormatOptions())
	assert.ErrorIs(t, err, treevec.ErrFormat)

	_, err = treevec.ParseVector("{1:,", nil, treevec.FormatOptions{Format: treevec.NamesOnly})
	assert.ErrorIs(t, err, treevec.ErrFormat)

	_, err = treevec.ParseVector("{1}::0,0.5", map[int]string{}, treevec.FormatOptions{Format: treevec.WithLengths, Compact: true})
	assert.ErrorIs(t, err, treevec.ErrFormat, "compact leaf without a name")

	_, err = treevec.ParseVector("{1}::0,2:A:0", nil, treevec.DefaultFormatOptions())
	assert.ErrorIs(t, err, treevec.ErrMalformedVector)
}

// TestMarshal_JSON writes labels as index arrays and reads them back.
func TestMarshal_JSON(t *testing.T) {
	v := mustEncode(t, multiNewick, multiIndex)
	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"label":[2,3,4]`)
	assert.Contains(t, string(b), `{"label":[5],"name":"E","branch_length":1,"leaf":true}`)

	var back treevec.Vector
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, v, back)

	var l treevec.Label
	assert.ErrorIs(t, json.Unmarshal([]byte(`"x"`), &l), treevec.ErrFormat)
}

// TestMarshal_YAML round-trips through gopkg.in/yaml.v3.
func TestMarshal_YAML(t *testing.T) {
	v := mustEncode(t, multiNewick, multiIndex)
	b, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(b), "label: [2, 3, 4]")

	var back treevec.Vector
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.Equal(t, v, back)
}
