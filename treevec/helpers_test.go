package treevec_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treevec/treevec"
)

const (
	binaryNewick = "((A:1,B:2)AB:3,(C:4,D:5)CD:6)R;"
	multiNewick  = "(A:1,B:1,C:1,(D:1,E:1)DE:1)R;"
)

var (
	binaryIndex = treevec.LeafIndex{"A": 1, "B": 2, "C": 3, "D": 4}
	multiIndex  = treevec.LeafIndex{"A": 1, "B": 2, "C": 3, "D": 4, "E": 5}
)

// mustEncode parses s and encodes it, failing the test on error.
func mustEncode(t *testing.T, s string, idx treevec.LeafIndex) treevec.Vector {
	t.Helper()
	v, err := treevec.EncodeNewick(s, idx)
	require.NoError(t, err)

	return v
}

// randomNewick builds a random tree with n leaves named L1..Ln and internal
// nodes of arity 2..maxArity, every edge carrying a length. It returns the
// Newick string and the number of internal nodes.
func randomNewick(rng *rand.Rand, n, maxArity int) (string, int) {
	type sub struct {
		text string
	}
	pool := make([]sub, n)
	for i := range pool {
		pool[i] = sub{fmt.Sprintf("L%d", i+1)}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	internal := 0
	for len(pool) > 1 {
		k := 2 + rng.Intn(maxArity-1)
		if k > len(pool) {
			k = len(pool)
		}
		parts := make([]string, k)
		for i := 0; i < k; i++ {
			parts[i] = fmt.Sprintf("%s:%.2f", pool[i].text, 0.05+rng.Float64())
		}
		internal++
		merged := sub{fmt.Sprintf("(%s)n%d", strings.Join(parts, ","), internal)}
		pool = append([]sub{merged}, pool[k:]...)
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}

	return pool[0].text + ";", internal
}

// randomIndex maps L1..Ln onto a random permutation of 1..n.
func randomIndex(rng *rand.Rand, n int) treevec.LeafIndex {
	idx := make(treevec.LeafIndex, n)
	for i, p := range rng.Perm(n) {
		idx[fmt.Sprintf("L%d", i+1)] = p + 1
	}

	return idx
}
