package hop_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/evolbioinfo/gotree/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treevec/hop"
	"github.com/katalvlaran/treevec/treevec"
)

var abcd = treevec.LeafIndex{"A": 1, "B": 2, "C": 3, "D": 4}

func mustEncode(t *testing.T, s string, idx treevec.LeafIndex) treevec.Vector {
	t.Helper()
	v, err := treevec.EncodeNewick(s, idx)
	require.NoError(t, err)

	return v
}

// randomTree returns a random Newick tree over L1..Ln with internal arity
// between 2 and 4.
func randomTree(rng *rand.Rand, n int) string {
	pool := make([]string, n)
	for i := range pool {
		pool[i] = fmt.Sprintf("L%d", i+1)
	}
	for len(pool) > 1 {
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		k := min(2+rng.Intn(3), len(pool))
		merged := "(" + strings.Join(pool[:k], ",") + ")"
		pool = append([]string{merged}, pool[k:]...)
	}

	return pool[0] + ";"
}

func randomIndex(n int) treevec.LeafIndex {
	idx := make(treevec.LeafIndex, n)
	for i := 1; i <= n; i++ {
		idx[fmt.Sprintf("L%d", i)] = i
	}

	return idx
}

// randomUnaryTree is randomTree with single-child nodes wrapped around
// random subtrees.
func randomUnaryTree(rng *rand.Rand, n int) string {
	wrap := func(s string) string {
		for rng.Intn(3) == 0 {
			s = "(" + s + ")"
		}

		return s
	}
	pool := make([]string, n)
	for i := range pool {
		pool[i] = wrap(fmt.Sprintf("L%d", i+1))
	}
	for len(pool) > 1 {
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		k := min(2+rng.Intn(3), len(pool))
		merged := wrap("(" + strings.Join(pool[:k], ",") + ")")
		pool = append([]string{merged}, pool[k:]...)
	}
	root := pool[0]
	if !strings.HasPrefix(root, "(") {
		root = "(" + root + ")"
	}

	return root + ";"
}

// segmentLCS is n plus the textbook LCS of every segment pair.
func segmentLCS(a, b treevec.Vector) int {
	segA, segB := treevec.Segments(a), treevec.Segments(b)
	total := a.N()
	for j := range segA {
		x, y := a.Labels(segA[j]), b.Labels(segB[j])
		dp := make([][]int, len(x)+1)
		for i := range dp {
			dp[i] = make([]int, len(y)+1)
		}
		for i := 1; i <= len(x); i++ {
			for k := 1; k <= len(y); k++ {
				if x[i-1] == y[k-1] {
					dp[i][k] = dp[i-1][k-1] + 1
				} else {
					dp[i][k] = max(dp[i-1][k], dp[i][k-1])
				}
			}
		}
		total += dp[len(x)][len(y)]
	}

	return total
}

// TestSimilarity_Reference checks a hand-computed pair of quartets.
//
//	((A,B),(C,D)) → {1} {3} {2} 1 2 {4} 3 4
//	((A,C),(B,D)) → {1} {2} {3} 1 {4} 2 3 4
//
// Only segment 1 shares labels ({3},{2} vs {2},{3}), with LCS 1.
func TestSimilarity_Reference(t *testing.T) {
	a := mustEncode(t, "((A,B),(C,D));", abcd)
	b := mustEncode(t, "((A,C),(B,D));", abcd)

	sim, err := hop.Similarity(a, b)
	require.NoError(t, err)
	assert.Equal(t, 5, sim)

	d, err := hop.Distance(a, b)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

// TestSimilarity_Self verifies Similarity(v, v) = n + internal and Distance 0.
func TestSimilarity_Self(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(20)
		v := mustEncode(t, randomTree(rng, n), randomIndex(n))

		sim, err := hop.Similarity(v, v)
		require.NoError(t, err)
		assert.Equal(t, n+v.InternalCount(), sim)

		d, err := hop.Distance(v, v)
		require.NoError(t, err)
		assert.Zero(t, d)
	}
}

// TestSimilarity_SymmetricAndBounded checks symmetry, the n lower bound and
// a non-negative distance on random pairs.
func TestSimilarity_SymmetricAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		n := 2 + rng.Intn(15)
		idx := randomIndex(n)
		a := mustEncode(t, randomTree(rng, n), idx)
		b := mustEncode(t, randomTree(rng, n), idx)

		ab, err := hop.Similarity(a, b)
		require.NoError(t, err)
		ba, err := hop.Similarity(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
		assert.GreaterOrEqual(t, ab, n)
		assert.LessOrEqual(t, ab, n+min(a.InternalCount(), b.InternalCount()))

		d, err := hop.Distance(a, b)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, d, 0)
	}
}

// TestSimilarity_UnaryNodes covers segments holding several empty labels.
//
//	a = (((A)u1,B)x)r  → {1} {} {2} {} 1 2
//	b = (((A,B)x)u)r   → {1} {} {} {2} 1 2
func TestSimilarity_UnaryNodes(t *testing.T) {
	ab := treevec.LeafIndex{"A": 1, "B": 2}
	a := mustEncode(t, "(((A)u1,B)x)r;", ab)
	b := mustEncode(t, "(((A,B)x)u)r;", ab)
	c := mustEncode(t, "((((A)u1,B)x)u2);", ab)

	for _, v := range []treevec.Vector{a, b, c} {
		sim, err := hop.Similarity(v, v)
		require.NoError(t, err)
		assert.Equal(t, v.N()+v.InternalCount(), sim)
	}

	ab1, err := hop.Similarity(a, b)
	require.NoError(t, err)
	ba1, err := hop.Similarity(b, a)
	require.NoError(t, err)
	assert.Equal(t, 4, ab1)
	assert.Equal(t, ab1, ba1)

	m, err := hop.Alignment(a, b)
	require.NoError(t, err)
	assert.Len(t, m, ab1)
}

// TestSimilarity_RandomUnary checks self-similarity, symmetry and the
// segment-wise LCS on random trees with unary chains.
func TestSimilarity_RandomUnary(t *testing.T) {
	rng := rand.New(rand.NewSource(53))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(8)
		idx := randomIndex(n)
		a := mustEncode(t, randomUnaryTree(rng, n), idx)
		b := mustEncode(t, randomUnaryTree(rng, n), idx)

		self, err := hop.Similarity(a, a)
		require.NoError(t, err)
		assert.Equal(t, n+a.InternalCount(), self)

		ab, err := hop.Similarity(a, b)
		require.NoError(t, err)
		ba, err := hop.Similarity(b, a, hop.WithWorkers(3))
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
		assert.Equal(t, segmentLCS(a, b), ab)

		m, err := hop.Alignment(a, b)
		require.NoError(t, err)
		assert.Len(t, m, ab)
	}
}

// TestSimilarity_SingleLeaf covers n = 1.
func TestSimilarity_SingleLeaf(t *testing.T) {
	single := tree.NewTree()
	leaf := single.NewNode()
	leaf.SetName("A")
	single.SetRoot(leaf)
	v, err := treevec.Encode(single, treevec.LeafIndex{"A": 1})
	require.NoError(t, err)

	sim, err := hop.Similarity(v, v)
	require.NoError(t, err)
	assert.Equal(t, 1, sim)

	d, err := hop.Distance(v, v)
	require.NoError(t, err)
	assert.Zero(t, d)
}

// TestSimilarity_LeafSetMismatch verifies differing leaf sets are rejected.
func TestSimilarity_LeafSetMismatch(t *testing.T) {
	a := mustEncode(t, "((A,B),(C,D));", abcd)

	b := mustEncode(t, "((A,B),C);", treevec.LeafIndex{"A": 1, "B": 2, "C": 3})
	_, err := hop.Similarity(a, b)
	assert.ErrorIs(t, err, hop.ErrLeafSetMismatch)

	c := mustEncode(t, "((A,B),(C,X));", treevec.LeafIndex{"A": 1, "B": 2, "C": 3, "X": 4})
	_, err = hop.Distance(a, c)
	assert.ErrorIs(t, err, hop.ErrLeafSetMismatch)

	_, err = hop.Alignment(c, a)
	assert.ErrorIs(t, err, hop.ErrLeafSetMismatch)
}

// TestSimilarity_Malformed verifies invalid vectors are reported as such.
func TestSimilarity_Malformed(t *testing.T) {
	a := mustEncode(t, "((A,B),(C,D));", abcd)
	bad := append(treevec.Vector(nil), a...)
	bad[2].Label = treevec.NewLabel(3)

	_, err := hop.Similarity(a, bad)
	assert.ErrorIs(t, err, treevec.ErrMalformedVector)
}

// TestAlignment_Witness checks the witness length and its leaf markers.
func TestAlignment_Witness(t *testing.T) {
	a := mustEncode(t, "((A,B),(C,D));", abcd)
	b := mustEncode(t, "((A,C),(B,D));", abcd)

	m, err := hop.Alignment(a, b)
	require.NoError(t, err)
	require.Len(t, m, 5)

	var leaves []int
	for _, x := range m {
		if x.Leaf {
			i, _ := x.Label.Min()
			leaves = append(leaves, i)
			continue
		}
		assert.True(t, x.Label == treevec.NewLabel(2) || x.Label == treevec.NewLabel(3))
	}
	assert.Equal(t, []int{1, 2, 3, 4}, leaves)
	assert.False(t, m[0].Leaf)
}

// TestAlignment_MatchesSimilarity verifies len(Alignment) == Similarity and
// that matched labels keep A's order within each segment.
func TestAlignment_MatchesSimilarity(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(12)
		idx := randomIndex(n)
		a := mustEncode(t, randomTree(rng, n), idx)
		b := mustEncode(t, randomTree(rng, n), idx)

		sim, err := hop.Similarity(a, b)
		require.NoError(t, err)
		m, err := hop.Alignment(a, b)
		require.NoError(t, err)
		assert.Len(t, m, sim)
	}
}

// TestSimilarity_Workers verifies parallel evaluation gives the sequential
// answer.
func TestSimilarity_Workers(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for trial := 0; trial < 30; trial++ {
		n := 2 + rng.Intn(30)
		idx := randomIndex(n)
		a := mustEncode(t, randomTree(rng, n), idx)
		b := mustEncode(t, randomTree(rng, n), idx)

		seq, err := hop.Similarity(a, b)
		require.NoError(t, err)
		par, err := hop.Similarity(a, b, hop.WithWorkers(4))
		require.NoError(t, err)
		assert.Equal(t, seq, par)

		ms, err := hop.Alignment(a, b)
		require.NoError(t, err)
		mp, err := hop.Alignment(a, b, hop.WithWorkers(4))
		require.NoError(t, err)
		assert.Equal(t, ms, mp)
	}
}

// TestSimilarity_Logger verifies per-segment traces reach the logger.
func TestSimilarity_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := mustEncode(t, "((A,B),(C,D));", abcd)

	_, err := hop.Similarity(a, a, hop.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(buf.String(), "segment compared"))

	_, err = hop.Similarity(a, a, hop.WithLogger(nil))
	require.NoError(t, err)
}

// TestMatrix verifies symmetry, the diagonal and agreement with Similarity.
func TestMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	n := 10
	idx := randomIndex(n)
	vs := make([]treevec.Vector, 6)
	for i := range vs {
		vs[i] = mustEncode(t, randomTree(rng, n), idx)
	}

	m, err := hop.Matrix(context.Background(), vs, hop.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, m, len(vs))
	for i := range vs {
		assert.Equal(t, n+vs[i].InternalCount(), m[i][i])
		for j := range vs {
			assert.Equal(t, m[i][j], m[j][i])
			sim, err := hop.Similarity(vs[i], vs[j])
			require.NoError(t, err)
			assert.Equal(t, sim, m[i][j])
		}
	}
}

// TestMatrix_Errors covers a mismatched member and a cancelled context.
func TestMatrix_Errors(t *testing.T) {
	a := mustEncode(t, "((A,B),(C,D));", abcd)
	b := mustEncode(t, "((A,B),C);", treevec.LeafIndex{"A": 1, "B": 2, "C": 3})

	_, err := hop.Matrix(context.Background(), []treevec.Vector{a, b})
	assert.ErrorIs(t, err, hop.ErrLeafSetMismatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = hop.Matrix(ctx, []treevec.Vector{a, a})
	assert.ErrorIs(t, err, context.Canceled)

	m, err := hop.Matrix(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, m)
}
