package hop

import "github.com/katalvlaran/treevec/treevec"

// tableLCS computes the LCS of segA and segB with the classic
// (len(segA)+1)×(len(segB)+1) table and, when wantSeq is set, backtracks
// one witness in segA order. Ties prefer dropping from segB, so the
// witness is deterministic.
func tableLCS(segA, segB []treevec.Label, wantSeq bool) segmentResult {
	na, nb := len(segA), len(segB)
	table := make([][]int, na+1)
	for i := range table {
		table[i] = make([]int, nb+1)
	}
	for i := 1; i <= na; i++ {
		for j := 1; j <= nb; j++ {
			if segA[i-1] == segB[j-1] {
				table[i][j] = table[i-1][j-1] + 1
				continue
			}
			table[i][j] = max(table[i-1][j], table[i][j-1])
		}
	}

	res := segmentResult{length: table[na][nb]}
	if !wantSeq {
		return res
	}
	matched := make([]treevec.Label, res.length)
	k := res.length
	for i, j := na, nb; i > 0 && j > 0; {
		switch {
		case segA[i-1] == segB[j-1]:
			k--
			matched[k] = segA[i-1]
			i--
			j--
		case table[i][j-1] >= table[i-1][j]:
			j--
		default:
			i--
		}
	}
	res.matched = matched

	return res
}
