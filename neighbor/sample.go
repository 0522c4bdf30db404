package neighbor

import "math/rand"

// SampleIdxs yields k distinct indices from a source list of size n,
// chosen uniformly without replacement (spec.md §4.4 "sample"). When
// k >= n the identity permutation 0..n-1 is returned. Otherwise a partial
// Fisher-Yates shuffle with a lazy remap keeps the source conceptually
// intact in O(k) space rather than allocating and shuffling an O(n) copy.
func SampleIdxs(rng *rand.Rand, n, k int) []int {
	if k >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if k <= 0 {
		return nil
	}

	remap := make(map[int]int, k)
	out := make([]int, k)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)

		vj, ok := remap[j]
		if !ok {
			vj = j
		}
		out[i] = vj

		vi, ok := remap[i]
		if !ok {
			vi = i
		}
		remap[j] = vi
	}
	return out
}

// OpList holds the parallel (op_var_idx, op_delta) candidate arrays a
// generator populates, named after spec.md §4.4's own terms.
type OpList struct {
	VarIdx []int
	Delta  []float64
}

// Reset empties the list while keeping its backing arrays.
func (ol *OpList) Reset() {
	ol.VarIdx = ol.VarIdx[:0]
	ol.Delta = ol.Delta[:0]
}

// Push appends one candidate.
func (ol *OpList) Push(varIdx int, delta float64) {
	ol.VarIdx = append(ol.VarIdx, varIdx)
	ol.Delta = append(ol.Delta, delta)
}

// Len reports the candidate count.
func (ol *OpList) Len() int { return len(ol.VarIdx) }

// SampleOp performs k steps of in-place Fisher-Yates on ol, leaving a
// uniform k-subset at the front and truncating to it (spec.md §4.4
// "sample_op"). A no-op when k >= ol.Len().
func SampleOp(rng *rand.Rand, ol *OpList, k int) {
	n := ol.Len()
	if k >= n {
		return
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		ol.VarIdx[i], ol.VarIdx[j] = ol.VarIdx[j], ol.VarIdx[i]
		ol.Delta[i], ol.Delta[j] = ol.Delta[j], ol.Delta[i]
	}
	ol.VarIdx = ol.VarIdx[:k]
	ol.Delta = ol.Delta[:k]
}
