package markov

import "github.com/vitalvas/markovtext/xentropy"

// Stats summarises the shape of an Index.
type Stats struct {
	Order        int
	Prefixes     int
	Candidates   int
	MaxBranching int

	// Vocabulary counts distinct candidate tokens.
	Vocabulary int

	// DeadEnds counts distinct windows reachable by one step that are not
	// keys themselves. Walking into one ends generation early.
	DeadEnds int

	// MeanEntropy and MeanMinEntropy average, over prefixes, the Shannon and
	// min-entropy in bits of each candidate list.
	MeanEntropy    float64
	MeanMinEntropy float64
}

func (idx *Index) Stats() Stats {
	stats := Stats{
		Order:      idx.order,
		Prefixes:   len(idx.prefixes),
		Candidates: idx.size,
	}

	if stats.Prefixes == 0 {
		return stats
	}

	vocabulary := make(map[string]struct{})
	deadEnds := make(map[string]struct{})

	var entropy, minEntropy float64
	next := make(NGram, idx.order)

	for _, prefix := range idx.prefixes {
		list := idx.table[prefix.key()]

		distinct := make(map[string]struct{}, len(list))
		for _, candidate := range list {
			vocabulary[candidate] = struct{}{}
			distinct[candidate] = struct{}{}
		}

		stats.MaxBranching = max(stats.MaxBranching, len(distinct))

		for candidate := range distinct {
			copy(next, prefix[1:])
			next[idx.order-1] = candidate

			key := next.key()
			if _, ok := idx.table[key]; !ok {
				deadEnds[key] = struct{}{}
			}
		}

		entropy += xentropy.Shannon(list)
		minEntropy += xentropy.MinEntropy(list)
	}

	stats.Vocabulary = len(vocabulary)
	stats.DeadEnds = len(deadEnds)
	stats.MeanEntropy = entropy / float64(stats.Prefixes)
	stats.MeanMinEntropy = minEntropy / float64(stats.Prefixes)

	return stats
}
