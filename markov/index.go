package markov

// Index maps every prefix seen in the corpus to the ordered list of tokens
// that followed it. Duplicates are kept: a follower seen three times is
// stored three times, which is what weights sampling.
//
// An Index is never modified after Build or Merge returns, so it may be read
// from several goroutines.
type Index struct {
	order    int
	table    map[string][]string
	prefixes []NGram
	size     int
}

func newIndex(order int) *Index {
	return &Index{
		order: order,
		table: make(map[string][]string),
	}
}

// Build scans tokens once and returns the prefix table for the given prefix
// size. Sequences shorter than order+1 produce an empty Index.
func Build(tokens []string, order int) (*Index, error) {
	if order < 1 {
		return nil, configError("build", ErrInvalidOrder)
	}

	idx := newIndex(order)
	for _, pair := range MakePairs(tokens, order) {
		idx.add(pair.CurrentState, pair.NextState)
	}

	return idx, nil
}

func (idx *Index) add(prefix NGram, candidates ...string) {
	key := prefix.key()

	list, ok := idx.table[key]
	if !ok {
		idx.prefixes = append(idx.prefixes, prefix.Clone())
	}

	idx.table[key] = append(list, candidates...)
	idx.size += len(candidates)
}

// Order returns the prefix size N.
func (idx *Index) Order() int {
	return idx.order
}

// Len returns the number of distinct prefixes.
func (idx *Index) Len() int {
	return len(idx.prefixes)
}

// Size returns the number of stored candidates, one per scanned window.
func (idx *Index) Size() int {
	return idx.size
}

// Empty reports whether the index holds no prefixes.
func (idx *Index) Empty() bool {
	return len(idx.prefixes) == 0
}

// Candidates returns a copy of the followers recorded for prefix.
func (idx *Index) Candidates(prefix NGram) ([]string, bool) {
	list, ok := idx.lookup(prefix)
	if !ok {
		return nil, false
	}

	out := make([]string, len(list))
	copy(out, list)
	return out, true
}

func (idx *Index) lookup(prefix NGram) ([]string, bool) {
	if len(prefix) != idx.order {
		return nil, false
	}

	list, ok := idx.table[prefix.key()]
	return list, ok
}

// Prefixes returns all keys in the order they were first seen during the scan.
func (idx *Index) Prefixes() []NGram {
	out := make([]NGram, len(idx.prefixes))
	for i, prefix := range idx.prefixes {
		out[i] = prefix.Clone()
	}
	return out
}

// Equal reports whether both indexes have the same prefix size, the same keys
// and the same candidate lists.
func (idx *Index) Equal(other *Index) bool {
	if idx == nil || other == nil {
		return idx == other
	}

	if idx.order != other.order || len(idx.table) != len(other.table) || idx.size != other.size {
		return false
	}

	for key, list := range idx.table {
		otherList, ok := other.table[key]
		if !ok || len(list) != len(otherList) {
			return false
		}

		for i := range list {
			if list[i] != otherList[i] {
				return false
			}
		}
	}

	return true
}

// Merge concatenates shard indexes. Candidate lists for a prefix are joined
// in shard order, so merging the shards of a corpus gives the same lists as
// indexing the corpus in one pass.
func Merge(shards ...*Index) (*Index, error) {
	if len(shards) == 0 {
		return nil, configError("merge", ErrNoShards)
	}

	order := shards[0].order
	merged := newIndex(order)

	for _, shard := range shards {
		if shard.order != order {
			return nil, configError("merge", ErrOrderMismatch)
		}

		for _, prefix := range shard.prefixes {
			merged.add(prefix, shard.table[prefix.key()]...)
		}
	}

	return merged, nil
}
