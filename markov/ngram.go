package markov

import "strings"

// keySeparator joins prefix tokens into a map key. Tokenizers never emit it.
const keySeparator = "\x1f"

// NGram is an ordered prefix of Order consecutive tokens.
type NGram []string

// Pair is one scan window: a prefix and the token observed right after it.
type Pair struct {
	CurrentState NGram
	NextState    string
}

func (ngram NGram) key() string {
	return strings.Join(ngram, keySeparator)
}

// String returns the prefix tokens joined with a single space.
func (ngram NGram) String() string {
	return strings.Join(ngram, " ")
}

// Equal reports whether both prefixes hold the same tokens in the same order.
func (ngram NGram) Equal(other NGram) bool {
	if len(ngram) != len(other) {
		return false
	}

	for i := range ngram {
		if ngram[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns a copy that does not share memory with the receiver.
func (ngram NGram) Clone() NGram {
	if ngram == nil {
		return nil
	}

	out := make(NGram, len(ngram))
	copy(out, ngram)
	return out
}

// MakePairs slides a window of order+1 tokens over tokens and returns one
// Pair per position 0..len(tokens)-order-1.
func MakePairs(tokens []string, order int) []Pair {
	if order < 1 {
		return nil
	}

	var pairs []Pair
	for i := 0; i < len(tokens)-order; i++ {
		pair := Pair{
			CurrentState: tokens[i : i+order : i+order],
			NextState:    tokens[i+order],
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// window returns the trailing order tokens of seq.
func window(seq []string, order int) NGram {
	return NGram(seq[len(seq)-order:])
}
