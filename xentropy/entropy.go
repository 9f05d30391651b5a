// Package xentropy measures how predictable a sequence of symbols is.
//
// Every function accepts any comparable symbol type, so the same code scores
// raw bytes and candidate word lists alike.
package xentropy

import "math"

// Frequencies counts how many times each symbol occurs in data.
func Frequencies[T comparable](data []T) map[T]int {
	freq := make(map[T]int)
	for _, symbol := range data {
		freq[symbol]++
	}
	return freq
}

// Shannon returns the Shannon entropy of data in bits.
//
// Formula: H(X) = -Σ P(x) * log2(P(x))
//
// The result lies between 0 (a single repeated symbol) and log2(n) where n is
// the number of distinct symbols.
func Shannon[T comparable](data []T) float64 {
	if len(data) == 0 {
		return 0
	}

	var entropy float64
	length := float64(len(data))

	for _, count := range Frequencies(data) {
		probability := float64(count) / length
		entropy -= probability * math.Log2(probability)
	}

	return entropy
}

// Normalized divides the Shannon entropy by log2 of the number of distinct
// symbols, giving 0 for a constant sequence and 1 for a uniform one.
func Normalized[T comparable](data []T) float64 {
	return normalize(Shannon(data), data)
}

// MinEntropy returns the min-entropy of data in bits: -log2 of the
// probability of the most common symbol.
func MinEntropy[T comparable](data []T) float64 {
	if len(data) == 0 {
		return 0
	}

	maxCount := 0
	for _, count := range Frequencies(data) {
		maxCount = max(maxCount, count)
	}

	maxProb := float64(maxCount) / float64(len(data))
	return -math.Log2(maxProb)
}

// MinNormalized is MinEntropy scaled to 0-1 like Normalized.
func MinNormalized[T comparable](data []T) float64 {
	return normalize(MinEntropy(data), data)
}

func normalize[T comparable](entropy float64, data []T) float64 {
	if len(data) == 0 {
		return 0
	}

	maxEntropy := math.Log2(float64(len(Frequencies(data))))
	if maxEntropy == 0 {
		return 0
	}

	return entropy / maxEntropy
}
