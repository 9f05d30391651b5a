package xentropy

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencies(t *testing.T) {
	t.Run("empty data", func(t *testing.T) {
		assert.Empty(t, Frequencies([]string{}))
	})

	t.Run("repeated words", func(t *testing.T) {
		freq := Frequencies([]string{"a", "b", "a", "c", "a"})
		assert.Equal(t, map[string]int{"a": 3, "b": 1, "c": 1}, freq)
	})
}

func TestShannon(t *testing.T) {
	tests := []struct {
		name     string
		data     []string
		expected float64
	}{
		{name: "empty data", data: []string{}, expected: 0},
		{name: "single word", data: []string{"a"}, expected: 0},
		{name: "all same words", data: []string{"the", "the", "the"}, expected: 0},
		{name: "two words equal frequency", data: []string{"a", "b", "a", "b"}, expected: 1},
		{name: "four words equal frequency", data: []string{"a", "b", "c", "d"}, expected: 2},
		{
			name:     "skewed distribution",
			data:     []string{"a", "a", "a", "b"},
			expected: -(0.75*math.Log2(0.75) + 0.25*math.Log2(0.25)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Shannon(tt.data), 0.0001)
		})
	}

	t.Run("bytes", func(t *testing.T) {
		assert.InDelta(t, 2.0, Shannon([]byte("aabbccdd")), 0.0001)
	})
}

func TestNormalized(t *testing.T) {
	t.Run("empty data", func(t *testing.T) {
		assert.Equal(t, 0.0, Normalized([]string{}))
	})

	t.Run("single symbol", func(t *testing.T) {
		assert.Equal(t, 0.0, Normalized([]string{"x", "x"}))
	})

	t.Run("uniform distribution", func(t *testing.T) {
		assert.InDelta(t, 1.0, Normalized([]string{"a", "b", "c"}), 0.0001)
	})

	t.Run("skewed distribution", func(t *testing.T) {
		value := Normalized([]string{"a", "a", "a", "b"})
		assert.Greater(t, value, 0.0)
		assert.Less(t, value, 1.0)
	})
}

func TestMinEntropy(t *testing.T) {
	tests := []struct {
		name     string
		data     []string
		expected float64
	}{
		{name: "empty data", data: []string{}, expected: 0},
		{name: "single word", data: []string{"a"}, expected: 0},
		{name: "two words equal frequency", data: []string{"a", "b"}, expected: 1},
		{name: "most common word at half", data: []string{"a", "a", "b", "c"}, expected: 1},
		{name: "three quarters", data: []string{"a", "a", "a", "b"}, expected: -math.Log2(0.75)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MinEntropy(tt.data), 0.0001)
		})
	}

	t.Run("never exceeds shannon", func(t *testing.T) {
		data := []string{"a", "a", "b", "c", "c", "c", "d"}
		assert.LessOrEqual(t, MinEntropy(data), Shannon(data))
	})
}

func TestMinNormalized(t *testing.T) {
	t.Run("uniform distribution", func(t *testing.T) {
		assert.InDelta(t, 1.0, MinNormalized([]int{1, 2, 3, 4}), 0.0001)
	})

	t.Run("constant data", func(t *testing.T) {
		assert.Equal(t, 0.0, MinNormalized([]int{7, 7, 7}))
	})
}

func BenchmarkShannon(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Size_%d", size), func(b *testing.B) {
			data := make([]string, size)
			for i := range data {
				data[i] = string(rune('a' + i%26))
			}

			b.ReportAllocs()
			for b.Loop() {
				_ = Shannon(data)
			}
		})
	}
}
