// Package corpus turns raw text into the word sequence consumed by the
// markov package and joins generated words back into text.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vitalvas/markovtext/xstrings"
)

const maxLineSize = 1024 * 1024

// Options controls the clean-up applied to each line before splitting.
type Options struct {
	Lowercase        bool `yaml:"lowercase" json:"lowercase" toml:"lowercase" default:"true"`
	TrimSpace        bool `yaml:"trim_space" json:"trim_space" toml:"trim_space" default:"true"`
	StripPunctuation bool `yaml:"strip_punctuation" json:"strip_punctuation" toml:"strip_punctuation"`

	// SplitSpaces splits on every single space and keeps the empty words that
	// runs of spaces produce. When false, words are split on any whitespace.
	SplitSpaces bool `yaml:"split_spaces" json:"split_spaces" toml:"split_spaces"`
}

// DefaultOptions trims and lowercases lines and splits on whitespace.
func DefaultOptions() Options {
	return Options{
		Lowercase: true,
		TrimSpace: true,
	}
}

// Tokenize reads r line by line and returns every word in order. Line
// boundaries are not kept.
func Tokenize(r io.Reader, opts Options) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var words []string
	for scanner.Scan() {
		words = append(words, opts.split(scanner.Text())...)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	return words, nil
}

func (opts Options) split(line string) []string {
	line = xstrings.StringClean(line)

	if opts.TrimSpace {
		line = strings.TrimSpace(line)
	}

	if opts.Lowercase {
		line = strings.ToLower(line)
	}

	if opts.StripPunctuation {
		line = xstrings.StripPunctuation(line)
	}

	if opts.SplitSpaces {
		return xstrings.SplitSpace(line)
	}

	return strings.Fields(line)
}

// ReadFile tokenizes a single file.
func ReadFile(path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer file.Close()

	words, err := Tokenize(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return words, nil
}

// ReadFiles tokenizes every file and concatenates the words in argument order.
func ReadFiles(paths []string, opts Options) ([]string, error) {
	var words []string
	for _, path := range paths {
		fileWords, err := ReadFile(path, opts)
		if err != nil {
			return nil, err
		}

		words = append(words, fileWords...)
	}

	return words, nil
}

// Join formats generated words as a single space separated line.
func Join(words []string) string {
	return strings.Join(words, " ")
}
