package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyIndex is returned when generation starts on an index without prefixes.
	ErrEmptyIndex = errors.New("markov: index is empty, corpus is shorter than prefix size + 1")

	// ErrInvalidOrder is returned when the prefix size is less than 1.
	ErrInvalidOrder = errors.New("markov: prefix size must be at least 1")

	// ErrInvalidLength is returned when the requested output length is negative.
	ErrInvalidLength = errors.New("markov: output length must not be negative")

	// ErrInvalidSeed is returned when a seed prefix does not have exactly Order tokens.
	ErrInvalidSeed = errors.New("markov: seed length does not match prefix size")

	// ErrOrderMismatch is returned when merging indexes built with different prefix sizes.
	ErrOrderMismatch = errors.New("markov: indexes have different prefix sizes")

	// ErrNoShards is returned when Merge or BuildSharded has nothing to work with.
	ErrNoShards = errors.New("markov: at least one shard is required")
)

// ConfigurationError reports a caller or input mistake detected before any
// output is produced.
type ConfigurationError struct {
	Op  string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether any error in err's chain is a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

func configError(op string, err error) error {
	return &ConfigurationError{Op: op, Err: err}
}
