package markov

import (
	"log/slog"
	"strings"

	"github.com/vitalvas/markovtext/xlogger"
)

// State is the generator's position in a single Generate call.
type State int

const (
	StateSeeded State = iota
	StateGenerating
	StateDone
)

func (s State) String() string {
	switch s {
	case StateSeeded:
		return "seeded"
	case StateGenerating:
		return "generating"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Result is the output of one generation run.
type Result struct {
	Seed NGram

	// Tokens starts with the seed prefix and holds between Order and
	// Order+Requested tokens.
	Tokens    []string
	Requested int
	Generated int

	// Truncated is set when the walk reached a window with no recorded
	// followers before Requested tokens were produced.
	Truncated bool
}

// Text joins the output tokens with single spaces.
func (r *Result) Text() string {
	return strings.Join(r.Tokens, " ")
}

// Generator walks an Index to produce text.
type Generator struct {
	index   *Index
	chooser Chooser
	logger  *slog.Logger
}

type Option func(*Generator)

// WithChooser replaces the default time-seeded random source.
func WithChooser(chooser Chooser) Option {
	return func(g *Generator) {
		g.chooser = chooser
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

func NewGenerator(index *Index, opts ...Option) *Generator {
	g := &Generator{index: index}
	for _, opt := range opts {
		opt(g)
	}

	if g.chooser == nil {
		g.chooser = NewChooser(0)
	}

	if g.logger == nil {
		g.logger = xlogger.Nop()
	}

	return g
}

// Generate picks a random prefix as seed and appends up to length tokens.
// An empty index is a *ConfigurationError and yields no result.
func (g *Generator) Generate(length int) (*Result, error) {
	if g.index == nil || g.index.Empty() {
		return nil, configError("generate", ErrEmptyIndex)
	}

	if length < 0 {
		return nil, configError("generate", ErrInvalidLength)
	}

	seed := choose(g.chooser, g.index.prefixes)

	return g.run(newWalk(g.index, g.chooser, seed, length)), nil
}

// GenerateFrom runs the same walk as Generate starting from seed. A seed that
// is not a key of the index gives a truncated result holding only the seed.
func (g *Generator) GenerateFrom(seed NGram, length int) (*Result, error) {
	w, err := g.Walk(seed, length)
	if err != nil {
		return nil, err
	}

	return g.run(w), nil
}

func (g *Generator) run(w *Walk) *Result {
	for w.Step() {
	}

	result := w.Result()

	g.logger.Debug("generation finished",
		slog.String("state", w.State().String()),
		slog.String("seed", result.Seed.String()),
		slog.Int("requested", result.Requested),
		slog.Int("generated", result.Generated),
		slog.Bool("truncated", result.Truncated),
	)

	return result
}

// Walk is a single generation run advanced one token at a time.
type Walk struct {
	index   *Index
	chooser Chooser
	state   State
	result  Result
}

// Walk starts a run from seed without producing any token yet. Seed and
// length are validated the same way as in GenerateFrom.
func (g *Generator) Walk(seed NGram, length int) (*Walk, error) {
	if g.index == nil || g.index.Empty() {
		return nil, configError("walk", ErrEmptyIndex)
	}

	if len(seed) != g.index.order {
		return nil, configError("walk", ErrInvalidSeed)
	}

	if length < 0 {
		return nil, configError("walk", ErrInvalidLength)
	}

	return newWalk(g.index, g.chooser, seed, length), nil
}

func newWalk(index *Index, chooser Chooser, seed NGram, length int) *Walk {
	tokens := make([]string, 0, len(seed)+length)
	tokens = append(tokens, seed...)

	return &Walk{
		index:   index,
		chooser: chooser,
		state:   StateSeeded,
		result: Result{
			Seed:      seed.Clone(),
			Tokens:    tokens,
			Requested: length,
		},
	}
}

// Step appends one token. It returns false once the walk is done, either
// because Requested tokens were produced or because the current window has
// no recorded followers.
func (w *Walk) Step() bool {
	if w.state == StateDone {
		return false
	}

	if w.result.Generated >= w.result.Requested {
		w.state = StateDone
		return false
	}

	candidates, ok := w.index.lookup(window(w.result.Tokens, w.index.order))
	if !ok {
		w.result.Truncated = true
		w.state = StateDone
		return false
	}

	w.result.Tokens = append(w.result.Tokens, choose(w.chooser, candidates))
	w.result.Generated++
	w.state = StateGenerating

	return true
}

// Token returns the most recently produced token.
func (w *Walk) Token() string {
	return w.result.Tokens[len(w.result.Tokens)-1]
}

func (w *Walk) State() State {
	return w.state
}

// Result returns a snapshot of the output so far.
func (w *Walk) Result() *Result {
	result := w.result
	result.Tokens = append([]string(nil), w.result.Tokens...)
	return &result
}
