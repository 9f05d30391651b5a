package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/vitalvas/markovtext/corpus"
	"github.com/vitalvas/markovtext/markov"
	"github.com/vitalvas/markovtext/xlogger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("markovtext", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configFile := flags.String("config", "", "Config file (yaml, json or toml)")
	corpusFiles := flags.String("corpus", "", "Comma separated corpus files")
	prefixSize := flags.Int("n", 0, "Prefix size (words per n-gram)")
	outputLength := flags.Int("length", 0, "Words to generate after the seed")
	seed := flags.Int64("seed", 0, "Random seed, 0 for time based")
	shards := flags.Int("shards", 0, "Index the corpus in this many concurrent shards")
	stripPunct := flags.Bool("strip-punct", false, "Remove punctuation from the corpus")
	showStats := flags.Bool("stats", false, "Log index statistics")
	logLevel := flags.String("log-level", "", "Log level: debug, info, warn, error")
	logType := flags.String("log-type", "", "Log format: text or json")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	var files []string
	if *configFile != "" {
		files = append(files, *configFile)
	}

	cfg, err := loadConfig(files...)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "corpus":
			cfg.Corpus = splitList(*corpusFiles)
		case "n":
			cfg.PrefixSize = *prefixSize
		case "length":
			cfg.OutputLength = *outputLength
		case "seed":
			cfg.Seed = *seed
		case "shards":
			cfg.Shards = *shards
		case "strip-punct":
			cfg.Tokenizer.StripPunctuation = *stripPunct
		case "log-level":
			cfg.Logger.Level = *logLevel
		case "log-type":
			cfg.Logger.LogType = *logType
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return 1
	}

	cfg.Logger.Output = stderr
	logger := xlogger.New(cfg.Logger)

	text, err := generate(ctx, cfg, logger, *showStats)
	if err != nil {
		logger.Error("generation failed", slog.String("error", err.Error()))
		return 1
	}

	fmt.Fprintln(stdout, text)
	return 0
}

func generate(ctx context.Context, cfg *Config, logger *slog.Logger, showStats bool) (string, error) {
	started := time.Now()

	tokens, err := corpus.ReadFiles(cfg.Corpus, cfg.Tokenizer)
	if err != nil {
		return "", err
	}

	var index *markov.Index
	if cfg.Shards > 1 {
		index, err = markov.BuildSharded(ctx, tokens, cfg.PrefixSize, cfg.Shards)
	} else {
		index, err = markov.Build(tokens, cfg.PrefixSize)
	}
	if err != nil {
		return "", fmt.Errorf("failed to build index: %w", err)
	}

	logger.Info("index built",
		slog.Int("tokens", len(tokens)),
		slog.Int("prefixes", index.Len()),
		slog.Int("candidates", index.Size()),
		slog.Duration("took", time.Since(started)),
	)

	if showStats {
		stats := index.Stats()
		logger.Info("index stats",
			slog.Int("order", stats.Order),
			slog.Int("vocabulary", stats.Vocabulary),
			slog.Int("max_branching", stats.MaxBranching),
			slog.Int("dead_ends", stats.DeadEnds),
			slog.Float64("mean_entropy_bits", stats.MeanEntropy),
			slog.Float64("mean_min_entropy_bits", stats.MeanMinEntropy),
		)
	}

	generator := markov.NewGenerator(index,
		markov.WithChooser(markov.NewChooser(cfg.Seed)),
		markov.WithLogger(logger),
	)

	result, err := generator.Generate(cfg.OutputLength)
	if err != nil {
		return "", err
	}

	if result.Truncated {
		logger.Warn("output shorter than requested",
			slog.Int("requested", result.Requested),
			slog.Int("generated", result.Generated),
		)
	}

	return corpus.Join(result.Tokens), nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
