package options

import (
	"context"
	"io"
	"log/slog"
)

// DefaultSeparators is the default separator set:
// space, punctuation, brackets, line endings and backslash.
const DefaultSeparators = " ,.!?&()[]:;\n\r\\"

// DefaultThreshold is the largest edit distance a candidate may have.
const DefaultThreshold = 1

var DefaultOptions = CorrectorOptions{
	Separators: DefaultSeparators,
	Threshold:  DefaultThreshold,
}

// WordStore persists words learned with Keep-And-Add.
type WordStore interface {
	Add(ctx context.Context, word string) error
	All(ctx context.Context) ([]string, error)
}

type CorrectorOptions struct {
	Separators string
	Threshold  int
	Store      WordStore // nil keeps learned words in memory only
	Logger     *slog.Logger
}

type Options interface {
	Apply(options *CorrectorOptions)
}

type FuncConfig struct {
	ops func(options *CorrectorOptions)
}

func (w FuncConfig) Apply(conf *CorrectorOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *CorrectorOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

// Resolve applies opts on top of DefaultOptions.
func Resolve(opts ...Options) CorrectorOptions {
	conf := DefaultOptions
	for _, o := range opts {
		if o != nil {
			o.Apply(&conf)
		}
	}
	if conf.Logger == nil {
		conf.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return conf
}

func WithSeparators(separators string) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Separators = separators
	})
}

func WithThreshold(threshold int) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Threshold = threshold
	})
}

// WithStore makes Keep-And-Add decisions persistent and preloads
// previously learned words into the dictionary.
func WithStore(store WordStore) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Store = store
	})
}

func WithLogger(logger *slog.Logger) Options {
	return NewFuncOption(func(options *CorrectorOptions) {
		options.Logger = logger
	})
}
