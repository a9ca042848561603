package corrector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"dictcorrector/pkg/options"
)

var (
	ErrNoSeparators      = errors.New("corrector: separator set is empty")
	ErrNegativeThreshold = errors.New("corrector: threshold must not be negative")
)

// Engine corrects text against a dictionary built from a reference text.
// It is meant for a single goroutine.
type Engine struct {
	dict      *Dictionary
	seps      Separators
	threshold int
	store     options.WordStore
	log       *slog.Logger
}

// New builds the dictionary from reference. When a store is configured,
// the words it holds are added as well.
func New(ctx context.Context, reference string, opts ...options.Options) (*Engine, error) {
	conf := options.Resolve(opts...)
	if conf.Separators == "" {
		return nil, ErrNoSeparators
	}
	if conf.Threshold < 0 {
		return nil, ErrNegativeThreshold
	}
	e := &Engine{
		seps:      Separators(conf.Separators),
		threshold: conf.Threshold,
		store:     conf.Store,
		log:       conf.Logger,
	}
	e.dict = Build(reference, e.seps)
	if err := e.loadLearnedWords(ctx); err != nil {
		return nil, err
	}
	e.log.Debug("dictionary ready", "words", e.dict.Len(), "threshold", e.threshold)
	return e, nil
}

func (e *Engine) loadLearnedWords(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	words, err := e.store.All(ctx)
	if err != nil {
		return fmt.Errorf("corrector: load learned words: %w", err)
	}
	for _, w := range words {
		e.dict.Add(w)
	}
	e.log.Debug("learned words loaded", "count", len(words))
	return nil
}

func (e *Engine) Dictionary() *Dictionary { return e.dict }

func (e *Engine) Separators() Separators { return e.seps }

// Candidates returns the dictionary words within the engine threshold of word.
func (e *Engine) Candidates(word string) []Candidate {
	return FindCandidates(word, e.dict, e.threshold)
}

// Correct runs a correction pass over input with the engine separators and
// writes the result to out token by token.
func (e *Engine) Correct(ctx context.Context, input string, out io.Writer, p DecisionProvider) (*Report, error) {
	return e.CorrectWith(ctx, input, e.seps, out, p)
}

// CorrectWith is Correct with a separator set for this call only.
//
// On error the report and out cover the tokens handled so far; every token
// already written is fully resolved.
func (e *Engine) CorrectWith(ctx context.Context, input string, seps Separators, out io.Writer, p DecisionProvider) (*Report, error) {
	if seps == "" {
		return nil, ErrNoSeparators
	}
	tokens := Tokenize(input, seps)
	rep := &Report{Tokens: len(tokens)}
	for i, t := range tokens {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		word := t.Word
		if word != "" && !e.dict.Contains(word) {
			e.log.Debug("unknown word", "word", word, "token", i)
			resolved, ch, err := e.resolve(ctx, word, p)
			if err != nil {
				return rep, fmt.Errorf("corrector: resolve %q: %w", word, err)
			}
			ch.Index = i
			rep.record(ch)
			word = resolved
		}
		if _, err := io.WriteString(out, word+t.Sep); err != nil {
			return rep, fmt.Errorf("corrector: write output: %w", err)
		}
	}
	return rep, nil
}

// CorrectString is Correct into a string.
func (e *Engine) CorrectString(ctx context.Context, input string, p DecisionProvider) (string, *Report, error) {
	var b strings.Builder
	b.Grow(len(input))
	rep, err := e.Correct(ctx, input, &b, p)
	return b.String(), rep, err
}

// resolve asks p until it returns a valid decision for word.
func (e *Engine) resolve(ctx context.Context, word string, p DecisionProvider) (string, Change, error) {
	cands := e.Candidates(word)
	ch := Change{Original: word, Suggestions: Words(cands)}
	for {
		ch.Attempts++
		d, err := p.Decide(ctx, word, cands)
		if err == nil {
			err = validate(word, d, cands)
		}
		if err != nil {
			if !errors.Is(err, ErrInvalidDecision) {
				return "", ch, err
			}
			e.log.Warn("invalid decision, asking again", "word", word, "attempt", ch.Attempts, "err", err)
			if r, ok := p.(InvalidDecisionReporter); ok {
				r.Rejected(word, err)
			}
			if err := ctx.Err(); err != nil {
				return "", ch, err
			}
			continue
		}

		ch.Decision = d.Action.String()
		switch d.Action {
		case KeepAndAdd:
			if err := e.learn(ctx, word); err != nil {
				return "", ch, err
			}
			return word, ch, nil
		case KeepOnly:
			return word, ch, nil
		default:
			ch.Replacement = d.Word
			return d.Word, ch, nil
		}
	}
}

func (e *Engine) learn(ctx context.Context, word string) error {
	e.dict.Add(word)
	if e.store == nil {
		return nil
	}
	if err := e.store.Add(ctx, word); err != nil {
		return fmt.Errorf("store learned word: %w", err)
	}
	return nil
}
