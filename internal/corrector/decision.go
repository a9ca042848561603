package corrector

import (
	"context"
	"errors"
	"fmt"
)

// Action is what to do with one unknown word.
type Action int

const (
	KeepAndAdd Action = iota + 1
	KeepOnly
	Replace
)

func (a Action) String() string {
	switch a {
	case KeepAndAdd:
		return "keep_and_add"
	case KeepOnly:
		return "keep_only"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Decision is the answer of a DecisionProvider for one unknown word.
type Decision struct {
	Action Action
	Word   string // replacement, only for Replace
}

// Keep keeps the word, adding it to the dictionary when add is set.
func Keep(add bool) Decision {
	if add {
		return Decision{Action: KeepAndAdd}
	}
	return Decision{Action: KeepOnly}
}

// ReplaceWith replaces the word with one of its candidates.
func ReplaceWith(word string) Decision { return Decision{Action: Replace, Word: word} }

// DecisionProvider resolves an unknown word. Returning an error that wraps
// ErrInvalidDecision makes the engine ask again for the same word; any
// other error aborts the pass.
type DecisionProvider interface {
	Decide(ctx context.Context, word string, candidates []Candidate) (Decision, error)
}

type DecisionFunc func(ctx context.Context, word string, candidates []Candidate) (Decision, error)

func (f DecisionFunc) Decide(ctx context.Context, word string, candidates []Candidate) (Decision, error) {
	return f(ctx, word, candidates)
}

// InvalidDecisionReporter is implemented by providers that want to tell
// the operator why an answer was rejected before being asked again.
type InvalidDecisionReporter interface {
	Rejected(word string, err error)
}

var ErrInvalidDecision = errors.New("corrector: invalid decision")

type InvalidDecisionError struct {
	Word   string
	Reason string
}

func (e *InvalidDecisionError) Error() string {
	return fmt.Sprintf("corrector: invalid decision for %q: %s", e.Word, e.Reason)
}

func (e *InvalidDecisionError) Unwrap() error { return ErrInvalidDecision }

// validate checks d against the candidate list computed for word.
func validate(word string, d Decision, candidates []Candidate) error {
	switch d.Action {
	case KeepAndAdd, KeepOnly:
		return nil
	case Replace:
		if len(candidates) == 0 {
			return &InvalidDecisionError{Word: word, Reason: "there are no similar words, cannot replace"}
		}
		for _, c := range candidates {
			if c.Word == d.Word {
				return nil
			}
		}
		return &InvalidDecisionError{Word: word, Reason: fmt.Sprintf("%q is not in the candidate list", d.Word)}
	}
	return &InvalidDecisionError{Word: word, Reason: "unknown action " + d.Action.String()}
}
