package prompt

import (
	"context"
	"fmt"

	"dictcorrector/internal/corrector"
)

// Policy answers every unknown word the same way without asking.
type Policy string

const (
	PolicyKeep  Policy = "keep"  // keep, do not learn
	PolicyAdd   Policy = "add"   // keep and learn
	PolicyFirst Policy = "first" // best candidate, keep when there is none
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyKeep, PolicyAdd, PolicyFirst:
		return p, nil
	}
	return "", fmt.Errorf("prompt: unknown policy %q (want keep, add or first)", s)
}

func (p Policy) Decide(_ context.Context, word string, cands []corrector.Candidate) (corrector.Decision, error) {
	switch p {
	case PolicyKeep:
		return corrector.Keep(false), nil
	case PolicyAdd:
		return corrector.Keep(true), nil
	case PolicyFirst:
		if len(cands) == 0 {
			return corrector.Keep(false), nil
		}
		return corrector.ReplaceWith(cands[0].Word), nil
	}
	return corrector.Decision{}, fmt.Errorf("prompt: unknown policy %q", string(p))
}
