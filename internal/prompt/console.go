// Package prompt provides the decision providers used by a correction
// pass: the interactive console menu and non-interactive policies.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/muesli/termenv"

	"dictcorrector/internal/corrector"
)

// Console asks the operator what to do with every unknown word.
// Answers are whitespace separated numbers, so a file of answers such as
// "2 1 2 3 3" replays a session.
//
// Input is read by a background goroutine started on the first question,
// so a cancelled context ends a pending question without waiting for input.
// That goroutine exits when the reader is exhausted or returns an error.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	term    *termenv.Output
	start   sync.Once
	answers chan answer
}

type answer struct {
	text string
	err  error
}

// NewConsole returns a Console reading answers from in and writing the
// menu to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Console{in: sc, out: out, term: termenv.NewOutput(out), answers: make(chan answer, 1)}
}

func (c *Console) read() {
	defer close(c.answers)
	for c.in.Scan() {
		c.answers <- answer{text: c.in.Text()}
	}
	if err := c.in.Err(); err != nil {
		c.answers <- answer{err: err}
	}
}

// Decide prints the menu for word and reads the operator's choice.
func (c *Console) Decide(ctx context.Context, word string, cands []corrector.Candidate) (corrector.Decision, error) {
	fmt.Fprintf(c.out, "%s '%s' what do we do about it?\n", c.term.String("MISSING WORD").Bold(), word)
	fmt.Fprintln(c.out, "1. Keep it, add to the dictionary")
	fmt.Fprintln(c.out, "2. Keep it, do not add to the dictionary")
	fmt.Fprintf(c.out, "3. Replace with a word from the dictionary (%d variants)\n", len(cands))

	choice, err := c.ask(ctx, word)
	if err != nil {
		return corrector.Decision{}, err
	}
	switch choice {
	case 1:
		return corrector.Keep(true), nil
	case 2:
		return corrector.Keep(false), nil
	case 3:
		if len(cands) == 0 {
			return corrector.Decision{}, &corrector.InvalidDecisionError{Word: word, Reason: "there are no similar words, cannot replace"}
		}
		fmt.Fprintln(c.out, "Now choose the word:")
		if err := PrintCandidates(c.out, cands); err != nil {
			return corrector.Decision{}, err
		}
		sub, err := c.ask(ctx, word)
		if err != nil {
			return corrector.Decision{}, err
		}
		if sub < 1 || sub > len(cands) {
			return corrector.Decision{}, &corrector.InvalidDecisionError{Word: word, Reason: "the chosen number is not in the list"}
		}
		return corrector.ReplaceWith(cands[sub-1].Word), nil
	}
	return corrector.Decision{}, &corrector.InvalidDecisionError{Word: word, Reason: "the chosen number is not in the list"}
}

// Rejected tells the operator the last answer was not accepted.
func (c *Console) Rejected(word string, err error) {
	label := c.term.String("INVALID ANSWER:").Foreground(c.term.Color("1")).Bold()
	fmt.Fprintf(c.out, "\n%s %v\nretry\n\n", label, err)
}

func (c *Console) ask(ctx context.Context, word string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	fmt.Fprint(c.out, "Enter the number: ")
	c.start.Do(func() { go c.read() })

	var a answer
	var ok bool
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case a, ok = <-c.answers:
	}
	if !ok {
		return 0, fmt.Errorf("prompt: no answer for %q: %w", word, io.ErrUnexpectedEOF)
	}
	if a.err != nil {
		return 0, fmt.Errorf("prompt: read answer: %w", a.err)
	}
	n, err := strconv.Atoi(a.text)
	if err != nil {
		return 0, &corrector.InvalidDecisionError{Word: word, Reason: fmt.Sprintf("%q is not a number", a.text)}
	}
	return n, nil
}

// PrintCandidates writes a numbered candidate table to w.
func PrintCandidates(w io.Writer, cands []corrector.Candidate) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	t := tabby.NewCustom(tw)
	t.AddHeader("#", "WORD", "DISTANCE")
	for i, c := range cands {
		t.AddLine(i+1, "'"+c.Word+"'", c.Distance)
	}
	t.Print()
	return tw.Flush()
}
