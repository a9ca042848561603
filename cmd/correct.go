package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/spf13/cobra"

	"dictcorrector/internal/corrector"
	"dictcorrector/internal/prompt"
	"dictcorrector/internal/textio"
	"dictcorrector/pkg/options"
)

type correctFlags struct {
	dict       string
	input      string
	output     string
	separators string
	threshold  int
	script     string
	policy     string
	report     string
	learn      bool
}

func createCorrectCmd() *cobra.Command {
	f := &correctFlags{}
	cmd := &cobra.Command{
		Use:   "correct",
		Short: "Correct an input file against the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorrect(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.dict, "dict", "d", "dict.txt", "reference file the dictionary is built from")
	cmd.Flags().StringVarP(&f.input, "input", "i", "input.txt", "file to correct")
	cmd.Flags().StringVarP(&f.output, "output", "o", "output.txt", "corrected file")
	cmd.Flags().StringVar(&f.separators, "separators", "", "separator characters (default from config)")
	cmd.Flags().IntVar(&f.threshold, "threshold", 0, "largest edit distance of a candidate (default from config)")
	cmd.Flags().StringVar(&f.script, "script", "", "file with menu answers instead of stdin")
	cmd.Flags().StringVar(&f.policy, "policy", "", "answer without asking: keep, add or first")
	cmd.Flags().StringVar(&f.report, "report", "", "write a JSON report of the pass")
	cmd.Flags().BoolVar(&f.learn, "learn", false, "persist learned words in Redis and load them at start")
	cmd.MarkFlagsMutuallyExclusive("script", "policy")
	return cmd
}

func engineOptions(cmd *cobra.Command, separators string, threshold int) []options.Options {
	seps, thr := cfg.Separators, cfg.Threshold
	if cmd.Flags().Changed("separators") {
		seps = separators
	}
	if cmd.Flags().Changed("threshold") {
		thr = threshold
	}
	return []options.Options{
		options.WithSeparators(seps),
		options.WithThreshold(thr),
		options.WithLogger(logger),
	}
}

func runCorrect(cmd *cobra.Command, f *correctFlags) error {
	ctx := cmd.Context()

	reference, err := textio.ReadFile(f.dict)
	if err != nil {
		return err
	}
	input, err := textio.ReadFile(f.input)
	if err != nil {
		return err
	}

	opts := engineOptions(cmd, f.separators, f.threshold)
	if f.learn {
		store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, options.WithStore(store))
	}

	engine, err := corrector.New(ctx, reference, opts...)
	if err != nil {
		return err
	}
	logger.Info("dictionary built", "file", f.dict, "words", engine.Dictionary().Len())

	var provider corrector.DecisionProvider
	switch {
	case f.policy != "":
		p, err := prompt.ParsePolicy(f.policy)
		if err != nil {
			return err
		}
		provider = p
	case f.script != "":
		sf, err := os.Open(f.script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer sf.Close()
		provider = prompt.NewConsole(sf, cmd.OutOrStdout())
	default:
		provider = prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	out, err := textio.Create(f.output)
	if err != nil {
		return err
	}
	rep, err := engine.Correct(ctx, input, out, provider)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if rep != nil {
		logger.Info("correction finished",
			"output", f.output, "tokens", rep.Tokens, "unknown", rep.Unknown,
			"added", rep.Added, "kept", rep.Kept, "replaced", rep.Replaced, "rejected", rep.Rejected)
		if f.report != "" {
			if werr := writeReport(f.report, rep); werr != nil && err == nil {
				err = werr
			}
		}
	}
	return err
}

func writeReport(path string, rep *corrector.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func createCandidatesCmd() *cobra.Command {
	var (
		dict       string
		separators string
		threshold  int
	)
	cmd := &cobra.Command{
		Use:   "candidates [word]",
		Short: "List dictionary words close to a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference, err := textio.ReadFile(dict)
			if err != nil {
				return err
			}
			engine, err := corrector.New(cmd.Context(), reference, engineOptions(cmd, separators, threshold)...)
			if err != nil {
				return err
			}
			if engine.Dictionary().Contains(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "'%s' is in the dictionary\n", args[0])
				return nil
			}
			cands := engine.Candidates(args[0])
			if len(cands) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no similar words for '%s'\n", args[0])
				return nil
			}
			return prompt.PrintCandidates(cmd.OutOrStdout(), cands)
		},
	}
	cmd.Flags().StringVarP(&dict, "dict", "d", "dict.txt", "reference file the dictionary is built from")
	cmd.Flags().StringVar(&separators, "separators", "", "separator characters (default from config)")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "largest edit distance of a candidate (default from config)")
	return cmd
}

func createTokensCmd() *cobra.Command {
	var (
		input      string
		separators string
	)
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the word/separator pairs of a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textio.ReadFile(input)
			if err != nil {
				return err
			}
			seps := cfg.Separators
			if cmd.Flags().Changed("separators") {
				seps = separators
			}
			if seps == "" {
				return corrector.ErrNoSeparators
			}
			t := tabby.NewCustom(tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0))
			t.AddHeader("#", "WORD", "SEP")
			for i, tok := range corrector.Tokenize(text, corrector.Separators(seps)) {
				t.AddLine(i, fmt.Sprintf("%q", tok.Word), fmt.Sprintf("%q", tok.Sep))
			}
			t.Print()
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "input.txt", "file to tokenize")
	cmd.Flags().StringVar(&separators, "separators", "", "separator characters (default from config)")
	return cmd
}
