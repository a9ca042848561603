package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"dictcorrector/internal/config"
	"dictcorrector/internal/customdict"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "dictcorrector:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:           "dictcorrector",
		Short:         "Correct text against a dictionary of known words",
		Long:          `Builds a dictionary from a reference file and walks an input file, asking what to do with every word the dictionary does not know.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return err
			}
			level := cfg.Level()
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", os.Getenv("CORRECTOR_CONFIG"), "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(createCorrectCmd())
	rootCmd.AddCommand(createCandidatesCmd())
	rootCmd.AddCommand(createTokensCmd())
	rootCmd.AddCommand(createDictCmd())
	return rootCmd
}

// openStore connects to the learned-word store described by cfg.
func openStore(ctx context.Context) (*customdict.CustomDict, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	dict := customdict.New(client, cfg.Redis.Key)
	if err := dict.Ping(ctx); err != nil {
		dict.Close()
		return nil, fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
	}
	return dict, nil
}
