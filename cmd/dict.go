package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createDictCmd manages the learned words kept in Redis.
func createDictCmd() *cobra.Command {
	dictCmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage learned words stored in Redis",
	}
	dictCmd.AddCommand(createDictListCmd())
	dictCmd.AddCommand(createDictAddCmd())
	dictCmd.AddCommand(createDictRemoveCmd())
	return dictCmd
}

func createDictListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every learned word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()
			words, err := store.All(cmd.Context())
			if err != nil {
				return err
			}
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
}

func createDictAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [word...]",
		Short: "Learn words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()
			for _, w := range args {
				if err := store.Add(cmd.Context(), w); err != nil {
					return fmt.Errorf("add %q: %w", w, err)
				}
				logger.Info("word learned", "word", w)
			}
			return nil
		},
	}
}

func createDictRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [word...]",
		Short: "Forget learned words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()
			for _, w := range args {
				if err := store.Remove(cmd.Context(), w); err != nil {
					return fmt.Errorf("remove %q: %w", w, err)
				}
				logger.Info("word forgotten", "word", w)
			}
			return nil
		},
	}
}
