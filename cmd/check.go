package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rubrical-studios/gh-autobump/internal/config"
	"github.com/rubrical-studios/gh-autobump/internal/intent"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [text]",
		Short: "Show which version part a text blob would bump",
		Long: `Classify a commit message or pull request description without touching
anything. The text comes from the argument, or from stdin when no
argument is given. Prints major, minor or patch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	cfg, err := config.LoadFromDirectory(cwd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	resolver := intent.NewResolver()
	resolver.AddPhrases(cfg.Phrases.Major, cfg.Phrases.Minor)

	fmt.Fprintln(cmd.OutOrStdout(), resolver.Detect(text))
	return nil
}
