package cmd

import (
	"fmt"
	"os"

	"github.com/rubrical-studios/gh-autobump/internal/config"
	"github.com/rubrical-studios/gh-autobump/internal/versionfile"
	"github.com/spf13/cobra"
)

type currentOptions struct {
	file string
	tag  bool
}

func newCurrentCommand() *cobra.Command {
	opts := &currentOptions{}

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the version declared in the version file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurrent(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Version file to read (default CMakeLists.txt)")
	cmd.Flags().BoolVar(&opts.tag, "tag", false, "Print as a release tag (v prefix)")

	return cmd
}

func runCurrent(cmd *cobra.Command, opts *currentOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	cfg, err := config.LoadFromDirectory(cwd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	path := opts.file
	if path == "" {
		path = cfg.VersionFile()
	}

	vf, err := versionfile.Parse(path)
	if err != nil {
		return fmt.Errorf("could not find current version: %w", err)
	}

	if opts.tag {
		fmt.Fprintln(cmd.OutOrStdout(), vf.Version.Tag())
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), vf.Version)
	}
	return nil
}
