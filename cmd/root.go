package cmd

import (
	pkgversion "github.com/rubrical-studios/gh-autobump/internal/version"
	"github.com/spf13/cobra"
)

// version is set by ldflags during goreleaser builds.
// When empty (default), falls back to the source constant in internal/version.
var version = ""

func getVersion() string {
	if version != "" {
		return version
	}
	return pkgversion.Version
}

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gh autobump",
		Short: "Bump a project's semantic version from merge metadata",
		Long: `gh autobump bumps the semantic version declared in a project build file
(CMakeLists.txt by default) as part of a CI release step.

The bump part comes from the merged pull request: a description containing
"bump major version" or "#major" bumps the major part, the minor phrases
bump the minor part, and anything else bumps the patch part. The new
version is written back into the build file, the file is staged, and the
old/new release tags are reported as step outputs.

Use 'gh autobump <command> --help' for more information about a command.`,
		Version: getVersion(),
	}

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newCurrentCommand())

	return cmd
}

func Execute() error {
	return NewRootCommand().Execute()
}
