package cmd

import (
	"fmt"
	"os"

	"github.com/rubrical-studios/gh-autobump/internal/actions"
	"github.com/rubrical-studios/gh-autobump/internal/api"
	"github.com/rubrical-studios/gh-autobump/internal/config"
	"github.com/rubrical-studios/gh-autobump/internal/intent"
	"github.com/rubrical-studios/gh-autobump/internal/semver"
	"github.com/rubrical-studios/gh-autobump/internal/versionfile"
	"github.com/spf13/cobra"
)

// runClient is the slice of api.Client the run command uses, split out
// so tests can substitute a mock.
type runClient interface {
	MergedPullRequestBody(owner, repo, sha string) (string, error)
	ListTags(owner, repo string) ([]string, error)
	GitAdd(paths ...string) error
	GitTrustDirectory(dir string) error
}

type runOptions struct {
	file     string
	repo     string
	fromTags bool
	dryRun   bool
	noStage  bool
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [commit-message] [commit-sha]",
		Short: "Bump the version file and report old/new tags",
		Long: `Run the full bump pipeline for one CI invocation.

When the commit message is a pull request merge and a commit SHA is
given, the merged pull request's description is fetched and scanned for
bump trigger phrases; otherwise the message itself is scanned. The
current version is read from the version file (or, with --from-tags,
from the highest semantic tag in the repository), bumped, and written
back. old_tag, new_tag and bumped are appended to the GITHUB_OUTPUT
file and echoed to stdout.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, opts, api.NewClient(), actions.EnvFromOS())
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Version file to patch (default CMakeLists.txt)")
	cmd.Flags().StringVarP(&opts.repo, "repo", "R", "", "Repository in owner/name format (default GITHUB_REPOSITORY)")
	cmd.Flags().BoolVar(&opts.fromTags, "from-tags", false, "Resolve the current version from repository tags instead of the version file")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report what would happen without writing anything")
	cmd.Flags().BoolVar(&opts.noStage, "no-stage", false, "Skip staging the patched file with git add")

	return cmd
}

func runRun(cmd *cobra.Command, args []string, opts *runOptions, client runClient, env actions.Env) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.LoadFromDirectory(cwd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Runner checkouts are owned by a different user; without the trust
	// exception every git invocation below fails. Failure here is only
	// worth a warning since staging is best-effort anyway.
	if !opts.dryRun {
		if err := client.GitTrustDirectory(env.Workspace); err != nil {
			fmt.Fprintf(errOut, "warning: %v\n", err)
		}
	}

	var msg, sha string
	if len(args) > 0 {
		msg = args[0]
	}
	if len(args) > 1 {
		sha = args[1]
	}

	blob := msg
	if intent.IsMergeCommit(msg) && sha != "" {
		owner, repo, err := resolveRepository(opts.repo, cfg, env)
		if err != nil {
			return err
		}
		body, err := client.MergedPullRequestBody(owner, repo, sha)
		if err != nil {
			return fmt.Errorf("unable to retrieve an associated pull request description: %w", err)
		}
		blob = body
	}

	resolver := intent.NewResolver()
	resolver.AddPhrases(cfg.Phrases.Major, cfg.Phrases.Minor)
	part := resolver.Detect(blob)

	versionFile := opts.file
	if versionFile == "" {
		versionFile = cfg.VersionFile()
	}

	var current, next semver.Version
	var vf *versionfile.File

	if opts.fromTags {
		owner, repo, err := resolveRepository(opts.repo, cfg, env)
		if err != nil {
			return err
		}
		tags, err := client.ListTags(owner, repo)
		if err != nil {
			return fmt.Errorf("unable to list repository tags: %w", err)
		}
		latest, ok := semver.Latest(tags)
		if !ok {
			// No releases yet: the first run publishes v0.0.1 no
			// matter what the description asked for.
			current = semver.Version{}
			next = semver.Version{Patch: 1}
			part = semver.PartPatch
		} else {
			current = latest
			next = current.Bump(part)
		}

		// Keep the version file in sync with the tag-derived version
		// when one is present; its absence is not fatal in this mode.
		vf, err = versionfile.Parse(versionFile)
		if err != nil {
			fmt.Fprintf(errOut, "warning: not patching %s: %v\n", versionFile, err)
			vf = nil
		}
	} else {
		vf, err = versionfile.Parse(versionFile)
		if err != nil {
			return fmt.Errorf("could not find current version: %w", err)
		}
		current = vf.Version
		next = current.Bump(part)
	}

	result := versionfile.NotApplicable
	if vf != nil && !opts.dryRun {
		result, err = vf.Patch(next)
		if err != nil {
			return err
		}
		if result == versionfile.Patched && cfg.ShouldStage() && !opts.noStage {
			if err := client.GitAdd(vf.Path); err != nil {
				fmt.Fprintf(errOut, "warning: %v\n", err)
			}
		}
	}
	if result == versionfile.Unchanged {
		fmt.Fprintf(errOut, "%s already declares %s, nothing to patch\n", versionFile, next)
	}

	if opts.dryRun {
		// Dry runs report to stdout only.
		env.OutputPath = ""
	}
	return env.WriteOutputs(out, []actions.Output{
		{Key: "old_tag", Value: current.Tag()},
		{Key: "new_tag", Value: next.Tag()},
		{Key: "bumped", Value: string(part)},
	})
}

// resolveRepository picks the owner/name pair: --repo flag first, then
// config, then the Actions environment.
func resolveRepository(flag string, cfg *config.Config, env actions.Env) (string, string, error) {
	repo := flag
	if repo == "" {
		repo = cfg.Repository
	}
	if repo != "" {
		env.Repository = repo
	}
	return env.SplitRepository()
}
