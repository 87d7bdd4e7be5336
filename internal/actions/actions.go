// Package actions captures the GitHub Actions runner environment as an
// explicit value and writes step outputs. Commands receive an Env
// instead of reading environment variables ad hoc.
package actions

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultWorkspace is where Actions mounts the checkout inside a
// container action.
const DefaultWorkspace = "/github/workspace"

// Env is the slice of the runner environment autobump uses.
type Env struct {
	// Repository is "owner/name", from GITHUB_REPOSITORY.
	Repository string
	// OutputPath is the step-output file, from GITHUB_OUTPUT.
	OutputPath string
	// Workspace is the checkout directory, from GITHUB_WORKSPACE.
	Workspace string
}

// EnvFromOS reads the runner environment.
func EnvFromOS() Env {
	workspace := os.Getenv("GITHUB_WORKSPACE")
	if workspace == "" {
		workspace = DefaultWorkspace
	}
	return Env{
		Repository: os.Getenv("GITHUB_REPOSITORY"),
		OutputPath: os.Getenv("GITHUB_OUTPUT"),
		Workspace:  workspace,
	}
}

// SplitRepository returns the owner and name halves of Repository.
func (e Env) SplitRepository() (owner, name string, err error) {
	parts := strings.SplitN(e.Repository, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q (want owner/name)", e.Repository)
	}
	return parts[0], parts[1], nil
}

// Output is one step-output key-value pair. Order is preserved when
// writing, so reports read the same everywhere.
type Output struct {
	Key   string
	Value string
}

// WriteOutputs appends key=value lines to the step-output file named by
// the Env and echoes each line to w. A missing OutputPath (running
// outside Actions) skips the file but still echoes.
func (e Env) WriteOutputs(w io.Writer, outputs []Output) error {
	var file io.Writer
	if e.OutputPath != "" {
		f, err := os.OpenFile(e.OutputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("opening output file: %w", err)
		}
		defer f.Close()
		file = f
	}

	for _, out := range outputs {
		line := fmt.Sprintf("%s=%s\n", out.Key, out.Value)
		if file != nil {
			if _, err := io.WriteString(file, line); err != nil {
				return fmt.Errorf("writing output file: %w", err)
			}
		}
		fmt.Fprint(w, line)
	}
	return nil
}
