package api

import (
	"fmt"
	"os/exec"
	"strings"
)

// GitAdd stages files to git
func (c *Client) GitAdd(paths ...string) error {
	args := append([]string{"add"}, paths...)
	cmd := exec.Command("git", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git add failed: %s", strings.TrimSpace(string(output)))
	}
	return nil
}

// GitTrustDirectory marks a directory as safe for git operations.
// Actions runners execute as a different user than the checkout owner,
// which git refuses to touch without this exception.
func (c *Client) GitTrustDirectory(dir string) error {
	cmd := exec.Command("git", "config", "--global", "--add", "safe.directory", dir)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git config safe.directory failed: %s", strings.TrimSpace(string(output)))
	}
	return nil
}
