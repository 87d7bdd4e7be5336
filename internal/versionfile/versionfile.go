// Package versionfile reads and rewrites the semantic version declared
// in a project build file. The default target is a CMake lists file with
// a project(... VERSION x.y.z ...) declaration; only the x.y.z substring
// is ever rewritten, every other byte is preserved.
package versionfile

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/rubrical-studios/gh-autobump/internal/semver"
)

// ErrNoVersion indicates the file exists but carries no recognizable
// version declaration. Distinct from the fs.ErrNotExist returned when
// the file itself is missing.
var ErrNoVersion = errors.New("no version declaration found")

// versionPattern matches a project() call containing the VERSION keyword
// followed by a dotted three-integer version. (?s) lets the declaration
// span multiple lines.
var versionPattern = regexp.MustCompile(`(?is)project\(.*?VERSION.*?(\d+\.\d+\.\d+).*?\)`)

// File is the parsed state of a version file: its full content, the
// declared version, and the byte span holding the version substring.
type File struct {
	Path    string
	Version semver.Version

	content []byte
	start   int
	end     int
}

// PatchResult reports what Patch did to the file.
type PatchResult int

const (
	// Patched means the version differed and the file was rewritten.
	Patched PatchResult = iota
	// Unchanged means the file already declared the requested version.
	Unchanged
	// NotApplicable means there was no file or no declaration to patch.
	// Parse never produces a File in that case; callers use this value
	// when they choose to continue without one.
	NotApplicable
)

// Parse reads path and locates its version declaration. A missing file
// surfaces as an error satisfying errors.Is(err, fs.ErrNotExist); a file
// without a declaration surfaces ErrNoVersion.
func Parse(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	loc := versionPattern.FindSubmatchIndex(content)
	if loc == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoVersion)
	}

	// loc[2]:loc[3] is the span of the x.y.z capture group.
	version, err := semver.Parse(string(content[loc[2]:loc[3]]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoVersion)
	}

	return &File{
		Path:    path,
		Version: version,
		content: content,
		start:   loc[2],
		end:     loc[3],
	}, nil
}

// Patch replaces the version substring with next and writes the file
// back in place. When the declared version already equals next, nothing
// is written and Unchanged is returned.
func (f *File) Patch(next semver.Version) (PatchResult, error) {
	if next == f.Version {
		return Unchanged, nil
	}

	patched := make([]byte, 0, len(f.content))
	patched = append(patched, f.content[:f.start]...)
	patched = append(patched, next.String()...)
	patched = append(patched, f.content[f.end:]...)

	if err := os.WriteFile(f.Path, patched, 0644); err != nil {
		return Unchanged, fmt.Errorf("writing %s: %w", f.Path, err)
	}

	f.content = patched
	f.end = f.start + len(next.String())
	f.Version = next
	return Patched, nil
}
