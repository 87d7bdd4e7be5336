// Package intent classifies commit and pull-request text into a bump
// request: which part of the semantic version the change wants bumped.
package intent

import (
	"strings"

	"github.com/rubrical-studios/gh-autobump/internal/semver"
)

// Default trigger phrases, matched case-insensitively as substrings.
var (
	DefaultMajorPhrases = []string{"bump version major", "bump major version", "#major"}
	DefaultMinorPhrases = []string{"bump version minor", "bump minor version", "#minor"}
)

// Resolver scans text blobs for trigger phrases. The zero value uses the
// default phrase sets; extra phrases from configuration are appended with
// AddPhrases.
type Resolver struct {
	majorPhrases []string
	minorPhrases []string
}

// NewResolver returns a Resolver with the default trigger phrases.
func NewResolver() *Resolver {
	return &Resolver{
		majorPhrases: DefaultMajorPhrases,
		minorPhrases: DefaultMinorPhrases,
	}
}

// AddPhrases appends configured trigger phrases to the defaults.
func (r *Resolver) AddPhrases(major, minor []string) {
	r.majorPhrases = append(r.majorPhrases, major...)
	r.minorPhrases = append(r.minorPhrases, minor...)
}

// Detect returns which version part the text requests. An empty blob
// requests nothing explicit and defaults to a patch bump. When both a
// major and a minor phrase appear, major wins.
func (r *Resolver) Detect(text string) semver.Part {
	if containsAny(text, r.majorPhrases) {
		return semver.PartMajor
	}
	if containsAny(text, r.minorPhrases) {
		return semver.PartMinor
	}
	return semver.PartPatch
}

func containsAny(text string, phrases []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, phrase := range phrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// IsMergeCommit reports whether a commit message looks like a pull
// request merge, which is the trigger to look up the richer PR
// description via the API.
func IsMergeCommit(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "merge pull request")
}
