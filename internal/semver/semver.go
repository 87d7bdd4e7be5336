// Package semver implements the three-part version arithmetic used by
// autobump: parsing versions out of tags, choosing which part to bump,
// and ordering tags to find the latest release.
package semver

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	xsemver "golang.org/x/mod/semver"
)

// Part identifies which component of a version gets incremented.
type Part string

const (
	PartMajor Part = "major"
	PartMinor Part = "minor"
	PartPatch Part = "patch"
)

// Version is a (major, minor, patch) integer triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// String formats the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Tag formats the version as a release tag, "vmajor.minor.patch".
func (v Version) Tag() string {
	return "v" + v.String()
}

// Bump returns the next version for the given part. Bumping major or
// minor resets the lower components to zero.
func (v Version) Bump(part Part) Version {
	switch part {
	case PartMajor:
		return Version{Major: v.Major + 1}
	case PartMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

var tagDigits = regexp.MustCompile(`\d+`)

// ParseTag extracts a version from a tag such as "v1.2.3". Any tag
// containing exactly three integer runs is accepted, so "release-1.2.3"
// parses too; anything else reports ok=false.
func ParseTag(tag string) (Version, bool) {
	nums := tagDigits.FindAllString(tag, -1)
	if len(nums) != 3 {
		return Version{}, false
	}
	var parts [3]int
	for i, n := range nums {
		v, err := strconv.Atoi(n)
		if err != nil {
			return Version{}, false
		}
		parts[i] = v
	}
	return Version{Major: parts[0], Minor: parts[1], Patch: parts[2]}, true
}

// Parse extracts a version from a plain "x.y.z" string.
func Parse(s string) (Version, error) {
	v, ok := ParseTag(s)
	if !ok {
		return Version{}, fmt.Errorf("invalid version %q", s)
	}
	return v, nil
}

// Latest returns the highest version among the given tags, skipping tags
// that do not carry a three-part version. ok is false when no tag parsed.
func Latest(tags []string) (Version, bool) {
	var versions []Version
	for _, tag := range tags {
		if v, ok := ParseTag(tag); ok {
			versions = append(versions, v)
		}
	}
	if len(versions) == 0 {
		return Version{}, false
	}
	sort.Slice(versions, func(i, j int) bool {
		return xsemver.Compare(versions[i].Tag(), versions[j].Tag()) < 0
	})
	return versions[len(versions)-1], true
}
