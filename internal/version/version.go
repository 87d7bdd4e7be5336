// Package version provides the gh-autobump version constant.
package version

// Version is the current gh-autobump version.
const Version = "0.3.1"
