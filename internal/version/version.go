package version

import "fmt"

// Set at build time via ldflags.
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string. Releases are identified by commit
// hash, not semver.
func String() string {
	return fmt.Sprintf("aoc dev (commit: %s, built: %s)", shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
