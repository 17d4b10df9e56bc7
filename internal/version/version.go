package version

import "fmt"

// Set with -ldflags "-X github.com/ericogr/boss-cards/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// String is the one-line build summary printed by the binaries.
func String() string {
	s := fmt.Sprintf("bosscards %s (%s)", Version, Commit)
	if Dirty == "true" {
		s += " dirty"
	}
	if Date != "" {
		s += " built " + Date
	}
	return s
}
