// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/wikireader/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/wikireader/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/wikireader/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version of the wikireader binary.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// UserAgent returns the identifier sent to Wikimedia APIs when the
// configuration does not set one. Wikimedia asks clients to identify
// themselves with a name, version and contact.
func UserAgent() string {
	return fmt.Sprintf("wikireader/%s (https://github.com/matzehuels/wikireader)", Version)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
