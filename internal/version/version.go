// Package version holds build information injected at link time:
//
//	go build -ldflags "-X github.com/arthur-debert/promptpaste/internal/version.Version=v1.2.0"
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
