package app

import "fmt"

// Build metadata, stamped by the release pipeline:
//
//	go build -ldflags "-X github.com/heartmarshall/myfrench-backend/internal/app.Version=v1.2.0"
//
// Unstamped builds report "dev".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the stamped build metadata for the startup log line.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}
