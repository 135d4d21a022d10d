// Package version exposes the toolkit's build identity, stamped through
// ldflags by the release build.
package version

import (
	"fmt"
	"runtime"
)

const tool = "staticproof"

// Overridden at build time:
//
//	-ldflags "-X .../version.Version=v1.2.0 -X .../version.CommitHash=$(git rev-parse HEAD)"
var (
	Version    = "dev"
	CommitHash = "dev"
	BuildTime  = "unknown"
)

// Info is the full build identity, including the toolchain that produced
// the binary. Size obligations depend on the target platform, so the
// platform is part of the identity.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the identity for the version command. Untagged builds
// report as "dev".
func (i Info) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", tool, i.Version, i.CommitHash, i.BuildTime)
}

// Short is the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
