package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the build, populated via ldflags in main
type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

// DisplayVersion returns the version as "v1.2.3" when it is a semantic
// version, or the raw string (e.g. "dev") otherwise
func (i Info) DisplayVersion() string {
	raw := strings.TrimSpace(i.Version)
	if raw == "" {
		return "dev"
	}

	v, err := semver.NewVersion(raw)
	if err != nil {
		return raw
	}
	return "v" + v.String()
}

// IsRelease reports whether the version is a semantic version without a prerelease suffix
func (i Info) IsRelease() bool {
	v, err := semver.NewVersion(strings.TrimSpace(i.Version))
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

// String renders the multi-line --version output
func (i Info) String() string {
	return fmt.Sprintf("datefmt %s\nBuild time: %s\nGit commit: %s",
		i.DisplayVersion(), i.BuildTime, i.GitCommit)
}
