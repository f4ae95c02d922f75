package app

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/flashcards/internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion renders the version for startup logs and /health. Without
// ldflags the VCS stamp recorded by the Go toolchain is used.
func BuildVersion() string {
	return formatVersion(Version, Commit, BuildTime, readBuildInfo)
}

func readBuildInfo() (revision, when string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			when = s.Value
		}
	}
	return revision, when
}

func formatVersion(version, commit, built string, fallback func() (string, string)) string {
	if commit == "" || built == "" {
		rev, when := fallback()
		if commit == "" {
			commit = rev
		}
		if built == "" {
			built = when
		}
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}
