package version

import "runtime"

// Set through -ldflags "-X github.com/chris-regnier/moodmemo/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)

// String is the one-line form printed by --version.
func String() string {
	return Version + " (" + Commit + ", built " + BuildDate + ", " + GoVersion + ")"
}
