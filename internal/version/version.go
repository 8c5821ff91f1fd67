package version

// Populated at link time through -ldflags; "dev" means a local build.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info reports the version, git commit, and build date.
func Info() (string, string, string) {
	return Version, GitCommit, BuildDate
}
