package roomplanner

// version holds the CLI version string, populated via -ldflags through SetVersion.
var version = "dev"

// SetVersion initializes the version string if non-empty.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Version returns the current CLI version string.
func Version() string { return version }
