package fmi2

var (
	Version = "v0.0.0-in-progress"
)

// FMIVersion is the FMI standard version the wrapper targets.
const FMIVersion = "2.0"

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}
