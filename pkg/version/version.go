// Package version records build metadata for the streamstat binary.
package version

// Populated at build time via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/Sumatoshi-tech/streamstat/pkg/version.Version=v1.2.0"
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the VCS revision the binary was built from.
	Commit = "unknown"

	// Date is the build timestamp.
	Date = "unknown"
)
