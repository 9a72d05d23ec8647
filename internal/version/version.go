// Package version carries build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/doeshing/panicvalidate/internal/version.Commit=$(git rev-parse --short HEAD)"
package version

var (
	Version   = "0.3.0"
	Commit    = ""
	BuildDate = ""
)
