// Package version reports which kvpairs build is running.
//
// The values are shown by `kvpairs version`, by `kvpairs --version` and in the
// editor title bar. Release builds stamp them with ldflags:
//
//	go build -ldflags="-X github.com/muurk/kvpairs/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/kvpairs/internal/version.Commit=abc123" ./cmd/kvpairs
//
// Local builds fall back to the VCS stamp Go embeds in the binary, and to a
// "dev" version when there is none (for example under `go test`).
package version
