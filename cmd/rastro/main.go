// Package main is the entry point for the rastro command.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen/rastro/internal/adapters/cli"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the binary.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := cli.Execute(ctx, cli.BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
	})

	stop()
	os.Exit(code)
}
