// Command leadintel is the operator CLI: it generates leads, lists
// campaigns, runs an optimization sweep and prints tracking links against
// the configured backends.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/quotable/leadintel/internal/app"
	"github.com/quotable/leadintel/internal/config"
)

func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.LoadFromEnv(app.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.New(ctx, cfg)
}

func main() {
	if err := newRootCmd(loadApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
