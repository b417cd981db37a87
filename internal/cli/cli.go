// Package cli implements the flexbox command-line interface.
//
// The CLI is a reference consumer of the layout engine: it decodes a
// declarative TOML layout descriptor, computes the tree, and hands the
// resulting geometry to one of the bundled renderers. It is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: compute a descriptor and draw it as an ANSI grid or a PNG
//   - inspect: compute a descriptor and dump the per-node geometry
//   - demo: interactive terminal viewer that recomputes on every resize
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the flexbox CLI and returns an error if any command fails.
//
// The root command wires the --verbose flag to the log level and attaches
// the logger to the command context for all subcommands.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "flexbox",
		Short:        "flexbox computes and visualizes box layouts",
		Long:         `flexbox is the reference consumer of the flexbox layout engine: it reads a declarative TOML layout descriptor, resolves every node's position and size, and renders or dumps the result.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("flexbox %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(context.Background())
}
