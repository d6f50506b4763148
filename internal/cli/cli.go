// Package cli implements the meshpath command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/meshpath/mtg"
	"github.com/katalvlaran/meshpath/shortestpath"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "meshpath"

	// version is reported by --version.
	version = "0.1.0"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Meshpath finds shortest paths on planar half-edge meshes",
		Long: `Meshpath embeds a planar drawing into a mesh topology graph and runs
shortest-path searches on it: single-seed Dijkstra, connectors between
boundary loops, and breadth-first layering.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.connectCommand())
	root.AddCommand(c.bfsCommand())

	return root
}

// observer forwards search announcements to the debug log.
func (c *CLI) observer() shortestpath.Observer {
	return func(message string, a, b mtg.NodeID) {
		c.Logger.Debug(message, "a", a, "b", b)
	}
}
