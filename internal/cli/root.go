// Package cli provides the Cobra command structure for textdoc.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/textdoc/internal/document"
	"github.com/dshills/textdoc/internal/logging"
)

// NewRootCommand creates the root textdoc command with all subcommands.
func NewRootCommand(version string) *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "textdoc",
		Short: "Inspect and patch line-addressed text documents",
		Long: `textdoc loads a text file into a line-addressed document model and
lets you inspect it, normalize its line endings, or apply a JSON patch of
insert/remove deltas against it.`,
		Version: version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newApplyCommand())
	rootCmd.AddCommand(newCatCommand())

	return rootCmd
}

// loadDocument reads a file into a document under the given newline mode.
func loadDocument(path string, mode document.NewLineMode) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return document.New(string(data), document.WithNewLineMode(mode)), nil
}

// parseNewLineMode maps the --newline flag value to a document mode.
func parseNewLineMode(name string) (document.NewLineMode, error) {
	switch name {
	case "unix":
		return document.NewLineModeUnix, nil
	case "windows":
		return document.NewLineModeWindows, nil
	case "auto":
		return document.NewLineModeAuto, nil
	default:
		return document.NewLineModeAuto, fmt.Errorf("unknown newline mode %q (want unix, windows, or auto)", name)
	}
}
