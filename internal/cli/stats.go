package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	"github.com/dshills/textdoc/internal/document"
)

//nolint:gochecknoglobals // lipgloss styles are conventionally package-level
var (
	statKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Width(12)
	statValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Show line, byte, and width statistics for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0], document.NewLineModeAuto)
			if err != nil {
				return err
			}

			widest, widestRow := 0, 0
			bytes := 0
			for row := 0; row < doc.LineCount(); row++ {
				line := doc.Line(row)
				bytes += len(line)
				if w := uniseg.StringWidth(line); w > widest {
					widest, widestRow = w, row
				}
			}

			out := cmd.OutOrStdout()
			printStat(out, "lines", strconv.Itoa(doc.LineCount()))
			printStat(out, "bytes", strconv.Itoa(bytes))
			printStat(out, "newline", strconv.Quote(doc.NewLineCharacter()))
			printStat(out, "widest", fmt.Sprintf("%d cells (line %d)", widest, widestRow+1))
			return nil
		},
	}
}

func printStat(out io.Writer, key, value string) {
	fmt.Fprintf(out, "%s %s\n", statKeyStyle.Render(key), statValueStyle.Render(value))
}
