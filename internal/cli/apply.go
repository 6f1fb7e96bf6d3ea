package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/textdoc/internal/document"
	"github.com/dshills/textdoc/internal/logging"
)

func newApplyCommand() *cobra.Command {
	var (
		revert  bool
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "apply <file> <patch.json>",
		Short: "Apply a JSON delta patch to a file",
		Long: `apply loads a file into a document, decodes a JSON array of
insert/remove deltas, and applies them in order. With --revert the deltas
are reverted in reverse order instead, undoing a previously applied patch.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Default()

			doc, err := loadDocument(args[0], document.NewLineModeAuto)
			if err != nil {
				return err
			}

			patch, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}
			deltas, err := document.ParseDeltas(patch)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[1], err)
			}
			logger.Debug("patch decoded", "deltas", len(deltas))

			if revert {
				err = doc.RevertDeltas(deltas)
			} else {
				err = doc.ApplyDeltas(deltas)
			}
			if err != nil {
				return fmt.Errorf("apply patch: %w", err)
			}
			logger.Debug("patch applied", "lines", doc.LineCount(), "revert", revert)

			if outPath != "" {
				return os.WriteFile(outPath, []byte(doc.Value()), 0o644)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc.Value())
			return err
		},
	}

	cmd.Flags().BoolVar(&revert, "revert", false, "revert the patch instead of applying it")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}
