package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatCommand() *cobra.Command {
	var newline string

	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a file re-serialized under a newline mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseNewLineMode(newline)
			if err != nil {
				return err
			}
			doc, err := loadDocument(args[0], mode)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc.Value())
			return err
		},
	}

	cmd.Flags().StringVar(&newline, "newline", "auto", "newline mode: unix, windows, or auto")

	return cmd
}
