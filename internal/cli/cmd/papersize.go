package cmd

import (
	"fmt"

	"github.com/matjam/pagefx/internal/papersize"
	"github.com/spf13/cobra"
)

func NewPaperSizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "papersize WIDTHxHEIGHT",
		Short: "Name the standard paper a page size matches",
		Example: `  pagefx papersize 210x297
  pagefx papersize 612x792 --unit pt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, h, err := papersize.ParseDimensions(args[0])
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("unit")
			unit, err := papersize.ParseUnit(name)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), papersize.Find(w, h, unit).Label())
			return nil
		},
	}
	cmd.Flags().StringP("unit", "u", "mm", "Unit of the dimensions: mm, in or pt")
	return cmd
}
