package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/cli/cmd/utils"
	"github.com/matjam/pagefx/internal/frame"
	"github.com/matjam/pagefx/internal/imgcmp"
	"github.com/spf13/cobra"
)

func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Compare two images",
		Long: `Prints the mean per-pixel RGB difference between two images and
whether it is under the threshold. Exits non-zero when they differ.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := frame.LoadFrame(utils.CanonicalPath(args[0]))
			if err != nil {
				return err
			}
			b, err := frame.LoadFrame(utils.CanonicalPath(args[1]))
			if err != nil {
				return err
			}

			threshold, _ := cmd.Flags().GetFloat64("threshold")
			score, ok := imgcmp.Diff(a, b)
			if !ok {
				return fmt.Errorf("images differ in size: %v vs %v", a.Bounds().Size(), b.Bounds().Size())
			}

			log.Infof("score %.3f (threshold %g)", score, threshold)
			if score >= threshold {
				return fmt.Errorf("images differ")
			}
			log.Info("images are equal")
			return nil
		},
	}
	cmd.Flags().Float64P("threshold", "t", imgcmp.DefaultThreshold, "Largest mean difference still considered equal")
	return cmd
}
