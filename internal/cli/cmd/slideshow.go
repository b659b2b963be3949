package cmd

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/cli/cmd/utils"
	"github.com/matjam/pagefx/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewSlideshowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slideshow [page1.png] [page2.png] ... | DIR",
		Short: "Render transitions through a whole deck of pages",
		Long: `Renders the transition between every pair of consecutive pages as one
numbered PNG stream, the way a presentation steps through a document.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := utils.TransitionConfig()
			if err != nil {
				return err
			}
			if cfg, err = utils.ApplyTransitionFlags(cmd, cfg); err != nil {
				return err
			}

			d, err := openDeck(args, false)
			if err != nil {
				return err
			}
			if shuffle, _ := cmd.Flags().GetBool("shuffle"); shuffle {
				seed := viper.GetUint64("seed")
				if seed == 0 {
					d.Shuffle(nil)
				} else {
					d.Shuffle(rand.New(rand.NewPCG(seed, seed)))
				}
			}

			out, _ := cmd.Flags().GetString("output")
			steps, _ := cmd.Flags().GetInt("steps")
			sink, err := render.NewDirSink(utils.CanonicalPath(out), "slide")
			if err != nil {
				return err
			}

			n, err := render.RenderSlideshow(contextOf(cmd), cfg, d, steps, sink)
			if err != nil {
				return err
			}
			log.Infof("Wrote %d frames for %d pages to %v", n, d.Len(), out)
			return nil
		},
	}
	utils.AddTransitionFlags(cmd)
	cmd.Flags().StringP("output", "o", ".", "Output directory")
	cmd.Flags().IntP("steps", "n", 10, "Number of steps per page turn")
	cmd.Flags().Bool("shuffle", false, "Shuffle the pages first")
	return cmd
}
