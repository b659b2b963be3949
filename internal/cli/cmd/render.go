package cmd

import (
	"context"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/cli/cmd/utils"
	"github.com/matjam/pagefx/internal/frame"
	"github.com/matjam/pagefx/internal/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render FROM TO",
		Short: "Render a transition as a numbered PNG sequence",
		Long: `Samples the transition at evenly spaced progress values, from the
first image to the second, and writes one PNG per step. No clock is
involved, so the output is the same on every run for a fixed seed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := utils.TransitionConfig()
			if err != nil {
				return err
			}
			if cfg, err = utils.ApplyTransitionFlags(cmd, cfg); err != nil {
				return err
			}

			from, to, err := loadPair(args[0], args[1])
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("output")
			steps, _ := cmd.Flags().GetInt("steps")
			sink, err := render.NewDirSink(utils.CanonicalPath(out), cfg.Style.String())
			if err != nil {
				return err
			}

			if err := render.RenderSequence(contextOf(cmd), cfg, from, to, steps, sink); err != nil {
				return err
			}
			log.Infof("Wrote %d frames to %v", steps+1, out)
			return nil
		},
	}
	utils.AddTransitionFlags(cmd)
	cmd.Flags().StringP("output", "o", ".", "Output directory")
	cmd.Flags().IntP("steps", "n", 10, "Number of steps between the two images")
	return cmd
}

func NewPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play FROM TO",
		Short: "Play a transition in real time and record the frames",
		Long: `Runs the transition against the wall clock, polling a frame at the
configured frame rate until it finishes. Every polled frame is written
as a PNG.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := utils.TransitionConfig()
			if err != nil {
				return err
			}
			if cfg, err = utils.ApplyTransitionFlags(cmd, cfg); err != nil {
				return err
			}

			from, to, err := loadPair(args[0], args[1])
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("output")
			sink, err := render.NewDirSink(utils.CanonicalPath(out), cfg.Style.String())
			if err != nil {
				return err
			}

			fps, _ := cmd.Flags().GetInt("fps")
			if fps <= 0 {
				fps = viper.GetInt("framerate_limit")
			}
			n, err := render.Play(contextOf(cmd), cfg.NewTransition(), from, to, fps, sink)
			if err != nil {
				return err
			}
			log.Infof("Wrote %d frames to %v", n, out)
			return nil
		},
	}
	utils.AddTransitionFlags(cmd)
	cmd.Flags().StringP("output", "o", ".", "Output directory")
	cmd.Flags().Int("fps", 0, "Frames per second (default framerate_limit)")
	return cmd
}

func loadPair(fromPath, toPath string) (image.Image, image.Image, error) {
	from, err := frame.LoadFrame(utils.CanonicalPath(fromPath))
	if err != nil {
		return nil, nil, fmt.Errorf("loading %v: %w", fromPath, err)
	}
	to, err := frame.LoadFrame(utils.CanonicalPath(toPath))
	if err != nil {
		return nil, nil, fmt.Errorf("loading %v: %w", toPath, err)
	}
	return from, to, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
