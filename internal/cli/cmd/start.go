package cmd

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/cli/cmd/utils"
	"github.com/matjam/pagefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start FROM TO",
		Short: "Start a transition on the preview server",
		Long: `Asks the running preview server to start a transition between two
images. Flags that are not given fall back to the server's config.`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			req, err := startRequest(cmd, args[0], args[1])
			if err != nil {
				log.Fatalf("Invalid request: %v", err)
			}

			client := ipc.NewClient(ipc.SocketPath())
			defer client.Close()
			if err := client.Start(req); err != nil {
				log.Fatalf("Failed to send 'start' command: %v", err)
			}
			log.Infof("Transition started from %v to %v", req.From, req.To)
		},
	}
	utils.AddTransitionFlags(cmd)
	return cmd
}

// startRequest resolves the image paths, since the server may run in a
// different working directory, and copies the flags the user set.
func startRequest(cmd *cobra.Command, from, to string) (ipc.StartRequest, error) {
	var req ipc.StartRequest
	var err error

	if req.From, err = filepath.Abs(utils.CanonicalPath(from)); err != nil {
		return req, err
	}
	if req.To, err = filepath.Abs(utils.CanonicalPath(to)); err != nil {
		return req, err
	}

	flags := cmd.Flags()
	if flags.Changed("style") {
		req.Style, _ = flags.GetString("style")
	}
	if flags.Changed("duration") {
		d, _ := flags.GetFloat64("duration")
		req.Duration = &d
	}
	if flags.Changed("direction") {
		d, _ := flags.GetInt("direction")
		req.Direction = &d
	}
	if flags.Changed("motion") {
		req.Motion, _ = flags.GetString("motion")
	}
	return req, nil
}
