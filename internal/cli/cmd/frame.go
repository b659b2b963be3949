package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/cli/cmd/utils"
	"github.com/matjam/pagefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewFrameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Fetch the current frame from the preview server",
		Run: func(cmd *cobra.Command, args []string) {
			client := ipc.NewClient(ipc.SocketPath())
			defer client.Close()

			data, phase, err := client.Frame()
			if err != nil {
				log.Fatalf("Failed to send 'frame' command: %v", err)
			}
			if data == nil {
				log.Infof("No frame, transition is %v", phase)
				return
			}

			out := utils.CanonicalPath(cmd.Flag("output").Value.String())
			if err := os.WriteFile(out, data, 0644); err != nil {
				log.Fatalf("Error writing frame: %v", err)
			}
			log.Infof("Wrote %v frame to %v", phase, out)
		},
	}
	cmd.Flags().StringP("output", "o", "frame.png", "File to write the PNG to")
	return cmd
}
