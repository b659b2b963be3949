package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the preview server",
		Run: func(cmd *cobra.Command, args []string) {
			client := ipc.NewClient(ipc.SocketPath())
			defer client.Close()
			if err := client.Stop(); err != nil {
				log.Fatalf("Failed to send 'stop' command: %v", err)
			}
			log.Info("Stop command sent")
		},
	}
}
