package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Return the preview transition to idle",
		Run: func(cmd *cobra.Command, args []string) {
			client := ipc.NewClient(ipc.SocketPath())
			defer client.Close()
			if err := client.Reset(); err != nil {
				log.Fatalf("Failed to send 'reset' command: %v", err)
			}
			log.Info("Reset command sent")
		},
	}
}
