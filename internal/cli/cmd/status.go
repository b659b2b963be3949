package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/cli/cmd/utils"
	"github.com/matjam/pagefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get preview server status",
		Long:  `Returns the current status of the pagefx preview server.`,
		Run: func(cmd *cobra.Command, args []string) {
			client := ipc.NewClient(ipc.SocketPath())
			defer client.Close()

			response, err := client.Status()
			if err != nil {
				log.Errorf("Error sending command: %v", err)
				return
			}

			utils.PrintJSONColored(response)
		},
	}
}
