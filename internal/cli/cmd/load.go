package cmd

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/cli/cmd/utils"
	"github.com/matjam/pagefx/internal/deck"
	"github.com/matjam/pagefx/internal/ipc"
	"github.com/spf13/cobra"
)

func NewLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [page1.png] [page2.png] ... | DIR",
		Short: "Load a deck of pages into the preview server",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			loop, _ := cmd.Flags().GetBool("loop")
			d, err := openDeck(args, loop)
			if err != nil {
				log.Fatalf("Error reading pages: %v", err)
			}

			client := ipc.NewClient(ipc.SocketPath())
			defer client.Close()
			if err := client.Load(ipc.LoadRequest{Pages: d.Pages(), Loop: loop}); err != nil {
				log.Fatalf("Failed to send 'load' command: %v", err)
			}
			log.Infof("Loaded %d pages", d.Len())
		},
	}
	cmd.Flags().Bool("loop", false, "Wrap around at either end of the deck")
	return cmd
}

func NewNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Transition to the next page of the loaded deck",
		Run: func(cmd *cobra.Command, args []string) {
			client := ipc.NewClient(ipc.SocketPath())
			defer client.Close()
			if err := client.Next(); err != nil {
				log.Fatalf("Failed to send 'next' command: %v", err)
			}
			log.Info("Next page command sent")
		},
	}
}

func NewPrevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Transition to the previous page of the loaded deck",
		Run: func(cmd *cobra.Command, args []string) {
			client := ipc.NewClient(ipc.SocketPath())
			defer client.Close()
			if err := client.Prev(); err != nil {
				log.Fatalf("Failed to send 'prev' command: %v", err)
			}
			log.Info("Previous page command sent")
		},
	}
}

// openDeck reads a single directory argument as a deck of its images, or
// takes the arguments as the pages in order. Paths are made absolute.
func openDeck(args []string, loop bool) (*deck.Deck, error) {
	if len(args) == 1 {
		path := utils.CanonicalPath(args[0])
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			abs, err := filepath.Abs(path)
			if err != nil {
				return nil, err
			}
			return deck.FromDir(abs, loop)
		}
	}

	pages := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(utils.CanonicalPath(arg))
		if err != nil {
			return nil, err
		}
		pages = append(pages, abs)
	}
	return deck.New(pages, loop), nil
}
