package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx"
	"github.com/matjam/pagefx/internal/cli/cmd"
	"github.com/matjam/pagefx/internal/cli/cmd/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pagefx",
	Short: "Page transition effects for document viewers",
	Long: `pagefx renders the presentation-mode page transitions of PDF viewers
(split, blinds, box, wipe, dissolve, glitter, fly, push, cover, uncover,
fade) between two images, and can serve them live over a unix socket.`,
	Run: func(cmd *cobra.Command, args []string) {
		if v, err := cmd.Flags().GetBool("install-config"); err == nil && v {
			if _, err := utils.InstallDefaultConfig(); err != nil {
				log.Fatalf("Error installing config: %v", err)
			}
			return
		}

		if v, err := cmd.Flags().GetBool("show-config"); err == nil && v {
			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			log.Infof("All settings:")
			utils.PrintJSONColored(viper.AllSettings())
			return
		}

		if v, err := cmd.Flags().GetBool("version"); err == nil && v {
			log.Info(versionBanner())
			return
		}

		cmd.Help()
	},
}

func versionBanner() string {
	babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))

	return babyBlue.Render("pagefx") + " version " +
		green.Render(strings.Trim(pagefx.Version, "\n\r ")) + " " +
		yellow.Render("page transitions")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	RegisterFlags(rootCmd)

	rootCmd.AddCommand(
		cmd.NewServeCmd(),
		cmd.NewRenderCmd(),
		cmd.NewPlayCmd(),
		cmd.NewDiffCmd(),
		cmd.NewPaperSizeCmd(),
		cmd.NewStylesCmd(),
		cmd.NewSlideshowCmd(),
		cmd.NewStartCmd(),
		cmd.NewFrameCmd(),
		cmd.NewResetCmd(),
		cmd.NewStatusCmd(),
		cmd.NewStopCmd(),
		cmd.NewLoadCmd(),
		cmd.NewNextCmd(),
		cmd.NewPrevCmd(),
		cmd.NewGenManCmd(rootCmd),
	)
}
