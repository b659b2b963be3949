package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matjam/pagefx/internal/transition"
	"github.com/spf13/cobra"
)

func NewStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the transition styles",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), stylesTable())
		},
	}
}

func stylesTable() string {
	name := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(10)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	for _, s := range transition.Styles() {
		dirs := make([]string, 0, len(s.Directions()))
		for _, d := range s.Directions() {
			dirs = append(dirs, strconv.Itoa(d))
		}

		line := name.Render(s.String()) + " directions " + strings.Join(dirs, ", ")
		if s.UsesMotion() {
			line += dim.Render("  (inward/outward)")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
