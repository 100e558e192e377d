package cmd

import (
	"fmt"
	"io"

	"colorcycle/internal/color"
	"colorcycle/internal/palette"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the preset colors",
		Long:  `Lists the preset colors with their ids. Use the ids with --colors or the selection setting.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printPresets(cmd.OutOrStdout(), palette.Default())
		},
	}
}

func printPresets(w io.Writer, table *palette.Table) {
	for _, option := range table.Options() {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(option.Value)).
			Foreground(lipgloss.Color(color.Contrast(option.Value))).
			Padding(0, 1).
			Render(fmt.Sprintf("%d", option.ID))
		fmt.Fprintf(w, "%s  %s\n", swatch, option.Value)
	}
}
