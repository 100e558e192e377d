package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const versionTemplate = `{{printf "colorcycle version %s\n" .Version}}`

// rootCmd represents the base command when called without any subcommands.
// On its own it runs the display, like 'colorcycle run'.
var rootCmd = &cobra.Command{
	Use:   "colorcycle",
	Short: "Cycle through a set of colors in your terminal",
	Long: `colorcycle fills the terminal with a color and cycles through a
selection of preset colors at an adjustable speed. Pick the colors, change
the speed and pause the rotation from the keyboard or with the mouse.`,
	Args: cobra.NoArgs,
	RunE: runDisplay,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid colors, unreadable config)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(versionTemplate)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	addRunFlags(rootCmd)

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
