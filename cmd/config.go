package cmd

import (
	"fmt"
	"io"

	"colorcycle/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configPathFlag string

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration the display would start with, after layering
the user and project config files over the defaults, the user config
directory and the files that were searched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printConfig(cmd.OutOrStdout(), configPathFlag)
		},
	}
	configCmd.Flags().StringVar(&configPathFlag, "config", "", "Read configuration from this file only")
	return configCmd
}

func printConfig(w io.Writer, path string) error {
	var cfg config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadConfigFromPath(path)
		fmt.Fprintf(w, "# source: %s\n", path)
	} else {
		cfg, err = config.LoadConfig()
		if dir, dirErr := config.GetUserConfigDir(); dirErr == nil {
			fmt.Fprintf(w, "# user config dir: %s\n", dir)
		}
		for _, p := range config.SearchPaths() {
			fmt.Fprintf(w, "# searched: %s\n", p)
		}
	}
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	_, err = w.Write(data)
	return err
}
