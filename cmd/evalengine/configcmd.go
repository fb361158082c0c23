package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edassess/evalengine/internal/config"
)

var configOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration as YAML for tuning",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := config.Default().WriteYAML(configOutput); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote default configuration to %s\n", configOutput)
		return nil
	},
}

func init() {
	configInitCmd.Flags().StringVar(&configOutput, "output", "evalengine.yaml", "Destination file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
