package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "evalengine",
	Short: "Deterministic scoring engine for institutional submissions",
	Long: `evalengine scores extraction output for an institutional submission:
it merges and normalizes the extracted information blocks, grades each block's
quality, and computes sufficiency, KPIs and compliance flags for the selected
regulatory mode.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initViper)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (YAML)")
}

func initViper() {
	viper.SetEnvPrefix("EVALENGINE")
	viper.AutomaticEnv()
}
