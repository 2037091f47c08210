// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperlist CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperlist CLI.
var rootCmd = &cobra.Command{
	Use:   "paperlist",
	Short: "Browse a published spreadsheet of research papers",
	Long: `paperlist loads research-paper metadata from a published spreadsheet CSV
export and lets you filter and page through it.

Use "list" for one-shot output in the terminal, or "serve" to start the
web interface. The source URL comes from the config file (paperlist.yaml)
or the PAPERLIST_SOURCE_URL environment variable.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperlist.yaml or ~/.config/paperlist/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperlist")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperlist"))
		}
	}

	viper.SetEnvPrefix("PAPERLIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
