// Package cmd implements the viewbundle CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/viewbundle/viewbundle/pkg/logging"
)

var (
	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "viewbundle",
	Short: "Per-view translation bundle compiler",
	Long: `Viewbundle reconciles a web application's message catalogs against an
externally supplied translation source and emits one finished bundle per
view and locale, falling back to English wherever no translation exists.

Inputs are read from the current directory (or --input-dir): the language
registry (languages.yaml) and route manifest (routes.yaml) at the tree
root, the general and per-view message catalogs, optional per-view
asset-URL catalogs, and one translation source file per locale keyed by
content hash of the original string.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("input-dir", ".", "root of the input tree")
	rootCmd.PersistentFlags().String("messages-dir", "messages", "message catalog directory, relative to the input tree")
	rootCmd.PersistentFlags().String("translations-dir", "translations", "translation source directory, relative to the input tree")
	rootCmd.PersistentFlags().String("assets-dir", "assets", "asset-URL catalog directory, relative to the input tree")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "auto", "log format (auto, console, json)")

	for _, flag := range []string{"input-dir", "messages-dir", "translations-dir", "assets-dir", "log-level", "log-format"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("Failed to bind %s flag: %v", flag, err))
		}
	}
}

// initConfig reads in .env files and environment variables.
func initConfig() {
	// .env is optional; flags and environment fully configure the tool
	_ = godotenv.Load()

	viper.SetEnvPrefix("viewbundle")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configureLogging()
}

// configureLogging sets up the logging system based on configuration.
func configureLogging() {
	logging.SetLevel(viper.GetString("log-level"))
	logging.SetDefault(logging.New(os.Stderr, viper.GetString("log-format")))
}
