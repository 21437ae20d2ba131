package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/viewbundle/viewbundle"
	"github.com/viewbundle/viewbundle/pkg/logging"
)

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Generate per-view translation bundles",
	Long: `Generate composes one bundle per non-redirect view in the route manifest
and writes it to the output directory, which is created if absent.

Examples:
  viewbundle generate dist/lang
  viewbundle --input-dir config generate dist/lang`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Errors past argument parsing are runtime failures, not usage errors.
	cmd.SilenceUsage = true

	pipeline, err := viewbundle.New(
		viewbundle.WithInputDir(viper.GetString("input-dir")),
		viewbundle.WithMessagesDir(viper.GetString("messages-dir")),
		viewbundle.WithTranslationsDir(viper.GetString("translations-dir")),
		viewbundle.WithAssetsDir(viper.GetString("assets-dir")),
		viewbundle.WithLogger(logging.Default()),
	)
	if err != nil {
		return err
	}

	if err := pipeline.Generate(args[0]); err != nil {
		logging.Default().Error().Err(err).Msg("bundle generation failed")
		return err
	}
	return nil
}
