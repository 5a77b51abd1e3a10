package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lcereceda/accessnav/internal/output"
	"github.com/lcereceda/accessnav/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "accessnav",
	Short: "Navigate UI snapshots by voice, keyboard, and spatial audio",
	Long: "A CLI that makes interactive UI elements navigable for users who cannot\n" +
		"see or point: voice commands and keyboard keys move a cursor through the\n" +
		"element tree, and every step is answered with speech and positional audio cues.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// logger is the process-wide logger, configured by the --verbose flag.
var logger = zap.NewNop()

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty

		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		logger = newLogger(verbose)
		return nil
	}
}

// newLogger builds a console logger on stderr so stdout stays clean for
// command output.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
