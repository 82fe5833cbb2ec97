// Package cmd provides the root command and CLI setup for textaug.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"textaug.dev/pkg/textaug/internal/adapter"
	"textaug.dev/pkg/textaug/internal/controller"
	"textaug.dev/pkg/textaug/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var tableStore adapter.TableStore
var metrics adapter.Metrics
var workflow domain.Workflow
var ui controller.UI

// verboseFlag switches logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file path.
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	tableStore = adapter.NewFileTableStore()
	metrics = adapter.NewPrometheusMetrics()
	workflow = domain.NewWorkflow(
		fsAdapter,
		tableStore,
		metrics,
		ui,
	)
}

const inputHelp = `Inputs:
  text arguments       each text is augmented --count times
  -i 'data/**/*.txt'   every line of every matching file is augmented once
  -i -                 lines are read from standard input`

const rootLongDescription = `Textaug generates noisy variants of text for training and evaluating
NLP models: OCR confusions, keyboard typos, random character edits and
word-level substitutions, deletions and swaps.

` + inputHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textaug",
		Short: "Text augmentation tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from config, "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
