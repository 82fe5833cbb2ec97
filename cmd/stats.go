package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textaug.dev/pkg/textaug/internal/domain"
	m "textaug.dev/pkg/textaug/internal/model"
)

// statsCmd represents the stats command.
var statsCmd = newStatsCmd()

func newStatsCmd() *cobra.Command {
	tables := &tableFlags{}

	var level string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Describe a substitution table",
		Long: `Print the number of keys and candidates of the table a char or word
run would use, without augmenting anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseLevel(level)
			if err != nil {
				return err
			}

			return workflow.Stats(cmd.Context(), domain.StatsArgs{
				TableArgs: tables.args(cmd, parsed),
			})
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", string(m.LevelChar), "table level: char or word")
	addCharTableFlags(cmd, tables)
	cmd.Flags().StringSliceVar(&tables.targets, "targets", nil, "word: candidates offered for every word")

	return cmd
}

func parseLevel(value string) (m.Level, error) {
	switch level := m.Level(strings.ToLower(strings.TrimSpace(value))); level {
	case m.LevelChar, m.LevelWord:
		return level, nil
	default:
		return "", fmt.Errorf("unknown level %q: expected char or word", value)
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
