package cmd

import (
	"github.com/spf13/cobra"

	m "textaug.dev/pkg/textaug/internal/model"
)

const wordLongDescription = `Augment text with word-level noise: substitute words from a mapping or
a target list, delete words, or swap neighbouring words.

` + inputHelp

// wordCmd represents the word command.
var wordCmd = newWordCmd()

func newWordCmd() *cobra.Command {
	tables := &tableFlags{}
	options := &augmentFlags{}

	cmd := &cobra.Command{
		Use:     "word [text...]",
		Short:   "Apply word-level augmentation",
		Long:    wordLongDescription,
		Example: "  textaug word -a swap -n 3 \"one two three four\"\n  textaug word -a substitute -t synonyms.yaml -i notes.txt",
		PreRun:  bindAugmentFlags(m.LevelWord),
		RunE: func(cmd *cobra.Command, args []string) error {
			augmentArgs, err := options.args(args, m.LevelWord)
			if err != nil {
				return err
			}

			augmentArgs.TableArgs = tables.args(cmd, m.LevelWord)

			return workflow.Augment(cmd.Context(), augmentArgs)
		},
	}

	addWordTableFlags(cmd, tables)
	addAugmentFlags(cmd, options, m.LevelWord)

	return cmd
}

func init() {
	rootCmd.AddCommand(wordCmd)
}
