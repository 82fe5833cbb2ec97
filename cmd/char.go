package cmd

import (
	"github.com/spf13/cobra"

	m "textaug.dev/pkg/textaug/internal/model"
)

const charLongDescription = `Augment text with character-level noise.

Models:
  ocr        swap characters that OCR engines confuse (0/o, 1/l, ...)
  keyboard   typos from neighbouring keys
  random     characters drawn from an alphabet

` + inputHelp

// charCmd represents the char command.
var charCmd = newCharCmd()

func newCharCmd() *cobra.Command {
	tables := &tableFlags{}
	options := &augmentFlags{}

	cmd := &cobra.Command{
		Use:     "char [text...]",
		Short:   "Apply character-level augmentation",
		Long:    charLongDescription,
		Example: "  textaug char -m keyboard -n 5 \"The quick brown fox\"\n  textaug char -m random -a swap --swap-mode middle -i 'corpus/**/*.txt' -o noisy.txt",
		PreRun:  bindAugmentFlags(m.LevelChar),
		RunE: func(cmd *cobra.Command, args []string) error {
			augmentArgs, err := options.args(args, m.LevelChar)
			if err != nil {
				return err
			}

			augmentArgs.TableArgs = tables.args(cmd, m.LevelChar)

			return workflow.Augment(cmd.Context(), augmentArgs)
		},
	}

	addCharTableFlags(cmd, tables)
	addAugmentFlags(cmd, options, m.LevelChar)

	return cmd
}

func init() {
	rootCmd.AddCommand(charCmd)
}
