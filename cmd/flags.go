package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"textaug.dev/pkg/textaug/internal/domain"
	m "textaug.dev/pkg/textaug/internal/model"
)

var errNoInput = errors.New("nothing to augment: pass text arguments or --input")

// configBinding pairs a flag with the config key that backs it.
type configBinding struct {
	flag string
	key  string
}

// tableFlags select the substitution table of char, word and stats.
type tableFlags struct {
	model string
	path  string
	lang  string

	allowSpecial bool
	allowNumeric bool
	upperCase    bool

	upper        bool
	lower        bool
	digits       bool
	special      bool
	specialChars string

	targets []string
}

func addCharTableFlags(cmd *cobra.Command, f *tableFlags) {
	flags := cmd.Flags()
	flags.StringVarP(&f.model, "model", "m", domain.ModelOCR, "character model: ocr, keyboard or random")
	flags.StringVarP(&f.path, "table", "t", "", "substitution table (JSON or YAML); bundled table when empty")
	flags.StringVar(&f.lang, "lang", domain.DefaultLanguage, "language of the bundled table or alphabet (en, ru)")

	flags.BoolVar(&f.allowSpecial, "allow-special", true, "keyboard: keep special characters")
	flags.BoolVar(&f.allowNumeric, "allow-numeric", true, "keyboard: keep digits")
	flags.BoolVar(&f.upperCase, "upper-case", true, "keyboard: add upper-case neighbours")

	flags.BoolVar(&f.upper, "upper", true, "random: include upper-case letters")
	flags.BoolVar(&f.lower, "lower", true, "random: include lower-case letters")
	flags.BoolVar(&f.digits, "digits", true, "random: include digits")
	flags.BoolVar(&f.special, "special", true, "random: include special characters")
	flags.StringVar(&f.specialChars, "special-chars", m.DefaultSpecialChars, "random: special characters to draw from")
}

func addWordTableFlags(cmd *cobra.Command, f *tableFlags) {
	flags := cmd.Flags()
	flags.StringVarP(&f.path, "table", "t", "", "word mapping (JSON or YAML object of word to candidates)")
	flags.StringSliceVar(&f.targets, "targets", nil, "candidates offered for every word (default \"_\")")
}

func (f *tableFlags) args(cmd *cobra.Command, level m.Level) domain.TableArgs {
	var specialChars *string
	if cmd.Flags().Changed("special-chars") {
		specialChars = &f.specialChars
	}

	return domain.TableArgs{
		Level: level,
		Model: strings.ToLower(strings.TrimSpace(f.model)),
		Path:  f.path,
		Lang:  f.lang,
		Keyboard: m.KeyboardOptions{
			AllowSpecial: f.allowSpecial,
			AllowNumeric: f.allowNumeric,
			UpperCase:    f.upperCase,
		},
		Alphabet: m.AlphabetOptions{
			Upper:        f.upper,
			Lower:        f.lower,
			Digits:       f.digits,
			Special:      f.special,
			Language:     f.lang,
			SpecialChars: specialChars,
		},
		Targets: f.targets,
	}
}

// augmentFlags hold the options of char and word that have no config key.
type augmentFlags struct {
	action   string
	swapMode string
	inputs   []string

	threads     int
	count       int
	seed        uint64
	strict      bool
	output      string
	diff        bool
	tui         bool
	metricsFile string
	minChars    int
	stopwords   []string
	exclude     []string

	charMin, charMax int
	charP            float64
	wordMin, wordMax int
	wordP            float64
}

func addAugmentFlags(cmd *cobra.Command, f *augmentFlags, level m.Level) {
	flags := cmd.Flags()

	actionHelp := "insert, substitute, delete or swap (default from the model preset)"
	if level == m.LevelWord {
		actionHelp = "substitute, delete or swap (default delete)"
	}

	flags.StringVarP(&f.action, "action", "a", "", actionHelp)
	flags.StringArrayVarP(&f.inputs, "input", "i", nil, "input file glob, one variant per line (can be repeated, - for stdin)")

	flags.IntVarP(&f.threads, threadsFlagName, "p", viper.GetInt(threadsConfigKey), "number of parallel workers")
	flags.IntVarP(&f.count, countFlagName, "n", viper.GetInt(countConfigKey), "variants per text argument")
	flags.Uint64Var(&f.seed, seedFlagName, 0, "seed for reproducible output")
	flags.BoolVar(&f.strict, strictFlagName, viper.GetBool(strictConfigKey), "reject unknown action and swap mode names")
	flags.StringVarP(&f.output, outputFlagName, "o", viper.GetString(outputConfigKey), "write variants to this file (- for stdout)")
	flags.BoolVar(&f.diff, diffFlagName, viper.GetBool(diffConfigKey), "show a word diff of every variant")
	flags.BoolVar(&f.tui, tuiFlagName, viper.GetBool(tuiConfigKey), "show results in a pager when attached to a terminal")
	flags.StringVar(&f.metricsFile, metricsFileFlagName, viper.GetString(metricsFileConfigKey), "write Prometheus metrics to this file")
	flags.StringSliceVar(&f.stopwords, stopwordsFlagName, viper.GetStringSlice(stopwordsConfigKey), "words that are never changed")
	flags.StringArrayVarP(&f.exclude, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude input files matching glob (can be repeated)")

	flags.IntVar(&f.wordMin, "word-min", 0, "minimum number of words to change")
	flags.IntVar(&f.wordMax, "word-max", 0, "maximum number of words to change")
	flags.Float64Var(&f.wordP, "word-p", 0, "fraction of words to change")

	if level == m.LevelChar {
		flags.StringVar(&f.swapMode, "swap-mode", "", "adjacent, middle or random")
		flags.IntVar(&f.minChars, minCharsFlagName, 0, "skip words shorter than this (default from the model preset)")
		flags.IntVar(&f.charMin, "char-min", 0, "minimum number of characters to change per word")
		flags.IntVar(&f.charMax, "char-max", 0, "maximum number of characters to change per word")
		flags.Float64Var(&f.charP, "char-p", 0, "fraction of characters to change per word")
	}
}

func augmentBindings(level m.Level) []configBinding {
	bindings := []configBinding{
		{threadsFlagName, threadsConfigKey},
		{countFlagName, countConfigKey},
		{seedFlagName, seedConfigKey},
		{strictFlagName, strictConfigKey},
		{outputFlagName, outputConfigKey},
		{diffFlagName, diffConfigKey},
		{tuiFlagName, tuiConfigKey},
		{metricsFileFlagName, metricsFileConfigKey},
		{stopwordsFlagName, stopwordsConfigKey},
		{excludeFlagName, excludeConfigKey},
		{"word-min", wordCountConfigPrefix + ".min"},
		{"word-max", wordCountConfigPrefix + ".max"},
		{"word-p", wordCountConfigPrefix + ".p"},
	}

	if level == m.LevelChar {
		bindings = append(bindings,
			configBinding{minCharsFlagName, minCharsConfigKey},
			configBinding{"char-min", charCountConfigPrefix + ".min"},
			configBinding{"char-max", charCountConfigPrefix + ".max"},
			configBinding{"char-p", charCountConfigPrefix + ".p"},
		)
	}

	return bindings
}

// bindAugmentFlags binds the flags of the running command. char and word share
// config keys, so binding happens when a command runs rather than when it is built.
func bindAugmentFlags(level m.Level) func(cmd *cobra.Command, _ []string) {
	return func(cmd *cobra.Command, _ []string) {
		for _, binding := range augmentBindings(level) {
			bindFlagToConfig(cmd.Flags().Lookup(binding.flag), binding.key)
		}
	}
}

func (f *augmentFlags) args(texts []string, level m.Level) (domain.AugmentArgs, error) {
	if len(texts) == 0 && len(f.inputs) == 0 {
		return domain.AugmentArgs{}, errNoInput
	}

	threads := viper.GetInt(threadsConfigKey)
	if threads < 1 {
		return domain.AugmentArgs{}, fmt.Errorf("--%s must be at least 1, got %d", threadsFlagName, threads)
	}

	args := domain.AugmentArgs{
		Action:      f.action,
		SwapMode:    f.swapMode,
		Strict:      viper.GetBool(strictConfigKey),
		WordPolicy:  policyFromConfig(wordCountConfigPrefix),
		Stopwords:   viper.GetStringSlice(stopwordsConfigKey),
		Texts:       texts,
		N:           viper.GetInt(countConfigKey),
		Inputs:      f.inputs,
		Exclude:     viper.GetStringSlice(excludeConfigKey),
		Threads:     threads,
		Seed:        optionalSeed(),
		Output:      viper.GetString(outputConfigKey),
		Diff:        viper.GetBool(diffConfigKey),
		Interactive: viper.GetBool(tuiConfigKey),
		MetricsFile: viper.GetString(metricsFileConfigKey),
	}

	if level == m.LevelChar {
		args.CharPolicy = policyFromConfig(charCountConfigPrefix)
		args.MinChars = optionalInt(minCharsConfigKey)
	}

	return args, nil
}
