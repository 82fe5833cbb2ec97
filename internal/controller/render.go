package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	m "textaug.dev/pkg/textaug/internal/model"
)

func renderTableStats(name string, stats m.TableStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Table", "Keys", "Candidates", "Min/Key", "Max/Key"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	keys := strconv.Itoa(stats.Keys)
	if stats.AnyKey {
		keys = "any"
	}

	table.Append([]string{
		name,
		keys,
		strconv.Itoa(stats.Candidates),
		strconv.Itoa(stats.MinPerKey),
		strconv.Itoa(stats.MaxPerKey),
	})

	table.Render()

	return tableBuffer.String()
}

func renderSummary(summary Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outputs", "Changed", "Unchanged", "Elapsed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
	})

	table.Append([]string{
		strconv.Itoa(summary.Outputs),
		strconv.Itoa(summary.Changed),
		strconv.Itoa(summary.Outputs - summary.Changed),
		summary.Elapsed.Round(time.Microsecond).String(),
	})

	table.Render()

	return tableBuffer.String()
}

func renderRunInfo(info RunInfo) string {
	seed := "random"
	if info.Seed != nil {
		seed = strconv.FormatUint(*info.Seed, 10)
	}

	model := info.Model
	if model == "" {
		model = "-"
	}

	return fmt.Sprintf("Augmenting %d input(s): %s %s (model %s) with %d worker(s), seed %s\n",
		info.Inputs, info.Level, info.Action, model, info.Threads, seed)
}

// renderDiff returns a unified diff of one variant, splitting on words so a
// single-line change stays readable.
func renderDiff(variant Variant) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(wordLines(variant.Original)),
		B:        difflib.SplitLines(wordLines(variant.Augmented)),
		FromFile: variant.Source,
		ToFile:   variant.Source + " (augmented)",
		Context:  2,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", variant.Source, err)
	}

	return text, nil
}

func wordLines(text string) string {
	return strings.Join(strings.Fields(text), "\n") + "\n"
}

func renderVariants(variants []Variant, diff bool) (string, error) {
	var b strings.Builder

	for _, variant := range variants {
		if !diff {
			b.WriteString(variant.Augmented)
			b.WriteByte('\n')

			continue
		}

		if !variant.Changed() {
			fmt.Fprintf(&b, "%s: unchanged\n", variant.Source)
			continue
		}

		text, err := renderDiff(variant)
		if err != nil {
			return "", err
		}

		if text == "" {
			// Only whitespace moved.
			fmt.Fprintf(&b, "%s: whitespace changed\n", variant.Source)
			continue
		}

		b.WriteString(text)
	}

	return b.String(), nil
}
