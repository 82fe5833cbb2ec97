package controller

import (
	"strings"
	"testing"
	"time"

	m "textaug.dev/pkg/textaug/internal/model"
)

func TestRenderVariants(t *testing.T) {
	variants := []Variant{
		{Source: "arg 1", Original: "hello world", Augmented: "hello w0rld"},
		{Source: "arg 2", Original: "same", Augmented: "same"},
		{Source: "arg 3", Original: "a  b", Augmented: "a b"},
	}

	t.Run("plain", func(t *testing.T) {
		got, err := renderVariants(variants, false)
		if err != nil {
			t.Fatalf("renderVariants() error = %v", err)
		}

		if got != "hello w0rld\nsame\na b\n" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("diff", func(t *testing.T) {
		got, err := renderVariants(variants, true)
		if err != nil {
			t.Fatalf("renderVariants() error = %v", err)
		}

		for _, want := range []string{
			"--- arg 1\n",
			"+++ arg 1 (augmented)\n",
			"-world\n",
			"+w0rld\n",
			"arg 2: unchanged\n",
			"arg 3: whitespace changed\n",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q, got:\n%s", want, got)
			}
		}
	})
}

func TestRenderTableStats(t *testing.T) {
	got := renderTableStats("builtin:ocr_en.json", m.TableStats{Keys: 12, Candidates: 30, MinPerKey: 1, MaxPerKey: 5})

	for _, want := range []string{"TABLE", "KEYS", "builtin:ocr_en.json", "12", "30"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q, got:\n%s", want, got)
		}
	}

	anyKey := renderTableStats("alphabet en", m.TableStats{Candidates: 26, MinPerKey: 26, MaxPerKey: 26, AnyKey: true})
	if !strings.Contains(anyKey, "any") {
		t.Errorf("expected any-key marker, got:\n%s", anyKey)
	}
}

func TestRenderSummary(t *testing.T) {
	got := renderSummary(Summary{Outputs: 10, Changed: 7, Elapsed: 1500 * time.Microsecond})

	for _, want := range []string{"OUTPUTS", "UNCHANGED", "10", "7", "3", "1.5ms"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q, got:\n%s", want, got)
		}
	}
}

func TestRenderRunInfo(t *testing.T) {
	seed := uint64(42)

	got := renderRunInfo(RunInfo{Level: m.LevelChar, Action: m.ActionSwap, Model: "random", Inputs: 2, Threads: 4, Seed: &seed})
	if got != "Augmenting 2 input(s): char swap (model random) with 4 worker(s), seed 42\n" {
		t.Errorf("unexpected run info %q", got)
	}

	got = renderRunInfo(RunInfo{Level: m.LevelWord, Action: m.ActionDelete, Inputs: 1, Threads: 1})
	if !strings.Contains(got, "(model -)") || !strings.Contains(got, "seed random") {
		t.Errorf("unexpected run info %q", got)
	}
}
