package domain_test

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "textaug.dev/pkg/textaug/internal/adapter/mocks"
	"textaug.dev/pkg/textaug/internal/domain"
	domainmocks "textaug.dev/pkg/textaug/internal/domain/mocks"
	m "textaug.dev/pkg/textaug/internal/model"
)

// upperFirst upper-cases the first token of every document it sees.
func upperFirst(doc *m.Document, _ *rand.Rand) int {
	token := doc.Token(0)
	if token == nil {
		return 0
	}

	doc.ApplyReplacement(0, strings.ToUpper(token.Original().Text), token.Original().Kind)

	return 1
}

func TestSplitCounts(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		threads int
		want    []int
	}{
		{"even", 9, 3, []int{3, 3, 3}},
		{"last absorbs remainder", 10, 3, []int{4, 4, 2}},
		{"fewer chunks than threads", 9, 4, []int{3, 3, 3}},
		{"one per thread", 10, 4, []int{3, 3, 3, 1}},
		{"more threads than work", 3, 8, []int{1, 1, 1}},
		{"zero threads", 5, 0, []int{5}},
		{"negative threads", 7, -2, []int{7}},
		{"no work", 0, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.SplitCounts(tt.n, tt.threads)
			assert.Equal(t, tt.want, got)

			total := 0
			for _, count := range got {
				assert.Positive(t, count)
				total += count
			}

			assert.Equal(t, max(tt.n, 0), total)
		})
	}
}

func TestSplitRanges(t *testing.T) {
	assert.Equal(t, []domain.Range{{0, 4}, {4, 8}, {8, 10}}, domain.SplitRanges(10, 3))
	assert.Equal(t, []domain.Range{{0, 2}}, domain.SplitRanges(2, 1))
	assert.Empty(t, domain.SplitRanges(0, 3))
}

func TestOrchestrator_AugmentString(t *testing.T) {
	t.Run("produces n variants", func(t *testing.T) {
		augmenter := domainmocks.NewMockAugmenter(t)
		augmenter.EXPECT().Augment(mock.Anything, mock.Anything).RunAndReturn(upperFirst).Times(5)

		orchestrator := domain.NewOrchestrator(augmenter)

		outputs, err := orchestrator.AugmentString(context.Background(), "hello world", 5, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"HELLO world", "HELLO world", "HELLO world", "HELLO world", "HELLO world"}, outputs)
	})

	t.Run("document is reset between iterations", func(t *testing.T) {
		augmenter := domainmocks.NewMockAugmenter(t)
		augmenter.EXPECT().Augment(mock.Anything, mock.Anything).RunAndReturn(func(doc *m.Document, _ *rand.Rand) int {
			assert.Equal(t, "abc", doc.Reconstruct())
			doc.ApplyReplacement(0, "x", m.TokenWord)

			return 1
		}).Times(3)

		outputs, err := domain.NewOrchestrator(augmenter).AugmentString(context.Background(), "abc", 3, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "x", "x"}, outputs)
	})

	t.Run("non-positive n", func(t *testing.T) {
		orchestrator := domain.NewOrchestrator(domainmocks.NewMockAugmenter(t))

		outputs, err := orchestrator.AugmentString(context.Background(), "abc", 0, 4)
		require.NoError(t, err)
		assert.NotNil(t, outputs)
		assert.Empty(t, outputs)
	})

	t.Run("observer sees every document", func(t *testing.T) {
		augmenter := domainmocks.NewMockAugmenter(t)
		augmenter.EXPECT().Augment(mock.Anything, mock.Anything).RunAndReturn(upperFirst)
		augmenter.EXPECT().Level().Return(m.LevelChar)
		augmenter.EXPECT().Action().Return(m.ActionSubstitute)

		metrics := adaptermocks.NewMockMetrics(t)
		metrics.EXPECT().Observe(m.LevelChar, m.ActionSubstitute, 1).Times(4)

		outputs, err := domain.NewOrchestrator(augmenter, domain.WithObserver(metrics)).
			AugmentString(context.Background(), "a", 4, 3)
		require.NoError(t, err)
		assert.Len(t, outputs, 4)
	})
}

func TestOrchestrator_AugmentList(t *testing.T) {
	t.Run("keeps input order", func(t *testing.T) {
		augmenter := domainmocks.NewMockAugmenter(t)
		augmenter.EXPECT().Augment(mock.Anything, mock.Anything).RunAndReturn(upperFirst)

		texts := []string{"a 1", "b 2", "c 3", "d 4", "e 5", "", "f 6"}

		outputs, err := domain.NewOrchestrator(augmenter).AugmentList(context.Background(), texts, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"A 1", "B 2", "C 3", "D 4", "E 5", "", "F 6"}, outputs)
	})

	t.Run("empty list", func(t *testing.T) {
		outputs, err := domain.NewOrchestrator(domainmocks.NewMockAugmenter(t)).
			AugmentList(context.Background(), nil, 2)
		require.NoError(t, err)
		assert.NotNil(t, outputs)
		assert.Empty(t, outputs)
	})
}

func TestOrchestrator_Failures(t *testing.T) {
	panicking := func(*m.Document, *rand.Rand) int {
		panic("boom")
	}

	for _, threads := range []int{1, 4} {
		t.Run("panic becomes ErrWorkerFailed", func(t *testing.T) {
			augmenter := domainmocks.NewMockAugmenter(t)
			augmenter.EXPECT().Augment(mock.Anything, mock.Anything).RunAndReturn(panicking)

			outputs, err := domain.NewOrchestrator(augmenter).
				AugmentList(context.Background(), []string{"a", "b", "c", "d"}, threads)
			require.ErrorIs(t, err, domain.ErrWorkerFailed)
			assert.Contains(t, err.Error(), "boom")
			assert.Nil(t, outputs)
		})
	}

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		orchestrator := domain.NewOrchestrator(domainmocks.NewMockAugmenter(t))

		_, err := orchestrator.AugmentString(ctx, "abc", 10, 1)
		require.ErrorIs(t, err, context.Canceled)

		_, err = orchestrator.AugmentList(ctx, []string{"a", "b", "c"}, 3)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestOrchestrator_Seed(t *testing.T) {
	augmenter, err := domain.NewCharAugmenter(domain.RandomCharPreset(
		m.AlphabetOptions{Lower: true, Upper: true, Language: "en"}, m.ActionSwap, m.SwapRandom,
	))
	require.NoError(t, err)

	text := "The quick brown foxes jumped over the lazy sleeping dogs"

	run := func(seed uint64) []string {
		outputs, err := domain.NewOrchestrator(augmenter, domain.WithSeed(seed)).
			AugmentString(context.Background(), text, 20, 3)
		require.NoError(t, err)

		return outputs
	}

	first := run(42)
	assert.Equal(t, first, run(42))
	assert.NotEqual(t, first, run(43))

	for _, output := range first {
		assert.Len(t, []rune(output), len([]rune(text)), "swapping keeps the length")
	}
}

func TestOrchestrator_AugmentOnce(t *testing.T) {
	augmenter := domainmocks.NewMockAugmenter(t)
	augmenter.EXPECT().Augment(mock.Anything, mock.Anything).RunAndReturn(upperFirst)

	doc := m.NewDocument("once more")
	got := domain.NewOrchestrator(augmenter).AugmentOnce(doc, rand.New(rand.NewPCG(1, 2)))

	assert.Equal(t, "ONCE more", got)
	assert.Equal(t, "once more", doc.Original())
}
