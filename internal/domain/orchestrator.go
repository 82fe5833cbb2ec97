package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	m "textaug.dev/pkg/textaug/internal/model"
)

// ErrWorkerFailed wraps a failure inside a batch worker. The whole batch is aborted.
var ErrWorkerFailed = errors.New("augmentation worker failed")

// Observer receives the mutation count of every augmented document.
// It is called concurrently from batch workers.
type Observer interface {
	Observe(level m.Level, action m.Action, changed int)
}

// Orchestrator runs an Augmenter over one string many times or over a list of
// strings, sequentially or with a bounded number of goroutines.
type Orchestrator interface {
	AugmentOnce(doc *m.Document, rng *rand.Rand) string
	AugmentString(ctx context.Context, text string, n, threads int) ([]string, error)
	AugmentList(ctx context.Context, texts []string, threads int) ([]string, error)
}

// Option configures an Orchestrator.
type Option func(*orchestrator)

// WithSeed makes every run reproducible: chunk i draws from PCG(seed, i).
func WithSeed(seed uint64) Option {
	return func(o *orchestrator) {
		o.seed = &seed
	}
}

// WithObserver registers an observer for per-document mutation counts.
func WithObserver(observer Observer) Option {
	return func(o *orchestrator) {
		o.observer = observer
	}
}

type orchestrator struct {
	augmenter Augmenter
	seed      *uint64
	observer  Observer
}

// NewOrchestrator constructs an Orchestrator around augmenter.
func NewOrchestrator(augmenter Augmenter, opts ...Option) Orchestrator {
	o := &orchestrator{augmenter: augmenter}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func (o *orchestrator) AugmentOnce(doc *m.Document, rng *rand.Rand) string {
	changed := o.augmenter.Augment(doc, rng)
	if o.observer != nil {
		o.observer.Observe(o.augmenter.Level(), o.augmenter.Action(), changed)
	}

	return doc.Reconstruct()
}

// AugmentString produces n variants of text. The string is tokenized once per
// worker and the document is reset between iterations.
func (o *orchestrator) AugmentString(ctx context.Context, text string, n, threads int) ([]string, error) {
	counts := SplitCounts(n, threads)
	if len(counts) == 0 {
		return []string{}, nil
	}

	slog.Debug("Augmenting string", "n", n, "workers", len(counts))

	chunks := make([][]string, len(counts))

	err := o.run(ctx, len(counts), func(ctx context.Context, chunk int, rng *rand.Rand) error {
		results, err := o.repeat(ctx, text, counts[chunk], rng)
		chunks[chunk] = results

		return err
	})
	if err != nil {
		return nil, err
	}

	return flatten(chunks, n), nil
}

// AugmentList produces one variant per element of texts, in input order.
func (o *orchestrator) AugmentList(ctx context.Context, texts []string, threads int) ([]string, error) {
	ranges := SplitRanges(len(texts), threads)
	if len(ranges) == 0 {
		return []string{}, nil
	}

	slog.Debug("Augmenting list", "size", len(texts), "workers", len(ranges))

	chunks := make([][]string, len(ranges))

	err := o.run(ctx, len(ranges), func(ctx context.Context, chunk int, rng *rand.Rand) error {
		results, err := o.each(ctx, texts[ranges[chunk].Start:ranges[chunk].End], rng)
		chunks[chunk] = results

		return err
	})
	if err != nil {
		return nil, err
	}

	return flatten(chunks, len(texts)), nil
}

type chunkFunc func(ctx context.Context, chunk int, rng *rand.Rand) error

// run executes work for every chunk. A single chunk runs on the calling
// goroutine; more chunks get one goroutine each.
func (o *orchestrator) run(ctx context.Context, chunks int, work chunkFunc) error {
	if chunks == 1 {
		return o.guard(ctx, 0, work)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(chunks)

	for chunk := range chunks {
		group.Go(func() error {
			return o.guard(groupCtx, chunk, work)
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Augmentation batch failed", "error", err)
		return err
	}

	return nil
}

func (o *orchestrator) guard(ctx context.Context, chunk int, work chunkFunc) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: chunk %d: %v", ErrWorkerFailed, chunk, recovered)
		}
	}()

	return work(ctx, chunk, o.newRand(chunk))
}

func (o *orchestrator) repeat(ctx context.Context, text string, count int, rng *rand.Rand) ([]string, error) {
	results := make([]string, 0, count)
	doc := m.NewDocument(text)

	for i := range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if i > 0 {
			doc.ResetAll()
		}

		results = append(results, o.AugmentOnce(doc, rng))
	}

	return results, nil
}

func (o *orchestrator) each(ctx context.Context, texts []string, rng *rand.Rand) ([]string, error) {
	results := make([]string, 0, len(texts))

	for _, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		results = append(results, o.AugmentOnce(m.NewDocument(text), rng))
	}

	return results, nil
}

func (o *orchestrator) newRand(chunk int) *rand.Rand {
	if o.seed != nil {
		return rand.New(rand.NewPCG(*o.seed, uint64(chunk)))
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func flatten(chunks [][]string, size int) []string {
	results := make([]string, 0, size)
	for _, chunk := range chunks {
		results = append(results, chunk...)
	}

	return results
}

// Range is a half-open interval [Start, End) of list indexes.
type Range struct {
	Start int
	End   int
}

// SplitCounts partitions n units of work into at most threads contiguous
// chunks of ceil(n/threads), the last chunk taking what remains. Empty chunks
// are never produced, so fewer chunks than threads may be returned.
func SplitCounts(n, threads int) []int {
	if n <= 0 {
		return nil
	}

	threads = max(1, min(threads, n))
	size := (n + threads - 1) / threads

	counts := make([]int, 0, threads)
	remaining := n

	for i := 0; i < threads && remaining > 0; i++ {
		count := min(size, remaining)
		if i == threads-1 {
			count = remaining
		}

		counts = append(counts, count)
		remaining -= count
	}

	return counts
}

// SplitRanges partitions [0, size) into non-overlapping ranges as SplitCounts does.
func SplitRanges(size, threads int) []Range {
	counts := SplitCounts(size, threads)
	ranges := make([]Range, 0, len(counts))
	start := 0

	for _, count := range counts {
		ranges = append(ranges, Range{Start: start, End: start + count})
		start += count
	}

	return ranges
}
