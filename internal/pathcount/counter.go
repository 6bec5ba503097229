package pathcount

import (
	"context"
	"sync/atomic"

	"github.com/vk/pathcount/internal/ctxlog"
	"github.com/vk/pathcount/internal/grid"
	"golang.org/x/sync/errgroup"
)

// checkInterval is how many candidates are examined between context polls
// and progress updates. Must be a power of two.
const checkInterval = 1 << 16

// Counter enumerates candidate paths and counts the valid ones.
type Counter struct {
	workers  int
	maxMoves int
	examined atomic.Uint64
}

// Option configures a Counter.
type Option func(*Counter)

// WithWorkers splits the candidate range across n goroutines. Values below
// one are treated as one.
func WithWorkers(n int) Option {
	return func(c *Counter) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithMaxMoves lowers the longest move sequence the counter accepts. It
// cannot be raised past MaxEncodableMoves.
func WithMaxMoves(n int) Option {
	return func(c *Counter) {
		if n < 0 {
			n = 0
		}
		if n > MaxEncodableMoves {
			n = MaxEncodableMoves
		}
		c.maxMoves = n
	}
}

// New creates a Counter. Without options it runs on a single goroutine and
// accepts any grid the encoding can represent.
func New(opts ...Option) *Counter {
	c := &Counter{workers: 1, maxMoves: MaxEncodableMoves}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CountPaths counts the valid paths through g on a single goroutine.
func CountPaths(g *grid.Grid) (uint64, error) {
	return New().Count(context.Background(), g)
}

// Examined returns how many candidates the current or most recent Count has
// checked. Safe to call while Count is running.
func (c *Counter) Examined() uint64 {
	return c.examined.Load()
}

// Count returns the number of monotone paths from the top-left to the
// bottom-right cell of g that avoid blocked cells.
func (c *Counter) Count(ctx context.Context, g *grid.Grid) (uint64, error) {
	logger := ctxlog.FromContext(ctx)
	c.examined.Store(0)

	if err := g.Validate(); err != nil {
		return 0, err
	}

	rows, cols := g.Rows(), g.Cols()
	requiredMoves := RequiredMoves(rows, cols)
	if requiredMoves > c.maxMoves {
		return 0, &GridTooLargeError{Rows: rows, Cols: cols, RequiredMoves: requiredMoves, Limit: c.maxMoves}
	}

	if g.Start() == grid.Blocked || g.Goal() == grid.Blocked {
		logger.Debug("Start or goal cell is blocked, no paths exist.")
		return 0, nil
	}

	total := uint64(1) << uint(requiredMoves)
	logger.Debug("Enumerating candidate paths.",
		"rows", rows,
		"cols", cols,
		"required_moves", requiredMoves,
		"candidates", total,
		"workers", c.workers,
	)

	if c.workers <= 1 || total < uint64(c.workers) {
		return c.countRange(ctx, g, 0, total, requiredMoves)
	}
	return c.countParallel(ctx, g, total, requiredMoves)
}

// countParallel splits [0, total) into contiguous chunks, sums each chunk on
// its own goroutine and reduces the partial sums.
func (c *Counter) countParallel(ctx context.Context, g *grid.Grid, total uint64, requiredMoves int) (uint64, error) {
	workers := uint64(c.workers)
	chunk := total / workers
	partial := make([]uint64, workers)

	eg, egCtx := errgroup.WithContext(ctx)
	for w := uint64(0); w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = total
		}
		eg.Go(func() error {
			n, err := c.countRange(egCtx, g, lo, hi, requiredMoves)
			partial[w] = n
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var count uint64
	for _, n := range partial {
		count += n
	}
	return count, nil
}

// countRange checks every candidate in [lo, hi).
func (c *Counter) countRange(ctx context.Context, g *grid.Grid, lo, hi uint64, requiredMoves int) (uint64, error) {
	rows, cols := g.Rows(), g.Cols()
	var count, pending uint64

	for bits := lo; bits < hi; bits++ {
		if (bits-lo)&(checkInterval-1) == 0 {
			c.examined.Add(pending)
			pending = 0
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}
		if IsValidPath(g, bits, requiredMoves, rows, cols) {
			count++
		}
		pending++
	}
	c.examined.Add(pending)

	return count, nil
}
