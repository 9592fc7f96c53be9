package pool

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/seedbed-io/seedbed/internal/partition"
	"github.com/seedbed-io/seedbed/internal/progress"
)

// IOClass classifies a phase by the resource its work blocks on.
type IOClass int

const (
	// ClassFilesystem marks phases bound on local file I/O.
	ClassFilesystem IOClass = iota
	// ClassNetwork marks phases bound on outbound network I/O.
	ClassNetwork
)

// Caps on derived worker counts per I/O class.
const (
	maxFilesystemWorkers = 32
	maxNetworkWorkers    = 20
)

// Config sizes the pool for one phase.
type Config struct {
	// MaxWorkers overrides the derived worker count when positive.
	MaxWorkers int

	// Class selects the sizing policy when MaxWorkers is zero.
	Class IOClass
}

// Workers resolves the worker count for this configuration.
func (c Config) Workers() int {
	if c.MaxWorkers > 0 {
		return c.MaxWorkers
	}
	procs := runtime.GOMAXPROCS(0)
	switch c.Class {
	case ClassNetwork:
		return min(2*procs, maxNetworkWorkers)
	default:
		return min(4*procs, maxFilesystemWorkers)
	}
}

// Result is the typed outcome of one phase: the number of units completed
// and every per-unit failure that was contained along the way.
type Result struct {
	Written int
	Errors  []partition.UnitError
}

// ExecFunc executes one partition and reports its completed count and unit
// errors. Implementations must not panic across partitions; a panic is
// recovered at the submission boundary and recorded against the partition.
type ExecFunc func(ctx context.Context, p partition.Partition) (int, []partition.UnitError)

// Options carries the phase's shared collaborators.
type Options struct {
	// Counter receives completed counts. Required by callers that report
	// progress; optional here.
	Counter *progress.Counter

	// Logger receives per-partition failure records.
	// Default: slog.Default()
	Logger *slog.Logger

	// Progress enables a progress bar over the phase's total unit count.
	Progress bool
}

// Run dispatches every partition to a bounded pool of workers and blocks
// until all submissions have returned. One partition's failure, error or
// panic alike, never cancels its siblings; the phase reports partial success
// through the returned Result. The pool is scoped to this call and torn
// down before it returns.
func Run(ctx context.Context, phase string, cfg Config, parts []partition.Partition, exec ExecFunc, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("phase", phase))

	if len(parts) == 0 {
		return Result{}
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		total := 0
		for _, p := range parts {
			total += p.Size()
		}
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(phase),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	workers := cfg.Workers()
	logger.Debug("starting pool", slog.Int("workers", workers), slog.Int("partitions", len(parts)))

	jobs := make(chan partition.Partition)
	results := make(chan partResult, len(parts))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				results <- runPartition(ctx, p, exec)
			}
		}()
	}

	// Feed partitions; stop submitting once the context is cancelled, but
	// let already-submitted partitions run to completion.
	go func() {
		defer close(jobs)
		for _, p := range parts {
			select {
			case jobs <- p:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Drain as results arrive so the counter and the bar advance while
	// workers are still running, not in a burst at the end.
	var res Result
	for r := range results {
		res.Written += r.written
		res.Errors = append(res.Errors, r.errs...)
		if opts.Counter != nil {
			opts.Counter.Add(int64(r.written))
		}
		if bar != nil {
			bar.Add(r.written + len(r.errs))
		}
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	for _, ue := range res.Errors {
		logger.Warn("unit failed",
			slog.String("partition", ue.Partition),
			slog.String("dest", ue.Dest),
			slog.String("error", ue.Err.Error()))
	}

	logger.Info("phase complete",
		slog.Int("written", res.Written),
		slog.Int("failed", len(res.Errors)))

	return res
}

// partResult is the outcome of a single partition submission.
type partResult struct {
	written int
	errs    []partition.UnitError
}

// runPartition executes one submission, containing panics at this boundary
// so a misbehaving partition is recorded rather than unwound into siblings.
func runPartition(ctx context.Context, p partition.Partition, exec ExecFunc) (res partResult) {
	defer func() {
		if r := recover(); r != nil {
			res.errs = append(res.errs, partition.UnitError{
				Partition: p.Name,
				Err:       fmt.Errorf("panic: %v", r),
			})
		}
	}()

	res.written, res.errs = exec(ctx, p)
	return res
}
