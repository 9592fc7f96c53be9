package writer

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/seedbed-io/seedbed/internal/partition"
)

// Options configures a Writer.
type Options struct {
	// Timestamps enables stamping each file with a randomized
	// modification/access time. Stamping is markedly more expensive than
	// the write itself, so high-throughput phases leave it off.
	Timestamps bool

	// Window bounds how far into the past timestamps are placed.
	// Default: 365 days.
	Window time.Duration

	// Parents enables creating missing parent directories.
	Parents bool

	// Logger receives per-destination failure records.
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Timestamps: true,
		Window:     365 * 24 * time.Hour,
		Parents:    true,
	}
}

// Writer executes filesystem partitions under a fixed target root.
type Writer struct {
	root   string
	opts   Options
	logger *slog.Logger
}

// New creates a Writer rooted at root.
func New(root string, opts Options) *Writer {
	if opts.Window <= 0 {
		opts.Window = 365 * 24 * time.Hour
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		root:   root,
		opts:   opts,
		logger: logger.With(slog.String("component", "writer")),
	}
}

// Write executes every task in the partition and returns the count of
// destinations successfully written. Individual failures are logged with
// their destination identity and returned as unit errors; they do not stop
// the rest of the partition.
func (w *Writer) Write(p partition.Partition) (int, []partition.UnitError) {
	var written int
	var errs []partition.UnitError

	for _, task := range p.Tasks {
		dest := filepath.Join(w.root, task.Dest)

		if err := w.writeOne(dest, task.Payload); err != nil {
			w.logger.Warn("write failed",
				slog.String("partition", p.Name),
				slog.String("dest", task.Dest),
				slog.String("error", err.Error()))
			errs = append(errs, partition.UnitError{Partition: p.Name, Dest: task.Dest, Err: err})
			continue
		}
		written++
	}

	return written, errs
}

func (w *Writer) writeOne(dest string, payload []byte) error {
	if w.opts.Parents {
		// MkdirAll is idempotent; pre-existing directories are not an error.
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(dest, payload, 0o644); err != nil {
		return err
	}

	if w.opts.Timestamps {
		w.stamp(dest)
	}

	return nil
}

// stamp sets a randomized modification time within the window. The file is
// already on disk when stamping runs, so a failure here is logged but does
// not turn the write into a failed unit; the created count must match the
// files actually present.
func (w *Writer) stamp(dest string) {
	stamp := time.Now().Add(-time.Duration(rand.Int64N(int64(w.opts.Window))))
	if err := os.Chtimes(dest, stamp, stamp); err != nil {
		w.logger.Warn("timestamp failed",
			slog.String("dest", dest),
			slog.String("error", err.Error()))
	}
}
