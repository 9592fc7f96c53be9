package populate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/seedbed-io/seedbed/internal/catalog"
	"github.com/seedbed-io/seedbed/internal/fetcher"
	"github.com/seedbed-io/seedbed/internal/partition"
	"github.com/seedbed-io/seedbed/internal/pool"
	"github.com/seedbed-io/seedbed/internal/progress"
	"github.com/seedbed-io/seedbed/internal/writer"
)

// Counts holds the per-phase volume ranges. Each partition draws from its
// range independently, so output volume varies run to run.
type Counts struct {
	Documents partition.Range // per user, Documents
	Work      partition.Range // per user, Documents/Work
	Personal  partition.Range // per user, Documents/Personal
	Desktop   partition.Range // per user, Desktop

	Pictures partition.Range // per image user, Pictures
	Vacation partition.Range // per image user, Pictures/Vacation
	Family   partition.Range // per image user, Pictures/Family

	Reports      partition.Range // per department, Reports
	Meetings     partition.Range // per department, Meetings
	ProjectFiles partition.Range // per department, Projects

	LogFiles   partition.Range // per log type
	LogEntries partition.Range // per log file
	TempFiles  partition.Range // run total
	CacheFiles partition.Range // run total

	Archives       partition.Range // run total
	ArchiveMembers partition.Range // per archive
}

// DefaultCounts returns the standard volume ranges.
func DefaultCounts() Counts {
	return Counts{
		Documents: partition.Range{Min: 50, Max: 100},
		Work:      partition.Range{Min: 30, Max: 60},
		Personal:  partition.Range{Min: 20, Max: 40},
		Desktop:   partition.Range{Min: 20, Max: 30},

		Pictures: partition.Range{Min: 5, Max: 10},
		Vacation: partition.Range{Min: 3, Max: 8},
		Family:   partition.Range{Min: 2, Max: 6},

		Reports:      partition.Range{Min: 20, Max: 40},
		Meetings:     partition.Range{Min: 15, Max: 30},
		ProjectFiles: partition.Range{Min: 10, Max: 20},

		LogFiles:   partition.Range{Min: 5, Max: 15},
		LogEntries: partition.Range{Min: 200, Max: 1000},
		TempFiles:  partition.Range{Min: 100, Max: 200},
		CacheFiles: partition.Range{Min: 50, Max: 100},

		Archives:       partition.Range{Min: 10, Max: 20},
		ArchiveMembers: partition.Range{Min: 5, Max: 15},
	}
}

// Options configures a Populator. Zero values select the standard catalog
// data and volumes; pass empty non-nil slices to disable an axis outright.
type Options struct {
	// Users are the simulated user profiles.
	// Default: catalog.Users
	Users []string

	// Departments are the simulated department shares.
	// Default: catalog.Departments
	Departments []string

	// Projects are the simulated project directories.
	// Default: catalog.Projects
	Projects []string

	// LogTypes are the simulated log categories.
	// Default: catalog.LogTypes
	LogTypes []string

	// ImageURLs are the image-service endpoints downloads are drawn from.
	// Default: catalog.ImageURLs(50)
	ImageURLs []string

	// DeletedSets maps deleted-file categories to the filenames created and
	// removed during the deleted phase.
	// Default: catalog.DeletedSets
	DeletedSets map[string][]string

	// ImageUsers is the number of leading users that receive image
	// downloads. Default: 10.
	ImageUsers int

	// Counts are the per-phase volume ranges.
	// Default: DefaultCounts()
	Counts Counts

	// BatchSize is the slice size for flat-count phases. Default: 50.
	BatchSize int

	// Workers overrides the filesystem pool size when positive.
	Workers int

	// NetWorkers overrides the network pool size when positive.
	NetWorkers int

	// Timestamps enables randomized modification times on written files.
	Timestamps bool

	// Progress enables per-phase progress bars.
	Progress bool

	// Logger receives run and phase records.
	// Default: slog.Default()
	Logger *slog.Logger
}

// PhaseResult records the outcome of one phase.
type PhaseResult struct {
	Name     string
	Written  int
	Failed   int
	Duration time.Duration
}

// Summary is the outcome of a full run. Created counts files present on the
// target when the run finished; the deleted-file simulation is reported in
// its phase result but excluded from Created because its artifacts are
// removed again before the run ends.
type Summary struct {
	Created   int64
	Attempted int64
	Phases    []PhaseResult
	Duration  time.Duration
}

// Populator executes a population run against a single target root.
type Populator struct {
	root    string
	writer  *writer.Writer
	fetch   *fetcher.Fetcher
	counter *progress.Counter
	opts    Options
	logger  *slog.Logger
}

// New creates a Populator for the target root. The root must already exist
// and be writable; writability is verified once with a probe file so a bad
// target fails the run before any phase starts. fetch may be nil, in which
// case the image phase is skipped.
func New(root string, fetch *fetcher.Fetcher, opts Options) (*Populator, error) {
	if opts.Users == nil {
		opts.Users = catalog.Users
	}
	if opts.Departments == nil {
		opts.Departments = catalog.Departments
	}
	if opts.Projects == nil {
		opts.Projects = catalog.Projects
	}
	if opts.LogTypes == nil {
		opts.LogTypes = catalog.LogTypes
	}
	if opts.ImageURLs == nil {
		opts.ImageURLs = catalog.ImageURLs(50)
	}
	if opts.DeletedSets == nil {
		opts.DeletedSets = catalog.DeletedSets
	}
	if opts.ImageUsers <= 0 {
		opts.ImageUsers = 10
	}
	if opts.Counts == (Counts{}) {
		opts.Counts = DefaultCounts()
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("run", uuid.NewString()))

	if err := probeWritable(root); err != nil {
		return nil, fmt.Errorf("target %s not writable: %w", root, err)
	}

	w := writer.New(root, writer.Options{
		Timestamps: opts.Timestamps,
		Parents:    true,
		Logger:     logger,
	})

	return &Populator{
		root:    root,
		writer:  w,
		fetch:   fetch,
		counter: progress.NewCounter(),
		opts:    opts,
		logger:  logger,
	}, nil
}

// probeWritable verifies the root accepts writes by creating and removing a
// probe file.
func probeWritable(root string) error {
	probe := filepath.Join(root, ".seedbed_probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o644); err != nil {
		return err
	}
	return os.Remove(probe)
}

// Run executes every phase in order and returns the run summary. Per-unit
// failures are contained inside their phase; Run returns a non-nil error
// only when the context is cancelled.
func (p *Populator) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	p.logger.Info("run starting",
		slog.String("target", p.root),
		slog.Int("users", len(p.opts.Users)),
		slog.Int("departments", len(p.opts.Departments)))

	var sum Summary

	sum.Phases = append(sum.Phases, p.runStructure())
	sum.Phases = append(sum.Phases, p.runFiles(ctx, "documents", p.documentParts()))
	sum.Phases = append(sum.Phases, p.runImages(ctx))
	sum.Phases = append(sum.Phases, p.runFiles(ctx, "departments", p.departmentParts()))
	sum.Phases = append(sum.Phases, p.runFiles(ctx, "system", p.systemParts()))
	sum.Phases = append(sum.Phases, p.runFiles(ctx, "archives", p.archiveParts()))
	sum.Phases = append(sum.Phases, p.runDeleted(ctx))

	sum.Created = p.counter.Total()
	for _, ph := range sum.Phases {
		if ph.Name == "structure" || ph.Name == "deleted" {
			continue
		}
		sum.Attempted += int64(ph.Written + ph.Failed)
	}
	sum.Duration = time.Since(start)

	p.logger.Info("run complete",
		slog.Int64("created", sum.Created),
		slog.Int64("attempted", sum.Attempted),
		slog.Duration("duration", sum.Duration))

	return sum, ctx.Err()
}

// runStructure lays down the static directory topology. It runs sequentially
// before any phase so every later destination has its parents in place.
func (p *Populator) runStructure() PhaseResult {
	start := time.Now()
	res := PhaseResult{Name: "structure"}

	for _, dir := range catalog.Topology(p.opts.Users, p.opts.Departments, p.opts.Projects) {
		if err := os.MkdirAll(filepath.Join(p.root, dir), 0o755); err != nil {
			p.logger.Warn("mkdir failed", slog.String("dir", dir), slog.String("error", err.Error()))
			res.Failed++
			continue
		}
		res.Written++
	}

	res.Duration = time.Since(start)
	p.logger.Info("phase complete",
		slog.String("phase", "structure"),
		slog.Int("dirs", res.Written),
		slog.Int("failed", res.Failed))
	return res
}

// runFiles executes a filesystem phase on the writer pool.
func (p *Populator) runFiles(ctx context.Context, name string, parts []partition.Partition) PhaseResult {
	start := time.Now()
	res := pool.Run(ctx, name, pool.Config{MaxWorkers: p.opts.Workers, Class: pool.ClassFilesystem}, parts,
		func(ctx context.Context, part partition.Partition) (int, []partition.UnitError) {
			return p.writer.Write(part)
		},
		pool.Options{Counter: p.counter, Logger: p.logger, Progress: p.opts.Progress})
	return PhaseResult{Name: name, Written: res.Written, Failed: len(res.Errors), Duration: time.Since(start)}
}

// runImages executes the download phase on the network pool. Without a
// fetcher or any image endpoints the phase is skipped, not failed.
func (p *Populator) runImages(ctx context.Context) PhaseResult {
	if p.fetch == nil || len(p.opts.ImageURLs) == 0 {
		p.logger.Info("phase skipped", slog.String("phase", "images"))
		return PhaseResult{Name: "images"}
	}

	start := time.Now()
	res := pool.Run(ctx, "images", pool.Config{MaxWorkers: p.opts.NetWorkers, Class: pool.ClassNetwork}, p.imageParts(),
		func(ctx context.Context, part partition.Partition) (int, []partition.UnitError) {
			var written int
			var errs []partition.UnitError
			for _, dl := range part.Downloads {
				if err := p.fetch.Fetch(ctx, dl.URL, dl.Dest); err != nil {
					errs = append(errs, partition.UnitError{Partition: part.Name, Dest: dl.Dest, Err: err})
					continue
				}
				written++
			}
			return written, errs
		},
		pool.Options{Counter: p.counter, Logger: p.logger, Progress: p.opts.Progress})
	return PhaseResult{Name: "images", Written: res.Written, Failed: len(res.Errors), Duration: time.Since(start)}
}

// runDeleted executes the deleted-file simulation: each category's files are
// written into a transient subtree that is removed once the partition
// finishes. The phase runs on its own counter so the removed files never
// inflate the run's created total.
func (p *Populator) runDeleted(ctx context.Context) PhaseResult {
	start := time.Now()
	res := pool.Run(ctx, "deleted", pool.Config{MaxWorkers: p.opts.Workers, Class: pool.ClassFilesystem}, p.deletedParts(),
		func(ctx context.Context, part partition.Partition) (int, []partition.UnitError) {
			written, errs := p.writer.Write(part)
			if len(part.Tasks) > 0 {
				dir := filepath.Join(p.root, filepath.Dir(part.Tasks[0].Dest))
				if err := os.RemoveAll(dir); err != nil {
					errs = append(errs, partition.UnitError{Partition: part.Name, Dest: dir, Err: err})
				}
			}
			return written, errs
		},
		pool.Options{Counter: progress.NewCounter(), Logger: p.logger, Progress: p.opts.Progress})
	return PhaseResult{Name: "deleted", Written: res.Written, Failed: len(res.Errors), Duration: time.Since(start)}
}

// deletedCategories returns the configured categories in a stable order.
func (p *Populator) deletedCategories() []string {
	if len(p.opts.DeletedSets) == len(catalog.DeletedSets) {
		same := true
		for _, c := range catalog.DeletedCategories {
			if _, ok := p.opts.DeletedSets[c]; !ok {
				same = false
				break
			}
		}
		if same {
			return catalog.DeletedCategories
		}
	}
	cats := make([]string, 0, len(p.opts.DeletedSets))
	for c := range p.opts.DeletedSets {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
