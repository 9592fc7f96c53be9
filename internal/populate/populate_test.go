package populate

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"

	"github.com/seedbed-io/seedbed/internal/fetcher"
	seedhttp "github.com/seedbed-io/seedbed/internal/http"
	"github.com/seedbed-io/seedbed/internal/partition"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// countFiles counts regular files under root.
func countFiles(t *testing.T, root string) int64 {
	t.Helper()
	var n int64
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestRunCreatesConfiguredDocuments(t *testing.T) {
	root := t.TempDir()

	p, err := New(root, nil, Options{
		Users:       []string{"Alice_Test", "Bob_Test", "Carol_Test"},
		Departments: []string{},
		Projects:    []string{},
		LogTypes:    []string{},
		DeletedSets: map[string][]string{},
		Counts:      Counts{Documents: partition.Range{Min: 10, Max: 10}},
		Logger:      quietLogger(),
	})
	require.NoError(t, err)

	sum, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(30), sum.Created, "3 users with a fixed count of 10 documents each")
	assert.Equal(t, int64(30), sum.Attempted)
	assert.Equal(t, sum.Created, countFiles(t, root), "counter must agree with the files on disk")
	assert.Positive(t, sum.Duration)

	names := make([]string, len(sum.Phases))
	for i, ph := range sum.Phases {
		names[i] = ph.Name
	}
	assert.Equal(t, []string{"structure", "documents", "images", "departments", "system", "archives", "deleted"}, names)
}

func TestRunDeletedPhaseLeavesNoTrace(t *testing.T) {
	root := t.TempDir()

	p, err := New(root, nil, Options{
		Users:       []string{},
		Departments: []string{},
		Projects:    []string{},
		LogTypes:    []string{},
		Counts:      Counts{LogEntries: partition.Range{Min: 1, Max: 1}},
		Logger:      quietLogger(),
	})
	require.NoError(t, err)

	sum, err := p.Run(context.Background())
	require.NoError(t, err)

	var deleted PhaseResult
	for _, ph := range sum.Phases {
		if ph.Name == "deleted" {
			deleted = ph
		}
	}
	assert.Positive(t, deleted.Written, "deleted phase should have created its sets")
	assert.Zero(t, deleted.Failed)

	assert.Equal(t, int64(0), sum.Created, "deleted artifacts must not count as created")
	assert.Equal(t, int64(0), countFiles(t, root), "deleted subtrees must be removed")

	matches, err := filepath.Glob(filepath.Join(root, "Temp", ".deleted_*"))
	require.NoError(t, err)
	assert.Empty(t, matches, "transient subtrees must not survive the run")
}

func TestRunCreatesTopology(t *testing.T) {
	root := t.TempDir()

	p, err := New(root, nil, Options{
		Users:       []string{"Alice_Test"},
		Departments: []string{"IT"},
		Projects:    []string{"Project_Alpha"},
		LogTypes:    []string{},
		DeletedSets: map[string][]string{},
		Counts:      Counts{LogEntries: partition.Range{Min: 1, Max: 1}},
		Logger:      quietLogger(),
	})
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.NoError(t, err)

	for _, dir := range []string{
		filepath.Join("Users", "Alice_Test", "Documents", "Work"),
		filepath.Join("Shared", "IT", "Reports"),
		filepath.Join("Projects", "Project_Alpha", "Code"),
		filepath.Join("Windows", "Logs"),
	} {
		assert.DirExists(t, filepath.Join(root, dir))
	}
}

func TestRunEmptyImageURLsSkipsImagePhase(t *testing.T) {
	root := t.TempDir()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	defer bucket.Close()
	fetch := fetcher.New(seedhttp.NewClient(seedhttp.DefaultOptions()), bucket, fetcher.Options{})

	p, err := New(root, fetch, Options{
		Users:       []string{"Alice_Test"},
		Departments: []string{},
		Projects:    []string{},
		LogTypes:    []string{},
		DeletedSets: map[string][]string{},
		ImageURLs:   []string{},
		Counts:      Counts{LogEntries: partition.Range{Min: 1, Max: 1}},
		Logger:      quietLogger(),
	})
	require.NoError(t, err)

	// Must complete without panicking even though the image counts would
	// draw at least one download per user.
	sum, err := p.Run(context.Background())
	require.NoError(t, err)

	var images PhaseResult
	for _, ph := range sum.Phases {
		if ph.Name == "images" {
			images = ph
		}
	}
	assert.Zero(t, images.Written, "no endpoints means nothing to download")
	assert.Zero(t, images.Failed)
}

func TestNewRejectsMissingTarget(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "does", "not", "exist"), nil, Options{Logger: quietLogger()})
	assert.Error(t, err)
}
