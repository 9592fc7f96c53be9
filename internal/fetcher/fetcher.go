package fetcher

import (
	"context"
	"fmt"
	"io"

	"gocloud.dev/blob"

	seedhttp "github.com/seedbed-io/seedbed/internal/http"
)

// Options configures the fetcher.
type Options struct {
	// MaxConns bounds the number of simultaneous fetches, independent of
	// the worker count. Default: 10.
	MaxConns int

	// ChunkSize is the copy buffer size for streaming response bodies.
	// Default: 64KiB.
	ChunkSize int
}

// Fetcher downloads remote assets through a shared connection context into
// a destination bucket.
type Fetcher struct {
	client *seedhttp.Client
	bucket *blob.Bucket
	slots  chan struct{}
	opts   Options
}

// New creates a Fetcher over the shared client and destination bucket.
func New(client *seedhttp.Client, bucket *blob.Bucket, opts Options) *Fetcher {
	if opts.MaxConns <= 0 {
		opts.MaxConns = 10
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 64 * 1024
	}
	return &Fetcher{
		client: client,
		bucket: bucket,
		slots:  make(chan struct{}, opts.MaxConns),
		opts:   opts,
	}
}

// Fetch retrieves url and streams the body to dest. It blocks while the
// connection slots are saturated. On any failure the destination is never
// committed; the returned error is the only signal the caller needs.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	select {
	case f.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-f.slots }()

	body, err := f.client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer body.Close()

	// Cancelling the writer context before Close aborts the blob write, so
	// an interrupted stream never commits a truncated destination.
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := f.bucket.NewWriter(wctx, dest, nil)
	if err != nil {
		return fmt.Errorf("open destination %s: %w", dest, err)
	}

	buf := make([]byte, f.opts.ChunkSize)
	if _, err := io.CopyBuffer(w, body, buf); err != nil {
		cancel()
		w.Close()
		return fmt.Errorf("stream %s: %w", dest, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("commit %s: %w", dest, err)
	}
	return nil
}
