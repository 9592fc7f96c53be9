// Package fetcher retrieves remote images into the corpus.
//
// All fetch workers in a phase share one Fetcher: a pooled HTTP client plus
// a bounded set of connection slots. The worker count may exceed the slot
// count; excess workers block waiting for a slot, which keeps the pressure
// on the remote image service independent of pool sizing.
//
// Responses are streamed into the destination bucket in fixed-size chunks,
// so a large image is never buffered whole in memory. The bucket commits a
// destination only when the stream completes: a failed fetch leaves no
// partial file behind, so the caller's success count is the only state that
// matters.
//
// # Usage
//
//	f := fetcher.New(client, bucket, fetcher.Options{MaxConns: 10})
//	err := f.Fetch(ctx, url, "Users/John_Doe/Pictures/photo_001.jpg")
package fetcher
