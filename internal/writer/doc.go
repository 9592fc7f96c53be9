// Package writer executes filesystem partitions.
//
// A Writer consumes one partition at a time, sequentially within its own
// invocation: create parent directories, write the payload, optionally stamp
// a randomized modification time inside a bounded historical window. A
// failure on one destination is recorded and skipped; it never aborts the
// remaining destinations in the partition. Concurrency comes from the pool
// running many Write invocations over disjoint partitions, not from the
// writer itself.
//
// # Usage
//
//	w := writer.New(root, writer.Options{Timestamps: true})
//	written, errs := w.Write(part)
package writer
