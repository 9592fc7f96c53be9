// Package pool runs one population phase over a bounded worker pool.
//
// Each phase gets its own pool: every partition is submitted as an
// independent unit, workers drain the queue concurrently, and the pool is
// torn down before Run returns. Per-partition counts are aggregated into the
// injected progress counter; per-partition failures, including recovered
// panics, are collected into the typed phase result instead of cancelling
// sibling partitions.
//
// Pool sizing follows the phase's I/O class: filesystem-bound phases run
// wide (writes benefit from high concurrency), network-bound phases are
// capped lower to respect the remote service and the shared connection
// slots.
//
// # Usage
//
//	result := pool.Run(ctx, "documents", pool.Config{Class: pool.ClassFilesystem},
//	    parts, execFn, pool.Options{Counter: counter})
package pool
