// Package progress provides the run-scoped progress counter.
//
// The Counter is the only shared mutable state across workers: a single
// monotonically increasing total of files created, mutated exclusively
// through an atomic add. It is created per run and injected into the worker
// pool, never process-global, so tests and repeated runs see independent
// counts.
//
// # Usage
//
//	counter := progress.NewCounter()
//	// workers report completed batches
//	counter.Add(int64(written))
//	// reporting reads the total
//	fmt.Println(counter.Total())
package progress
