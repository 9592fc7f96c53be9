// Package partition splits the population workload into disjoint,
// independently executable slices.
//
// A Partition is an ordered batch of tasks assigned to exactly one worker
// for its lifetime. Partitions are built either per owning entity (one per
// user, department, or log type) or as fixed-size index ranges over a flat
// count. Because every destination path embeds its owner or its index, no
// two partitions ever target the same path, and concurrent execution needs no
// per-file locking.
//
// # Usage
//
//	parts := partition.ByEntity(users, func(user string) partition.Partition {
//	    n := partition.Range{Min: 50, Max: 100}.Draw(rng)
//	    // build n tasks under Users/<user>/...
//	})
//
//	parts := partition.BySlice("temp", total, 50, func(name string, start, end int) partition.Partition {
//	    // build tasks for indices [start, end)
//	})
package partition
