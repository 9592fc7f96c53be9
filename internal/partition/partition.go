package partition

import (
	"fmt"
	"math/rand/v2"
)

// Task is the atomic unit of filesystem work: a destination path and the
// payload to write there. Immutable once constructed; owned by the partition
// that created it until a writer consumes it.
type Task struct {
	Dest    string
	Payload []byte
}

// Download is the atomic unit of network work: a source URL and the
// destination key to store the response under.
type Download struct {
	URL  string
	Dest string
}

// Partition is a disjoint slice of the total workload, executed by a single
// worker. A partition carries either Tasks (filesystem phases) or Downloads
// (the image phase), never both.
type Partition struct {
	Name      string
	Tasks     []Task
	Downloads []Download
}

// Size returns the number of units in the partition.
func (p Partition) Size() int {
	return len(p.Tasks) + len(p.Downloads)
}

// UnitError records a single failed unit of work. Failures are contained at
// this scope: they are collected and reported, never propagated into sibling
// units or partitions.
type UnitError struct {
	Partition string
	Dest      string
	Err       error
}

func (e UnitError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Partition, e.Dest, e.Err)
}

func (e UnitError) Unwrap() error {
	return e.Err
}

// Range is an inclusive count range. Each partition draws its own count
// independently, which is why output volume varies run to run.
type Range struct {
	Min int
	Max int
}

// Draw picks a count from the range. A degenerate range (Max <= Min)
// returns Min.
func (r Range) Draw(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	if rng == nil {
		return r.Min + rand.IntN(r.Max-r.Min+1)
	}
	return r.Min + rng.IntN(r.Max-r.Min+1)
}

// ByEntity builds one partition per entity. An empty entity list yields no
// partitions.
func ByEntity(entities []string, build func(entity string) Partition) []Partition {
	if len(entities) == 0 {
		return nil
	}
	parts := make([]Partition, 0, len(entities))
	for _, e := range entities {
		parts = append(parts, build(e))
	}
	return parts
}

// BySlice splits a flat count of total units into fixed-size index ranges of
// at most batch units each, bounding per-worker memory and keeping
// result-collection granularity reasonable. build receives the half-open
// index range [start, end). A non-positive total yields no partitions.
func BySlice(name string, total, batch int, build func(name string, start, end int) Partition) []Partition {
	if total <= 0 {
		return nil
	}
	if batch <= 0 {
		batch = 50
	}
	var parts []Partition
	for start := 0; start < total; start += batch {
		end := start + batch
		if end > total {
			end = total
		}
		sliceName := fmt.Sprintf("%s[%d:%d]", name, start, end)
		parts = append(parts, build(sliceName, start, end))
	}
	return parts
}
