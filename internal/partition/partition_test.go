package partition

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func TestByEntityEmpty(t *testing.T) {
	parts := ByEntity(nil, func(string) Partition { return Partition{} })
	if len(parts) != 0 {
		t.Errorf("expected zero partitions for empty entity list, got %d", len(parts))
	}
}

func TestByEntityOnePerEntity(t *testing.T) {
	entities := []string{"alice", "bob", "carol"}
	parts := ByEntity(entities, func(e string) Partition {
		return Partition{Name: e, Tasks: []Task{{Dest: e + "/file.txt"}}}
	})
	if len(parts) != len(entities) {
		t.Fatalf("expected %d partitions, got %d", len(entities), len(parts))
	}
	for i, p := range parts {
		if p.Name != entities[i] {
			t.Errorf("partition %d: expected name %q, got %q", i, entities[i], p.Name)
		}
	}
}

func TestBySliceChunking(t *testing.T) {
	tests := []struct {
		total, batch  int
		wantParts     int
		wantLastUnits int
	}{
		{100, 50, 2, 50},
		{101, 50, 3, 1},
		{49, 50, 1, 49},
		{0, 50, 0, 0},
		{-5, 50, 0, 0},
	}

	for _, tt := range tests {
		parts := BySlice("flat", tt.total, tt.batch, func(name string, start, end int) Partition {
			p := Partition{Name: name}
			for i := start; i < end; i++ {
				p.Tasks = append(p.Tasks, Task{Dest: fmt.Sprintf("flat/%05d.tmp", i)})
			}
			return p
		})
		if len(parts) != tt.wantParts {
			t.Errorf("BySlice(total=%d, batch=%d): expected %d partitions, got %d",
				tt.total, tt.batch, tt.wantParts, len(parts))
			continue
		}
		if tt.wantParts > 0 {
			last := parts[len(parts)-1]
			if last.Size() != tt.wantLastUnits {
				t.Errorf("BySlice(total=%d, batch=%d): expected %d units in last partition, got %d",
					tt.total, tt.batch, tt.wantLastUnits, last.Size())
			}
		}
	}
}

// TestDestinationsDisjoint is the core invariant: for any partition set, the
// union of destination paths across all partitions is duplicate-free.
func TestDestinationsDisjoint(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))

	for trial := 0; trial < 50; trial++ {
		numEntities := rng.IntN(20)
		entities := make([]string, numEntities)
		for i := range entities {
			entities[i] = fmt.Sprintf("user_%02d", i)
		}

		perEntity := Range{Min: 1, Max: 30}
		parts := ByEntity(entities, func(e string) Partition {
			p := Partition{Name: e}
			n := perEntity.Draw(rng)
			for i := 0; i < n; i++ {
				p.Tasks = append(p.Tasks, Task{Dest: fmt.Sprintf("Users/%s/Documents/doc_%03d.txt", e, i+1)})
			}
			return p
		})

		total := rng.IntN(300)
		parts = append(parts, BySlice("temp", total, 50, func(name string, start, end int) Partition {
			p := Partition{Name: name}
			for i := start; i < end; i++ {
				p.Tasks = append(p.Tasks, Task{Dest: fmt.Sprintf("Temp/tmp_%05d.tmp", 10000+i)})
			}
			return p
		})...)

		seen := make(map[string]string)
		for _, p := range parts {
			for _, task := range p.Tasks {
				if owner, dup := seen[task.Dest]; dup {
					t.Fatalf("trial %d: destination %q appears in both %q and %q",
						trial, task.Dest, owner, p.Name)
				}
				seen[task.Dest] = p.Name
			}
		}
	}
}

func TestRangeDraw(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	r := Range{Min: 5, Max: 10}
	for i := 0; i < 1000; i++ {
		n := r.Draw(rng)
		if n < 5 || n > 10 {
			t.Fatalf("Draw out of range: %d", n)
		}
	}

	fixed := Range{Min: 7, Max: 7}
	if n := fixed.Draw(rng); n != 7 {
		t.Errorf("degenerate range: expected 7, got %d", n)
	}
}
