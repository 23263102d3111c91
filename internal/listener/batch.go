package listener

import (
	"context"
	"sync"
)

// DefaultWorkers bounds batch validation concurrency.
const DefaultWorkers = 4

// Snapshot pins the identifiers of a registry at one revision.
type Snapshot struct {
	Revision uint64
	IDs      []string
}

func (r *Registry) Snapshot() Snapshot {
	return Snapshot{Revision: r.revision, IDs: r.opts.Listeners()}
}

// ValidateSnapshot validates every identifier of snap on up to workers
// goroutines. Verdicts are returned in snapshot order.
func ValidateSnapshot(ctx context.Context, v *Validator, snap Snapshot, workers int) ([]Verdict, error) {
	n := len(snap.IDs)
	verdicts := make([]Verdict, n)
	if n == 0 {
		return verdicts, nil
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				if ctx.Err() != nil {
					return
				}
				verdicts[i] = v.Validate(snap.IDs[i])
			}
		}(start, end)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return verdicts, nil
}

// Apply hands verdicts to fn row by row, but only while snap still matches
// the registry contents. Stale or disposed results are dropped and Apply
// reports false.
func (r *Registry) Apply(snap Snapshot, verdicts []Verdict, fn func(index int, id string, v Verdict)) bool {
	if r.disposed || snap.Revision != r.revision || len(verdicts) != len(snap.IDs) {
		return false
	}
	for i, id := range snap.IDs {
		fn(i, id, verdicts[i])
	}
	return true
}
