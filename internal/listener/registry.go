package listener

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/simopts/internal/options"
)

// Change tells a view which rows to refresh: [From, To).
type Change struct {
	From, To int
}

type subscription struct {
	id int
	fn func(Change)
}

// Registry is a read-through/write-through view of the listener list held
// in the options. It keeps no copy of the identifiers.
type Registry struct {
	opts      *options.Options
	validator *Validator

	subs   []subscription
	nextID int

	revision uint64
	mutating bool
	disposed bool
	unwatch  func()
}

func NewRegistry(opts *options.Options, v *Validator) *Registry {
	r := &Registry{opts: opts, validator: v}
	r.unwatch = opts.Subscribe(r.onOptionsChange)
	return r
}

func (r *Registry) Size() int { return r.opts.ListenerCount() }

// ElementAt returns the identifier at index i, or false when out of range.
func (r *Registry) ElementAt(i int) (string, bool) {
	return r.opts.ListenerAt(i)
}

// Add appends id to the end of the list. Blank input is ignored and
// reported as false.
func (r *Registry) Add(id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}
	r.mutating = true
	r.opts.AppendListener(id)
	r.mutating = false
	r.revision++
	r.fireAll()
	return true
}

// RemoveAt removes every index in one step. Indices are deduplicated and
// checked first; if any is out of range nothing is removed. Removal runs
// from the highest index down so earlier removals never shift later ones.
// An empty index list is a no-op and fires nothing.
func (r *Registry) RemoveAt(indices ...int) error {
	if len(indices) == 0 {
		return nil
	}
	size := r.Size()
	seen := make(map[int]struct{}, len(indices))
	sorted := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= size {
			return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, size)
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		sorted = append(sorted, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	r.mutating = true
	for _, i := range sorted {
		r.opts.RemoveListenerAt(i)
	}
	r.mutating = false
	r.revision++
	r.fireAll()
	return nil
}

// Status validates the identifier at index i. It is recomputed on every
// call.
func (r *Registry) Status(i int) (Verdict, bool) {
	id, ok := r.ElementAt(i)
	if !ok {
		return Verdict{}, false
	}
	return r.validator.Validate(id), true
}

// Subscribe registers fn to be called after every change to the list.
func (r *Registry) Subscribe(fn func(Change)) (cancel func()) {
	id := r.nextID
	r.nextID++
	r.subs = append(r.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// Revision increases with every change to the list.
func (r *Registry) Revision() uint64 { return r.revision }

// Dispose detaches the registry. Pending batch results are dropped after
// this.
func (r *Registry) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	if r.unwatch != nil {
		r.unwatch()
	}
	r.subs = nil
}

func (r *Registry) Disposed() bool { return r.disposed }

func (r *Registry) onOptionsChange(c options.Change) {
	if c.Field != options.FieldListeners || r.mutating {
		return
	}
	r.revision++
	r.fireAll()
}

func (r *Registry) fireAll() {
	c := Change{From: 0, To: r.Size()}
	subs := make([]subscription, len(r.subs))
	copy(subs, r.subs)
	for _, s := range subs {
		s.fn(c)
	}
}
