package listener

import (
	"errors"
	"fmt"

	"github.com/san-kum/simopts/internal/plugin"
)

// Activate builds one live listener per identifier, in order, for handing
// to the simulation engine. Unlike validation it fails the whole call when
// any identifier cannot be activated.
func Activate(resolver plugin.Resolver, ids []string) ([]Listener, error) {
	v := NewValidator(resolver)
	listeners := make([]Listener, 0, len(ids))
	var errs []error
	for i, id := range ids {
		l, err := v.instantiate(id)
		if err != nil {
			errs = append(errs, fmt.Errorf("listener %d: %w", i, err))
			continue
		}
		listeners = append(listeners, l)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return listeners, nil
}
