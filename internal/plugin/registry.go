package plugin

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

var (
	ErrEmptyIdentifier = errors.New("plugin: empty identifier")
	ErrDuplicate       = errors.New("plugin: identifier already registered")
	ErrUnknown         = errors.New("plugin: no capability registered")
	ErrConstruct       = errors.New("plugin: construction failed")
)

// Factory builds a fresh instance with no arguments.
type Factory func() (any, error)

// Resolver turns an identifier into a newly constructed instance.
type Resolver interface {
	Resolve(id string) (any, error)
}

// Initializer is implemented by types registered with RegisterType whose
// zero value needs setup that can fail.
type Initializer interface {
	Init() error
}

// Registry maps identifiers to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default is the process-wide registry that built-in listeners register into.
var Default = NewRegistry()

func (r *Registry) Register(id string, f Factory) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyIdentifier
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, id)
	}
	r.factories[id] = f
	return nil
}

func (r *Registry) MustRegister(id string, f Factory) {
	if err := r.Register(id, f); err != nil {
		panic(err)
	}
}

// Resolve looks up id and runs its factory. A panicking factory is reported
// as ErrConstruct like any other construction failure.
func (r *Registry) Resolve(id string) (v any, err error) {
	r.mu.RLock()
	fn, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknown, id)
	}

	defer func() {
		if p := recover(); p != nil {
			v = nil
			err = fmt.Errorf("%w: %s: panic: %v", ErrConstruct, id, p)
		}
	}()

	v, err = fn()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConstruct, id, err)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %s: factory returned nil", ErrConstruct, id)
	}
	return v, nil
}

func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[id]
	return ok
}

// Identifiers lists every registered identifier, sorted.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// QualifiedName is the identifier RegisterType uses for T:
// "<import path>.<type name>".
func QualifiedName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// RegisterType registers *T under its qualified name. Construction
// allocates a zero T and calls Init when *T implements Initializer.
func RegisterType[T any](r *Registry) (string, error) {
	id := QualifiedName[T]()
	err := r.Register(id, func() (any, error) {
		v := new(T)
		if in, ok := any(v).(Initializer); ok {
			if err := in.Init(); err != nil {
				return nil, err
			}
		}
		return v, nil
	})
	return id, err
}

func MustRegisterType[T any](r *Registry) string {
	id, err := RegisterType[T](r)
	if err != nil {
		panic(err)
	}
	return id
}
