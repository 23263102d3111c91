package listener

import (
	"fmt"

	"github.com/san-kum/simopts/internal/plugin"
)

// Verdict is the outcome of validating one identifier. The zero value is Ok.
type Verdict struct {
	Err error
}

func Ok() Verdict { return Verdict{} }

func Failed(err error) Verdict { return Verdict{Err: err} }

func (v Verdict) OK() bool { return v.Err == nil }

// Reason is the failure text for display, empty when OK.
func (v Verdict) Reason() string {
	if v.Err == nil {
		return ""
	}
	return v.Err.Error()
}

func (v Verdict) String() string {
	if v.OK() {
		return "Listener instantiated successfully."
	}
	return "Unable to instantiate listener: " + v.Reason()
}

// Validator answers whether an identifier could be activated. The instance
// built to check this is discarded straight away.
type Validator struct {
	resolver plugin.Resolver
}

func NewValidator(r plugin.Resolver) *Validator {
	return &Validator{resolver: r}
}

// Validate never panics; every failure is folded into the verdict.
func (v *Validator) Validate(id string) Verdict {
	if _, err := v.instantiate(id); err != nil {
		return Failed(err)
	}
	return Ok()
}

func (v *Validator) instantiate(id string) (l Listener, err error) {
	defer func() {
		if p := recover(); p != nil {
			l = nil
			err = fmt.Errorf("%w: %s: panic: %v", plugin.ErrConstruct, id, p)
		}
	}()

	inst, err := v.resolver.Resolve(id)
	if err != nil {
		return nil, err
	}
	l, ok := inst.(Listener)
	if !ok {
		return nil, fmt.Errorf("%w: %s resolved to %T", ErrNotListener, id, inst)
	}
	return l, nil
}
