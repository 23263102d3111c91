// Package editor ties the run option models of one simulation together into
// an editing session: the time step parameter, the listener registry, and
// the geodetic strategy selector.
package editor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/san-kum/simopts/internal/geodetic"
	"github.com/san-kum/simopts/internal/listener"
	"github.com/san-kum/simopts/internal/options"
	"github.com/san-kum/simopts/internal/param"
	"github.com/san-kum/simopts/internal/plugin"
	"github.com/san-kum/simopts/internal/prefs"
	"github.com/san-kum/simopts/internal/selector"
)

// ErrPromptCancelled is returned by a Prompter when the user backs out.
var ErrPromptCancelled = errors.New("editor: prompt cancelled")

// Prompter asks the user for a listener identifier, pre-filled with
// previous.
type Prompter interface {
	Prompt(ctx context.Context, previous string) (string, error)
}

type Deps struct {
	Resolver plugin.Resolver
	Prefs    prefs.Store
	Logger   *slog.Logger
}

type Session struct {
	ID         uuid.UUID
	Simulation *options.Simulation

	TimeStep  *param.Model
	Listeners *listener.Registry
	Geodetic  *selector.Selector[geodetic.Strategy]

	validator *listener.Validator
	prefs     prefs.Store
	log       *slog.Logger
}

// Open starts a session over sim. Missing deps fall back to plugin.Default,
// in-memory preferences, and the default logger.
func Open(sim *options.Simulation, deps Deps) *Session {
	if deps.Resolver == nil {
		deps.Resolver = plugin.Default
	}
	if deps.Prefs == nil {
		deps.Prefs = prefs.NewMemory()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	id := uuid.New()
	opts := sim.Options()
	v := listener.NewValidator(deps.Resolver)

	s := &Session{
		ID:         id,
		Simulation: sim,
		TimeStep:   param.TimeStep(opts),
		Listeners:  listener.NewRegistry(opts, v),
		Geodetic:   selector.Geodetic(opts),
		validator:  v,
		prefs:      deps.Prefs,
		log: deps.Logger.With(
			"component", "editor",
			"session", id.String(),
			"simulation", sim.Name,
		),
	}
	s.log.Debug("Session opened", "listeners", s.Listeners.Size())
	return s
}

// PromptAddListener asks for an identifier and appends it. Empty input or a
// cancelled prompt changes nothing and reports false. Accepted input is
// remembered as the next prompt's default even when it fails validation.
func (s *Session) PromptAddListener(ctx context.Context, p Prompter) (bool, error) {
	previous, err := s.prefs.GetString(ctx, prefs.PreviousListenerKey, "")
	if err != nil {
		s.log.Warn("Failed to read previous listener", "error", err)
		previous = ""
	}

	id, err := p.Prompt(ctx, previous)
	if errors.Is(err, ErrPromptCancelled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return s.AddListener(ctx, id), nil
}

// AddListener appends id and records it as the previous identifier.
func (s *Session) AddListener(ctx context.Context, id string) bool {
	if !s.Listeners.Add(id) {
		return false
	}
	if err := s.prefs.PutString(ctx, prefs.PreviousListenerKey, id); err != nil {
		s.log.Warn("Failed to store previous listener", "error", err)
	}

	verdict, _ := s.Listeners.Status(s.Listeners.Size() - 1)
	s.log.Info("Listener added", "id", id, "ok", verdict.OK())
	return true
}

// ResetRunOptions restores the recommended time step and the default
// geodetic strategy.
func (s *Session) ResetRunOptions() {
	s.TimeStep.ResetToDefault()
	s.log.Info("Run options reset",
		"time_step", s.TimeStep.Value(),
		"geodetic", s.Geodetic.Selected().String(),
	)
}

// ValidateListeners validates all listeners off the caller goroutine and
// hands the verdicts to fn. It reports false when the list changed or the
// session closed before the results arrived.
func (s *Session) ValidateListeners(ctx context.Context, workers int, fn func(index int, id string, v listener.Verdict)) (bool, error) {
	snap := s.Listeners.Snapshot()

	type result struct {
		verdicts []listener.Verdict
		err      error
	}
	done := make(chan result, 1)
	go func() {
		verdicts, err := listener.ValidateSnapshot(ctx, s.validator, snap, workers)
		done <- result{verdicts, err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		return false, ctx.Err()
	}
	if res.err != nil {
		return false, res.err
	}

	applied := s.Listeners.Apply(snap, res.verdicts, fn)
	if !applied {
		s.log.Debug("Dropped stale validation results", "revision", snap.Revision)
	}
	return applied, nil
}

// Close detaches every model from the options.
func (s *Session) Close() {
	s.Listeners.Dispose()
	s.TimeStep.Close()
	s.log.Debug("Session closed")
}
