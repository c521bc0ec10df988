// Package driver runs extracted assignments through the lowering engine and
// every configured backend, keeping one slot counter and one listing per
// backend for the lifetime of a Session.
package driver

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/raymyers/tacc/pkg/asmgen"
	"github.com/raymyers/tacc/pkg/lower"
	"github.com/raymyers/tacc/pkg/source"
	"github.com/raymyers/tacc/pkg/tacgen"
)

// Backend renders one reduced assignment as listing lines.
type Backend interface {
	Name() string
	SlotPrefix() string
	Render(target string, red *lower.Reduction) ([]string, error)
}

// Checker is implemented by backends that cannot express every well-formed
// expression. Check runs before any slot is allocated.
type Checker interface {
	Check(tokens []lower.Token) error
}

type resetter interface {
	Reset()
}

// Listing is the ordered output of one backend. It only grows until the
// session is reset.
type Listing struct {
	Backend string
	lines   []string
}

// Lines returns a copy of the listing.
func (l *Listing) Lines() []string {
	return append([]string(nil), l.lines...)
}

func (l *Listing) Len() int { return len(l.lines) }

// Diagnostic describes an assignment that was skipped. Backend is empty
// when the expression was rejected for every backend.
type Diagnostic struct {
	Assignment source.Assignment
	Backend    string
	Err        error
}

func (d Diagnostic) Error() string {
	prefix := fmt.Sprintf("line %d: %s", d.Assignment.Line, d.Assignment.Target)
	if d.Backend != "" {
		prefix += " (" + d.Backend + ")"
	}
	return prefix + ": " + d.Err.Error()
}

func (d Diagnostic) Unwrap() error { return d.Err }

// Options configure a Session.
type Options struct {
	// Backends defaults to TAC followed by assembly.
	Backends []Backend
	// TypeKeywords defaults to source.DefaultTypeKeywords.
	TypeKeywords []string
	// Logger defaults to discarding everything.
	Logger *slog.Logger
}

type stage struct {
	backend Backend
	alloc   *lower.SlotAllocator
	listing *Listing
}

// Session owns the counters and listings of a run. It is not safe for
// concurrent use; separate sessions share nothing.
type Session struct {
	stages       []*stage
	typeKeywords []string
	logger       *slog.Logger
	diags        []Diagnostic
}

// NewSession creates a session with fresh counters.
func NewSession(opts Options) *Session {
	backends := opts.Backends
	if backends == nil {
		backends = []Backend{tacgen.NewBackend(""), asmgen.NewBackend("")}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{typeKeywords: opts.TypeKeywords, logger: logger}
	for _, b := range backends {
		s.stages = append(s.stages, &stage{
			backend: b,
			alloc:   lower.NewSlotAllocator(b.SlotPrefix()),
			listing: &Listing{Backend: b.Name()},
		})
	}
	return s
}

// Lower runs one assignment through every backend. An expression that
// fails to tokenize or is malformed is rejected as a whole, before any
// counter moves. A backend that cannot express it is skipped on its own.
// The returned error joins the diagnostics recorded for a.
func (s *Session) Lower(a source.Assignment) error {
	tokens, err := lower.Tokenize(a.Expr)
	if err == nil {
		err = lower.CheckShape(a.Expr, tokens)
	}
	if err != nil {
		return s.reject(Diagnostic{Assignment: a, Err: err})
	}

	var errs []error
	for _, st := range s.stages {
		name := st.backend.Name()
		if c, ok := st.backend.(Checker); ok {
			if err := c.Check(tokens); err != nil {
				errs = append(errs, s.reject(Diagnostic{Assignment: a, Backend: name, Err: err}))
				continue
			}
		}

		red, err := lower.Reduce(a.Expr, tokens, st.alloc)
		if err != nil {
			errs = append(errs, s.reject(Diagnostic{Assignment: a, Backend: name, Err: err}))
			continue
		}
		lines, err := st.backend.Render(a.Target, red)
		if err != nil {
			errs = append(errs, s.reject(Diagnostic{Assignment: a, Backend: name, Err: err}))
			continue
		}
		st.listing.lines = append(st.listing.lines, lines...)

		s.logger.Debug("lowered assignment",
			"backend", name,
			"line", a.Line,
			"target", a.Target,
			"ops", len(red.Ops),
			"next_slot", st.alloc.Peek().String())
	}
	return errors.Join(errs...)
}

func (s *Session) reject(d Diagnostic) error {
	s.logger.Warn("skipping assignment",
		"line", d.Assignment.Line,
		"target", d.Assignment.Target,
		"backend", d.Backend,
		"err", d.Err)
	s.diags = append(s.diags, d)
	return d
}

// Run extracts the assignments of src and lowers them in source order. It
// returns the diagnostics of this run; the run always continues past a
// rejected assignment.
func (s *Session) Run(src string) []Diagnostic {
	before := len(s.diags)
	assignments := source.Assignments(src, s.typeKeywords)
	s.logger.Info("extracted assignments", "count", len(assignments))
	for _, a := range assignments {
		_ = s.Lower(a)
	}
	return append([]Diagnostic(nil), s.diags[before:]...)
}

// Listings returns the listings in backend order.
func (s *Session) Listings() []*Listing {
	out := make([]*Listing, len(s.stages))
	for i, st := range s.stages {
		out[i] = st.listing
	}
	return out
}

// Listing returns the listing of the named backend, or nil.
func (s *Session) Listing(backend string) *Listing {
	for _, st := range s.stages {
		if st.backend.Name() == backend {
			return st.listing
		}
	}
	return nil
}

// Diagnostics returns every diagnostic recorded since the last Reset.
func (s *Session) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), s.diags...)
}

// Reset restarts numbering at 1 and clears listings and diagnostics.
func (s *Session) Reset() {
	for _, st := range s.stages {
		st.alloc.Reset()
		st.listing.lines = nil
		if r, ok := st.backend.(resetter); ok {
			r.Reset()
		}
	}
	s.diags = nil
}
