package engine

import (
	"errors"
	"io"
	"log/slog"

	"containermap/internal/domain"
	"containermap/internal/record"
)

// Lookup is the read-only view of the reference store that rules consult.
type Lookup interface {
	FindTopContainerByBarcode(barcode string) (*domain.TopContainer, bool)
	FindContainerProfileByName(name string) (*domain.ContainerProfile, bool)
	FindTopContainerBySeriesAndIndicator(series, indicator string) (*domain.TopContainer, bool)
}

// Rule is one transformation step. Apply mutates dst and the records
// reachable from it; it must not fail and must not touch the store.
type Rule interface {
	Description() string
	Apply(src *domain.SourceContainer, dst *domain.Subcontainer, store Lookup)
}

// MappingFunc adapts a plain function to a Rule through AddMapping.
type MappingFunc func(src *domain.SourceContainer, dst *domain.Subcontainer, store Lookup)

type mapping struct {
	description string
	fn          MappingFunc
}

func (m mapping) Description() string { return m.description }

func (m mapping) Apply(src *domain.SourceContainer, dst *domain.Subcontainer, store Lookup) {
	m.fn(src, dst, store)
}

// Outcome is the terminal state of one invocation.
type Outcome string

const (
	Accepted Outcome = "accepted"
	Rejected Outcome = "rejected"
)

// Result describes a finished invocation. Subcontainer is nil when the source
// was rejected, Errors is empty when it was accepted.
type Result struct {
	Outcome      Outcome
	Subcontainer *domain.Subcontainer
	Errors       record.ValidationErrors
}

// Engine validates source containers and runs its rules, in registration
// order, against a fresh subcontainer.
type Engine struct {
	Logger *slog.Logger
	rules  []Rule
}

func New(logger *slog.Logger) *Engine {
	return &Engine{Logger: logger}
}

// NewDefault returns an engine with the reference rule pipeline registered.
func NewDefault(logger *slog.Logger) *Engine {
	e := New(logger)
	e.Register(
		NewBarcodeRule(),
		NewSeriesIndicatorRule(),
		NewSubcontainerFieldsRule(),
		NewContainerProfileRule(),
	)
	return e
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Register appends rules to the pipeline.
func (e *Engine) Register(rules ...Rule) {
	e.rules = append(e.rules, rules...)
}

// AddMapping appends a function rule. The description is only used for
// listing.
func (e *Engine) AddMapping(description string, fn MappingFunc) {
	e.Register(mapping{description: description, fn: fn})
}

// Rules returns the registered rules in application order. The slice is a
// copy.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Descriptions lists rule descriptions in registration order.
func (e *Engine) Descriptions() []string {
	out := make([]string, len(e.rules))
	for i, r := range e.rules {
		out[i] = r.Description()
	}
	return out
}

// Run validates src and, when it is valid, applies every rule to a new
// subcontainer. A rejected source runs no rules.
func (e *Engine) Run(src *domain.SourceContainer, store Lookup) (Result, error) {
	if src == nil {
		return Result{}, errors.New("source container is nil")
	}
	if store == nil {
		return Result{}, errors.New("lookup store is nil")
	}
	log := e.logger()
	if errs := src.Validate(); len(errs) > 0 {
		log.Debug("source rejected", "errors", len(errs), "fields", errs.Fields())
		return Result{Outcome: Rejected, Errors: errs}, nil
	}
	dst := domain.NewSubcontainer()
	e.apply(src, dst, store)
	log.Debug("source accepted", "rules", len(e.rules), "top_container", describe(dst.TopContainer()))
	return Result{Outcome: Accepted, Subcontainer: dst}, nil
}

// Map is Run for callers that only want the subcontainer. Validation
// failures are returned as record.ValidationErrors.
func (e *Engine) Map(src *domain.SourceContainer, store Lookup) (*domain.Subcontainer, error) {
	res, err := e.Run(src, store)
	if err != nil {
		return nil, err
	}
	if res.Outcome == Rejected {
		return nil, res.Errors
	}
	return res.Subcontainer, nil
}

// apply runs every rule in order. Callers must have validated src.
func (e *Engine) apply(src *domain.SourceContainer, dst *domain.Subcontainer, store Lookup) {
	log := e.logger()
	for i, r := range e.rules {
		r.Apply(src, dst, store)
		log.Debug("rule applied", "index", i, "rule", r.Description())
	}
}

func describe(tc *domain.TopContainer) string {
	if tc == nil {
		return "none"
	}
	return tc.ID().String()
}
