// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/cel-go/cel"
	gocache "github.com/patrickmn/go-cache"
)

const (
	// DefaultMaxExpressionLength is the maximum accepted length for an
	// extraction expression. Longer expressions are rejected before they
	// reach the compiler.
	DefaultMaxExpressionLength = 10000

	// DefaultCostLimit is the runtime cost ceiling for one evaluation. It
	// bounds pathological expressions; it is a safety net, not a scheduler,
	// and embedders needing wall-clock bounds must impose them externally.
	DefaultCostLimit = 1000000

	// DefaultCacheTTL is how long a compiled expression stays cached after
	// its last Set. Definitions are typically scanned many times in quick
	// succession, then not at all.
	DefaultCacheTTL = 30 * time.Minute

	// DefaultCachePurgeInterval is how often expired cache entries are swept.
	DefaultCachePurgeInterval = 10 * time.Minute
)

// Engine compiles extraction expressions and caches the compiled programs
// keyed by their exact source text. It is safe for concurrent use; racing
// compiles of the same text may both do the work, but the cache always holds
// a complete artifact.
//
// Every expression sees the same fixed scope and nothing else:
//
//	groups  list(string)        captured groups, groups[0] is the whole match
//	named   map(string, string) named capture groups
//	index   int                 0-based count of matches seen in this scan
type Engine struct {
	envOnce sync.Once
	env     *cel.Env
	envErr  error

	programs *gocache.Cache

	maxExpressionLength int
	costLimit           uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxExpressionLength overrides the accepted expression length.
func WithMaxExpressionLength(n int) Option {
	return func(e *Engine) {
		e.maxExpressionLength = n
	}
}

// WithCostLimit overrides the runtime cost ceiling for evaluations.
func WithCostLimit(limit uint64) Option {
	return func(e *Engine) {
		e.costLimit = limit
	}
}

// WithCacheTTL overrides how long compiled expressions stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		e.programs = gocache.New(ttl, DefaultCachePurgeInterval)
	}
}

// NewEngine returns an engine with the default limits.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		programs:            gocache.New(DefaultCacheTTL, DefaultCachePurgeInterval),
		maxExpressionLength: DefaultMaxExpressionLength,
		costLimit:           DefaultCostLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// getEnv builds the expression environment on first use. The environment
// declares the match contract variables and deliberately nothing more: no
// host functions, no reflection, no I/O.
func (e *Engine) getEnv() (*cel.Env, error) {
	e.envOnce.Do(func() {
		e.env, e.envErr = cel.NewEnv(
			cel.Variable("groups", cel.ListType(cel.StringType)),
			cel.Variable("named", cel.MapType(cel.StringType, cel.StringType)),
			cel.Variable("index", cel.IntType),
		)
	})
	return e.env, e.envErr
}

// CompiledExpression is a compiled, reusable extraction expression. It is
// immutable and safe for concurrent evaluation.
type CompiledExpression struct {
	source  string
	program cel.Program
}

// Source returns the expression's original source text.
func (ce *CompiledExpression) Source() string {
	return ce.source
}

// Compile returns the compiled form of source, reusing a cached program when
// the exact same text was compiled before. Compilation is deterministic and
// side-effect free, so the cache is purely an optimization.
//
// Returns a *ParseError for syntax problems and a *CheckError for
// type-checking problems; both wrap ErrCompile.
func (e *Engine) Compile(source string) (*CompiledExpression, error) {
	if len(source) > e.maxExpressionLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrCompile, len(source), e.maxExpressionLength)
	}

	if cached, ok := e.programs.Get(source); ok {
		return cached.(*CompiledExpression), nil
	}

	compiled, err := e.compile(source)
	if err != nil {
		return nil, err
	}

	e.programs.Set(source, compiled, gocache.DefaultExpiration)
	return compiled, nil
}

// Check verifies that source would compile, without building or caching a
// program. Validation paths use it to report diagnostics cheaply.
func (e *Engine) Check(source string) error {
	if len(source) > e.maxExpressionLength {
		return fmt.Errorf("%w: expression length %d exceeds maximum of %d",
			ErrCompile, len(source), e.maxExpressionLength)
	}

	env, err := e.getEnv()
	if err != nil {
		return fmt.Errorf("building expression environment: %w", err)
	}

	parsed, issues := env.Parse(source)
	if issues.Err() != nil {
		return newParseError(source, issues)
	}
	if _, issues = env.Check(parsed); issues.Err() != nil {
		return newCheckError(source, issues)
	}
	return nil
}

func (e *Engine) compile(source string) (*CompiledExpression, error) {
	env, err := e.getEnv()
	if err != nil {
		return nil, fmt.Errorf("building expression environment: %w", err)
	}

	parsed, issues := env.Parse(source)
	if issues.Err() != nil {
		return nil, newParseError(source, issues)
	}

	checked, issues := env.Check(parsed)
	if issues.Err() != nil {
		return nil, newCheckError(source, issues)
	}

	program, err := env.Program(checked, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: building program for %q: %w", ErrCompile, source, err)
	}

	return &CompiledExpression{source: source, program: program}, nil
}
