package zplot

import (
	"log/slog"
	"sync"

	"github.com/helicoid/zplot/pkg/cache"
	"github.com/helicoid/zplot/pkg/cplx"
	"github.com/helicoid/zplot/pkg/evaluator"
	"github.com/helicoid/zplot/pkg/glsl"
	"github.com/helicoid/zplot/pkg/parser"
	"github.com/helicoid/zplot/pkg/symbols"
	"github.com/helicoid/zplot/pkg/types"
)

// DefaultExpression is the known-good identity expression every Program is
// seeded with before first use.
const DefaultExpression = symbols.FreeVariable

// compiled is one consistent compiled state: the AST together with both
// derived artifacts. It is replaced wholesale and never mutated, so readers
// can never observe a shader source paired with an evaluator from a
// different AST.
type compiled struct {
	expr   *types.Expression
	eval   evaluator.Func
	shader string
}

// Program owns the current compiled expression and both of its derived
// artifacts.
//
// Every Recompile either succeeds and atomically replaces the AST, the
// evaluator and the shader source together, or fails and leaves the prior
// state completely untouched — a failed edit never leaves the caller
// without a usable expression. Readers (Evaluate, ShaderSource, Source)
// are safe to call concurrently with each other and with Recompile.
type Program struct {
	mu      sync.RWMutex
	current *compiled

	logger *slog.Logger
	cache  *cache.Cache
}

// ProgramOptions holds Program configuration.
type ProgramOptions struct {
	// Source is the expression the Program is seeded with.
	// Defaults to DefaultExpression.
	Source string
	// Caching enables LRU caching of parsed expressions by source string.
	Caching bool
	// CacheSize sets the maximum number of cached expressions.
	// Only used when Caching is true and no explicit Cache is provided.
	CacheSize int
	// Cache is a custom expression cache. If non-nil, Caching is implicitly
	// enabled.
	Cache *cache.Cache
	// Logger for structured logging.
	Logger *slog.Logger
}

// ProgramOption configures a Program.
type ProgramOption func(*ProgramOptions)

// WithSource seeds the Program with an expression other than the default.
func WithSource(source string) ProgramOption {
	return func(opts *ProgramOptions) {
		opts.Source = source
	}
}

// WithCaching enables or disables expression caching.
func WithCaching(enabled bool) ProgramOption {
	return func(opts *ProgramOptions) {
		opts.Caching = enabled
	}
}

// WithCacheSize sets the maximum number of cached expressions.
// Only effective when combined with WithCaching(true).
func WithCacheSize(size int) ProgramOption {
	return func(opts *ProgramOptions) {
		opts.CacheSize = size
	}
}

// WithCache attaches an external expression cache.
func WithCache(c *cache.Cache) ProgramOption {
	return func(opts *ProgramOptions) {
		opts.Cache = c
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ProgramOption {
	return func(opts *ProgramOptions) {
		opts.Logger = logger
	}
}

// NewProgram creates a Program seeded with a known-good expression (the
// identity over the free variable unless WithSource overrides it). It
// fails only if the seed expression does not compile.
func NewProgram(opts ...ProgramOption) (*Program, error) {
	options := ProgramOptions{
		Source: DefaultExpression,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	var c *cache.Cache
	if options.Cache != nil {
		c = options.Cache
	} else if options.Caching {
		c = cache.New(options.CacheSize)
	}

	p := &Program{
		logger: options.Logger,
		cache:  c,
	}
	if err := p.Recompile(options.Source); err != nil {
		return nil, err
	}
	return p, nil
}

// Recompile compiles source and, on success, atomically replaces the
// current expression and both derived artifacts. On failure the previous
// compiled state stays in effect and the error describes the offending
// token or construct.
func (p *Program) Recompile(source string) error {
	expr, err := p.compile(source)
	if err != nil {
		p.logger.Debug("recompile rejected", "source", source, "error", err)
		return err
	}

	eval, err := evaluator.Compile(expr.AST())
	if err != nil {
		p.logger.Debug("recompile rejected", "source", source, "error", err)
		return err
	}
	next := &compiled{
		expr:   expr,
		eval:   eval,
		shader: glsl.Emit(expr.AST()),
	}

	p.mu.Lock()
	p.current = next
	p.mu.Unlock()

	p.logger.Debug("recompiled", "source", source)
	return nil
}

func (p *Program) compile(source string) (*types.Expression, error) {
	if p.cache != nil {
		return p.cache.GetOrCompile(source, func() (*types.Expression, error) {
			return parser.Compile(source)
		})
	}
	return parser.Compile(source)
}

// Evaluate evaluates the current expression at one point.
func (p *Program) Evaluate(z cplx.Complex) cplx.Complex {
	p.mu.RLock()
	fn := p.current.eval
	p.mu.RUnlock()
	return fn(z)
}

// ShaderSource returns the shader function definition generated from the
// current expression.
func (p *Program) ShaderSource() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.shader
}

// FragmentSource returns the companion routine library followed by the
// current shader function, ready to splice into a fragment program.
func (p *Program) FragmentSource() string {
	return glsl.Prelude + "\n" + p.ShaderSource()
}

// Source returns the source text of the current expression.
func (p *Program) Source() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.expr.Source()
}

// Expression returns the current compiled expression.
func (p *Program) Expression() *types.Expression {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.expr
}
