package lint

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-skalski/commitlint/pkg/commit"
	"github.com/smykla-skalski/commitlint/pkg/config"
	"github.com/smykla-skalski/commitlint/pkg/logger"
)

// DefaultConcurrency bounds the number of messages linted in parallel by LintAll.
const DefaultConcurrency = 8

// Linter evaluates messages against a config rule table.
type Linter struct {
	cfg         *config.Config
	registry    *Registry
	ignores     []config.Ignore
	logger      logger.Logger
	concurrency int
}

// Option configures a Linter.
type Option func(*Linter)

// WithLogger sets the logger for the linter.
func WithLogger(log logger.Logger) Option {
	return func(l *Linter) {
		l.logger = log
	}
}

// WithRegistry replaces the built-in rule registry.
func WithRegistry(registry *Registry) Option {
	return func(l *Linter) {
		l.registry = registry
	}
}

// WithIgnores adds ignore predicates on top of the configured ones.
func WithIgnores(ignores ...config.Ignore) Option {
	return func(l *Linter) {
		l.ignores = append(l.ignores, ignores...)
	}
}

// WithConcurrency sets the LintAll parallelism. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(l *Linter) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// New creates a Linter for cfg. Every rule name in cfg must be registered.
func New(cfg *config.Config, opts ...Option) (*Linter, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	l := &Linter{
		cfg:         cfg,
		registry:    DefaultRegistry(),
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.logger == nil {
		l.logger = logger.NewNoOpLogger()
	}

	for _, name := range cfg.Rules.Names() {
		if _, ok := l.registry.Get(name); !ok {
			return nil, errors.Wrapf(ErrUnknownRule, "%q", name)
		}
	}

	configured, err := config.CompileIgnores(cfg.Ignores)
	if err != nil {
		return nil, err
	}

	l.ignores = append(configured, l.ignores...)

	if cfg.UseDefaultIgnores() {
		l.ignores = append(l.ignores, DefaultIgnores()...)
	}

	return l, nil
}

// Lint evaluates a single message. Rules run in lexical name order.
func (l *Linter) Lint(_ context.Context, message string) *Outcome {
	outcome := &Outcome{Input: message, Valid: true}

	for _, ignore := range l.ignores {
		if ignore.Match(message) {
			l.logger.Debug("message ignored", "ignore", ignore.Name)

			outcome.Ignored = true
			outcome.IgnoredBy = ignore.Name

			return outcome
		}
	}

	parsed := commit.Parse(message)
	outcome.Commit = newParsed(parsed)

	for _, name := range l.cfg.Rules.Names() {
		def := l.cfg.Rules[name]
		if !def.IsActive() {
			continue
		}

		rule, ok := l.registry.Get(name)
		if !ok {
			continue
		}

		if msg := rule.Validate(parsed, def); msg != "" {
			l.logger.Debug("rule failed",
				"rule", name,
				"level", def.Level.String(),
				"message", msg,
			)

			outcome.add(Problem{Level: def.Level, Name: name, Message: msg})
		}
	}

	l.logger.Debug("lint complete",
		"valid", outcome.Valid,
		"errors", len(outcome.Errors),
		"warnings", len(outcome.Warnings),
	)

	return outcome
}

// LintAll lints messages concurrently and returns outcomes in input order.
func (l *Linter) LintAll(ctx context.Context, messages []string) ([]*Outcome, error) {
	outcomes := make([]*Outcome, len(messages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, message := range messages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcomes[i] = l.Lint(gctx, message)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "linting messages")
	}

	return outcomes, nil
}

// Summary aggregates several outcomes.
type Summary struct {
	Total    int `json:"total"`
	Valid    int `json:"valid"`
	Ignored  int `json:"ignored"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Summarize counts outcomes and problems.
func Summarize(outcomes []*Outcome) Summary {
	s := Summary{Total: len(outcomes)}

	for _, o := range outcomes {
		if o.Valid {
			s.Valid++
		}

		if o.Ignored {
			s.Ignored++
		}

		s.Errors += len(o.Errors)
		s.Warnings += len(o.Warnings)
	}

	return s
}
