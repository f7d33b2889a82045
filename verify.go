package mydi

import (
	"errors"
	"strings"
)

// VerifyOption configures a verification pass.
type VerifyOption func(*verifyConfig)

type verifyConfig struct {
	seeds []TypeKey
	mode  NameMode
}

// WithSeeds marks keys as satisfied externally: requirements on them pass
// without a registration. Use it to check a partial graph whose remaining
// pieces arrive from another Binder later.
func WithSeeds(keys ...TypeKey) VerifyOption {
	return func(c *verifyConfig) {
		c.seeds = append(c.seeds, keys...)
	}
}

// WithNameMode selects how keys render in the resulting errors and report.
func WithNameMode(mode NameMode) VerifyOption {
	return func(c *verifyConfig) {
		c.mode = mode
	}
}

// Verify checks the graph without constructing anything. A nil result
// means Build, with the seed keys additionally registered, would succeed
// structurally; factory behavior is not evaluated.
func (b *Binder) Verify(opts ...VerifyOption) error {
	return b.Report(opts...).Err()
}

// Report runs the same analysis as Verify and returns the full structural
// report instead of folding it into an error.
func (b *Binder) Report(opts ...VerifyOption) *Report {
	var cfg verifyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return b.analyze(cfg.seeds, cfg.mode)
}

// Report is the structured result of one verification pass. Every defect
// class is populated in the same pass, so one run surfaces everything.
type Report struct {
	// Duplicates lists registrations that collided with a live key.
	Duplicates []DuplicateKey
	// NestedLazy lists deferred targets that are themselves deferred.
	NestedLazy []TypeKey
	// Missing lists required keys nobody produces.
	Missing []MissingDependency
	// Cycles lists non-deferred dependency cycles in edge order.
	Cycles [][]TypeKey

	order []TypeKey
	mode  NameMode
}

// OK reports whether the graph has no structural defects.
func (r *Report) OK() bool {
	return len(r.Duplicates) == 0 && len(r.NestedLazy) == 0 &&
		len(r.Missing) == 0 && len(r.Cycles) == 0
}

// Err folds the report into an error: one typed error per defect class,
// joined in check order (duplicates, nested lazy, missing, cycles). Nil
// when the report is clean.
func (r *Report) Err() error {
	var errs []error
	if len(r.Duplicates) > 0 {
		keys := make([]TypeKey, len(r.Duplicates))
		for i, d := range r.Duplicates {
			keys[i] = d.Key
		}
		errs = append(errs, &DuplicateComponentError{Keys: keys, mode: r.mode})
	}
	if len(r.NestedLazy) > 0 {
		errs = append(errs, &InvalidLazyNestingError{Keys: r.NestedLazy, mode: r.mode})
	}
	if len(r.Missing) > 0 {
		errs = append(errs, &MissingDependencyError{Missing: r.Missing, mode: r.mode})
	}
	if len(r.Cycles) > 0 {
		errs = append(errs, &CycleError{Cycles: r.Cycles, mode: r.mode})
	}
	return errors.Join(errs...)
}

// String renders the report for humans.
func (r *Report) String() string {
	if r.OK() {
		return "dependency graph OK"
	}

	var sb strings.Builder
	sb.WriteString("dependency graph check failed\n")
	if len(r.Duplicates) > 0 {
		sb.WriteString("duplicates:\n")
		for _, d := range r.Duplicates {
			sb.WriteString("  ")
			sb.WriteString(d.Key.Format(r.mode))
			if d.Origin != "" {
				sb.WriteString(" (registered at ")
				sb.WriteString(d.Origin)
				sb.WriteString(")")
			}
			sb.WriteString("\n")
		}
	}
	if len(r.NestedLazy) > 0 {
		sb.WriteString("nested lazy handles:\n")
		for _, k := range r.NestedLazy {
			sb.WriteString("  ")
			sb.WriteString(k.Format(r.mode))
			sb.WriteString("\n")
		}
	}
	if len(r.Missing) > 0 {
		sb.WriteString("missing:\n")
		for _, m := range r.Missing {
			sb.WriteString("  ")
			sb.WriteString(m.Key.Format(r.mode))
			if !m.Consumer.IsZero() {
				sb.WriteString(" required by ")
				sb.WriteString(m.Consumer.Format(r.mode))
			}
			if m.Origin != "" {
				sb.WriteString(" (registered at ")
				sb.WriteString(m.Origin)
				sb.WriteString(")")
			}
			sb.WriteString("\n")
		}
	}
	if len(r.Cycles) > 0 {
		sb.WriteString("cycles:\n")
		for _, cycle := range r.Cycles {
			sb.WriteString("  ")
			for i, k := range cycle {
				if i > 0 {
					sb.WriteString(" -> ")
				}
				sb.WriteString(k.Format(r.mode))
			}
			if len(cycle) > 0 {
				sb.WriteString(" -> ")
				sb.WriteString(cycle[0].Format(r.mode))
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
