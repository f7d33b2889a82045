package mydi

import (
	"fmt"
	"strings"
)

// DuplicateComponentError reports registrations that collided on a live
// TypeKey, or a Merge whose operands intersect.
type DuplicateComponentError struct {
	Keys []TypeKey
	mode NameMode
}

func (e *DuplicateComponentError) Error() string {
	return "mydi: duplicate components: " + joinKeys(e.Keys, e.mode)
}

// MissingDependency names a required key nobody produces, the first
// consumer found requiring it, and where that consumer was registered.
type MissingDependency struct {
	Key      TypeKey
	Consumer TypeKey
	Origin   string
}

// MissingDependencyError reports required keys without a producer.
type MissingDependencyError struct {
	Missing []MissingDependency
	mode    NameMode
}

func (e *MissingDependencyError) Error() string {
	var sb strings.Builder
	sb.WriteString("mydi: missing dependencies:")
	for _, m := range e.Missing {
		sb.WriteString("\n  ")
		sb.WriteString(m.Key.Format(e.mode))
		if !m.Consumer.IsZero() {
			sb.WriteString(" required by ")
			sb.WriteString(m.Consumer.Format(e.mode))
		}
		if m.Origin != "" {
			sb.WriteString(" (registered at ")
			sb.WriteString(m.Origin)
			sb.WriteString(")")
		}
	}
	return sb.String()
}

// CycleError reports dependency cycles. Each cycle lists its keys in edge
// order starting from the earliest registered participant; keys merely
// blocked behind a cycle are not listed.
type CycleError struct {
	Cycles [][]TypeKey
	mode   NameMode
}

func (e *CycleError) Error() string {
	var sb strings.Builder
	sb.WriteString("mydi: dependency cycles:")
	for _, cycle := range e.Cycles {
		sb.WriteString("\n  ")
		for i, k := range cycle {
			if i > 0 {
				sb.WriteString(" -> ")
			}
			sb.WriteString(k.Format(e.mode))
		}
		if len(cycle) > 0 {
			sb.WriteString(" -> ")
			sb.WriteString(cycle[0].Format(e.mode))
		}
	}
	return sb.String()
}

// InvalidLazyNestingError reports deferred requirements whose target is
// itself a deferred handle. Nesting never has a well-defined fill order,
// so it is rejected before any graph analysis.
type InvalidLazyNestingError struct {
	Keys []TypeKey
	mode NameMode
}

func (e *InvalidLazyNestingError) Error() string {
	return "mydi: nested lazy dependencies: " + joinKeys(e.Keys, e.mode)
}

// NotFoundError reports a read of a key the Injector does not hold.
type NotFoundError struct {
	Key TypeKey
}

func (e *NotFoundError) Error() string {
	return "mydi: no value for " + e.Key.String()
}

// NotFilledError reports a Lazy handle read before the back-fill pass of
// the build that allocated it.
type NotFilledError struct {
	Key TypeKey
}

func (e *NotFilledError) Error() string {
	return "mydi: lazy handle for " + e.Key.String() + " read before the container was built"
}

// ResolveError wraps a factory failure with the key being built and its
// registration origin.
type ResolveError struct {
	Key    TypeKey
	Origin string
	Err    error
}

func (e *ResolveError) Error() string {
	if e.Origin != "" {
		return fmt.Sprintf("mydi: building %s (registered at %s): %v", e.Key, e.Origin, e.Err)
	}
	return fmt.Sprintf("mydi: building %s: %v", e.Key, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

func joinKeys(keys []TypeKey, mode NameMode) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.Format(mode)
	}
	return strings.Join(names, ", ")
}

// safeAssert narrows a stored value to T with a descriptive error instead
// of a panic on shape mismatch.
func safeAssert[T any](value any) (T, error) {
	if value == nil {
		var zero T
		return zero, nil
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("mydi: type assertion: expected %T, got %T", zero, value)
	}
	return typed, nil
}
