package mydi

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"sort"
)

// Binder accumulates component registrations. Entries are recorded in any
// order and individual registrations never fail: structural defects are
// collected and surface when Build or Verify runs. Registration methods
// return the receiver for chaining.
//
// A Binder is not safe for concurrent use; assemble it from one goroutine.
type Binder struct {
	entries    map[TypeKey]*binderEntry
	order      []TypeKey
	duplicates []DuplicateKey
	last       TypeKey
	extensions []Extension
}

// DuplicateKey records a registration that collided with a live key.
type DuplicateKey struct {
	Key    TypeKey
	Origin string
}

// BinderOption is a modifier for binders.
type BinderOption func(*Binder)

// WithExtension returns an option that installs an extension on a binder.
func WithExtension(ext Extension) BinderOption {
	return func(b *Binder) {
		if err := b.Use(ext); err != nil {
			panic(err)
		}
	}
}

// NewBinder creates an empty binder with optional configuration.
func NewBinder(opts ...BinderOption) *Binder {
	b := &Binder{
		entries: make(map[TypeKey]*binderEntry),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Use installs an extension. Extensions wrap factory invocations during
// Build in ascending Order().
func (b *Binder) Use(ext Extension) error {
	b.extensions = append(b.extensions, ext)
	sort.SliceStable(b.extensions, func(i, j int) bool {
		return b.extensions[i].Order() < b.extensions[j].Order()
	})
	return ext.Init(b)
}

// add stores an entry. A collision with a live key keeps the first entry
// and records the defect for Build and Verify to reject.
func (b *Binder) add(e *binderEntry) {
	if _, exists := b.entries[e.key]; exists {
		b.duplicates = append(b.duplicates, DuplicateKey{Key: e.key, Origin: e.origin})
	} else {
		b.entries[e.key] = e
		b.order = append(b.order, e.key)
	}
	b.last = e.key
}

// Instance registers a prebuilt value under its own type's key.
func (b *Binder) Instance(v any) *Binder {
	b.instance("", v, callerOrigin(1))
	return b
}

// InstanceTag registers a prebuilt value under its type's key carrying a
// string tag, so several values of one type can coexist.
func (b *Binder) InstanceTag(tag string, v any) *Binder {
	b.instance(tag, v, callerOrigin(1))
	return b
}

func (b *Binder) instance(tag string, v any, origin string) {
	if v == nil {
		panic("mydi: Instance called with nil value")
	}
	key := KeyFor(reflect.TypeOf(v))
	if tag != "" {
		key = key.WithTag(tag)
	}
	b.add(&binderEntry{
		key:      key,
		instance: v,
		prebuilt: true,
		origin:   origin,
	})
}

// Expand registers every exported field of a struct value as a separate
// instance under the field's own type key. Fields tagged `di:"-"` are
// skipped. Typical use: a decoded configuration struct whose fields are
// distinct named types.
func (b *Binder) Expand(v any) *Binder {
	origin := callerOrigin(1)
	if v == nil {
		panic("mydi: Expand called with nil value")
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		panic(fmt.Sprintf("mydi: Expand needs a struct, got %T", v))
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() || f.Tag.Get("di") == "-" {
			continue
		}
		b.add(&binderEntry{
			key:      KeyFor(f.Type),
			instance: rv.Field(i).Interface(),
			prebuilt: true,
			origin:   origin,
		})
	}
	return b
}

// AutoPtr registers a pointer view of the most recently produced key: a
// recipe for *U requiring U. The tag and generic parameters of the wrapped
// key carry over.
func (b *Binder) AutoPtr() *Binder {
	if b.last.IsZero() {
		panic("mydi: AutoPtr needs a preceding registration")
	}
	wrapped := b.last
	key := TypeKey{base: reflect.PointerTo(wrapped.base), tag: wrapped.tag, params: wrapped.params}
	b.add(&binderEntry{
		key:      key,
		requires: []Requirement{{Key: wrapped}},
		factory: func(deps []any) (any, error) {
			p := reflect.New(wrapped.base)
			if deps[0] != nil {
				p.Elem().Set(reflect.ValueOf(deps[0]))
			}
			return p.Interface(), nil
		},
		origin: callerOrigin(1),
	})
	return b
}

// Void clears the last-produced marker so a following AutoPtr cannot bind
// to an unrelated registration.
func (b *Binder) Void() *Binder {
	b.last = TypeKey{}
	return b
}

// Register stores a raw component entry. This is the boundary for
// generated or hand-assembled recipes; the typed helpers are usually more
// convenient.
func (b *Binder) Register(e ComponentEntry) *Binder {
	if e.Produced.IsZero() {
		panic("mydi: Register needs a produced key")
	}
	if e.Factory == nil {
		panic("mydi: Register needs a factory")
	}
	origin := e.Origin
	if origin == "" {
		origin = callerOrigin(1)
	}
	b.add(&binderEntry{
		key:      e.Produced,
		requires: e.Requires,
		factory:  e.Factory,
		origin:   origin,
	})
	return b
}

// Merge copies every entry of other into b. When any key is live in both,
// Merge fails with a *DuplicateComponentError naming the intersection and
// neither binder changes. After a successful merge the last-produced
// marker is cleared; other remains usable.
func (b *Binder) Merge(other *Binder) error {
	var clash []TypeKey
	for _, k := range other.order {
		if _, exists := b.entries[k]; exists {
			clash = append(clash, k)
		}
	}
	if len(clash) > 0 {
		return &DuplicateComponentError{Keys: clash}
	}
	for _, k := range other.order {
		b.entries[k] = other.entries[k]
		b.order = append(b.order, k)
	}
	b.duplicates = append(b.duplicates, other.duplicates...)
	if len(other.extensions) > 0 {
		b.extensions = append(b.extensions, other.extensions...)
		sort.SliceStable(b.extensions, func(i, j int) bool {
			return b.extensions[i].Order() < b.extensions[j].Order()
		})
	}
	b.last = TypeKey{}
	return nil
}

// Keys returns the live registered keys in registration order.
func (b *Binder) Keys() []TypeKey {
	keys := make([]TypeKey, len(b.order))
	copy(keys, b.order)
	return keys
}

// Len returns the number of live registrations.
func (b *Binder) Len() int {
	return len(b.entries)
}

// Requirements returns the requirement list of the live entry for key,
// nil when the key is unregistered. Extensions use it to walk the graph.
func (b *Binder) Requirements(key TypeKey) []Requirement {
	e, ok := b.entries[key]
	if !ok {
		return nil
	}
	reqs := make([]Requirement, len(e.requires))
	copy(reqs, e.requires)
	return reqs
}

// callerOrigin captures the file:line of a registration site.
func callerOrigin(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
