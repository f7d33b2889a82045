package mydi

import (
	"fmt"
	"reflect"
	"strings"
)

// InjectOption configures a struct registration.
type InjectOption func(*injectConfig)

type injectConfig struct {
	defaults map[string]defaultFn
}

type defaultFn struct {
	typ reflect.Type
	fn  func() any
}

// WithDefault resolves the named exported field with fn instead of the
// container. The function's result type must be assignable to the field.
func WithDefault[F any](field string, fn func() F) InjectOption {
	return func(c *injectConfig) {
		if c.defaults == nil {
			c.defaults = make(map[string]defaultFn)
		}
		c.defaults[field] = defaultFn{
			typ: reflect.TypeOf((*F)(nil)).Elem(),
			fn:  func() any { return fn() },
		}
	}
}

// Inject registers a recipe for struct type T assembled field by field.
// Exported fields become requirements keyed by their declared types, in
// declaration order; Lazy[X] fields become deferred requirements on X.
//
// Field tags adjust the wiring:
//
//	di:"-"            skip the field entirely
//	di:"default"      keep the zero value
//	di:"tag=primary"  require the field's type under a string tag
//
// Unexported fields are always skipped.
func Inject[T any](b *Binder, opts ...InjectOption) *Binder {
	origin := callerOrigin(1)
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("mydi: Inject needs a struct type, got %s", t))
	}

	var cfg injectConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	for field, def := range cfg.defaults {
		f, ok := t.FieldByName(field)
		if !ok || !f.IsExported() {
			panic(fmt.Sprintf("mydi: WithDefault: %s has no exported field %q", t, field))
		}
		if !def.typ.AssignableTo(f.Type) {
			panic(fmt.Sprintf("mydi: WithDefault: %s.%s wants %s, default returns %s", t, field, f.Type, def.typ))
		}
	}

	type fieldPlan struct {
		index int
		def   func() any
	}
	var reqs []Requirement
	var plans []fieldPlan

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("di")
		if tag == "-" {
			continue
		}
		if def, ok := cfg.defaults[f.Name]; ok {
			plans = append(plans, fieldPlan{index: i, def: def.fn})
			continue
		}
		if tag == "default" {
			continue
		}
		req := requirementForType(f.Type)
		if name, ok := strings.CutPrefix(tag, "tag="); ok {
			req.Key = req.Key.WithTag(name)
		}
		reqs = append(reqs, req)
		plans = append(plans, fieldPlan{index: i})
	}

	factory := func(deps []any) (any, error) {
		out := reflect.New(t).Elem()
		next := 0
		for _, p := range plans {
			if p.def != nil {
				if v := p.def(); v != nil {
					out.Field(p.index).Set(reflect.ValueOf(v))
				}
				continue
			}
			if deps[next] != nil {
				out.Field(p.index).Set(reflect.ValueOf(deps[next]))
			}
			next++
		}
		return out.Interface(), nil
	}

	b.add(&binderEntry{
		key:      KeyOf[T](),
		requires: reqs,
		factory:  factory,
		origin:   origin,
	})
	return b
}

// As registers a capability view: an entry producing interface I from the
// registered concrete type U. U must implement I; the check runs at
// registration.
func As[U any, I any](b *Binder) *Binder {
	ut := reflect.TypeOf((*U)(nil)).Elem()
	it := reflect.TypeOf((*I)(nil)).Elem()
	if it.Kind() != reflect.Interface {
		panic(fmt.Sprintf("mydi: As target %s is not an interface", it))
	}
	if !ut.Implements(it) {
		panic(fmt.Sprintf("mydi: %s does not implement %s", ut, it))
	}
	b.add(&binderEntry{
		key:      KeyOf[I](),
		requires: []Requirement{{Key: KeyOf[U]()}},
		factory: func(deps []any) (any, error) {
			u, err := safeAssert[U](deps[0])
			if err != nil {
				return nil, err
			}
			return any(u).(I), nil
		},
		origin: callerOrigin(1),
	})
	return b
}

// InjectFn0 registers a recipe with no requirements. The InjectFn1..9
// overloads in inject_generated.go cover factories with dependencies.
func InjectFn0[R any](b *Binder, factory func() (R, error)) *Binder {
	b.add(&binderEntry{
		key: KeyOf[R](),
		factory: func(deps []any) (any, error) {
			return factory()
		},
		origin: callerOrigin(1),
	})
	return b
}
