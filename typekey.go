package mydi

import (
	"reflect"
	"strconv"
	"strings"
)

// NameMode selects how TypeKeys render in errors and reports.
type NameMode int

const (
	// FullNames renders keys with full package paths.
	FullNames NameMode = iota
	// ShortNames strips package qualifiers, keeping generic brackets intact.
	ShortNames
)

// TypeKey identifies one registration slot in the container. It folds the
// base Go type with an optional string tag and optional generic parameter
// identities; two keys are equal exactly when all three match, so TypeKey
// works as a map key and compares by value.
type TypeKey struct {
	base   reflect.Type
	tag    string
	params string
}

// KeyOf returns the key for type T.
func KeyOf[T any]() TypeKey {
	return TypeKey{base: reflect.TypeOf((*T)(nil)).Elem()}
}

// KeyFor returns the key for a reflect.Type.
func KeyFor(t reflect.Type) TypeKey {
	if t == nil {
		panic("mydi: KeyFor called with nil type")
	}
	return TypeKey{base: t}
}

// WithTag returns a copy of the key carrying a string tag. Keys with
// different tags are distinct slots.
func (k TypeKey) WithTag(tag string) TypeKey {
	k.tag = tag
	return k
}

// WithParams folds explicit generic parameter identities into the key, for
// registrations whose type arguments are erased at the call site. Go
// generic instantiations already mint distinct base types per argument
// combination; WithParams covers keys assembled from raw reflect data.
func (k TypeKey) WithParams(params ...TypeKey) TypeKey {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Format(FullNames)
	}
	k.params = strings.Join(names, "|")
	return k
}

// Base returns the underlying Go type.
func (k TypeKey) Base() reflect.Type { return k.base }

// Tag returns the string tag, empty when untagged.
func (k TypeKey) Tag() string { return k.tag }

// IsZero reports whether k is the zero key.
func (k TypeKey) IsZero() bool { return k.base == nil }

// String renders the key with full package paths.
func (k TypeKey) String() string { return k.Format(FullNames) }

// Format renders the key for the given name mode.
func (k TypeKey) Format(mode NameMode) string {
	if k.base == nil {
		return "<nil>"
	}
	name := typeName(k.base)
	if mode == ShortNames {
		name = shortName(name)
	}
	if k.tag != "" {
		name += "#" + k.tag
	}
	if k.params != "" {
		p := k.params
		if mode == ShortNames {
			p = shortName(p)
		}
		name += "{" + p + "}"
	}
	return name
}

// typeName renders t with full package paths, recursing through the
// unnamed composite kinds reflect abbreviates.
func typeName(t reflect.Type) string {
	if t.Name() != "" {
		if t.PkgPath() != "" {
			return t.PkgPath() + "." + t.Name()
		}
		return t.Name()
	}
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + typeName(t.Elem())
	case reflect.Slice:
		return "[]" + typeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeName(t.Elem())
	case reflect.Map:
		return "map[" + typeName(t.Key()) + "]" + typeName(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + typeName(t.Elem())
		case reflect.SendDir:
			return "chan<- " + typeName(t.Elem())
		default:
			return "chan " + typeName(t.Elem())
		}
	default:
		return t.String()
	}
}

// shortName drops package qualifiers from a rendered type name. The scan
// is bracket-aware so generic arguments are trimmed independently:
//
//	github.com/a14e/mydi.Tagged[github.com/acme/app.DB,github.com/acme/app.Primary]
//
// becomes Tagged[DB,Primary].
func shortName(full string) string {
	var sb strings.Builder
	sb.Grow(len(full))
	start := 0
	flush := func(end int) {
		seg := full[start:end]
		if i := strings.LastIndexByte(seg, '.'); i >= 0 {
			seg = seg[i+1:]
		}
		sb.WriteString(seg)
	}
	for i := 0; i < len(full); i++ {
		switch full[i] {
		case '[', ']', ',', '*', ' ', '(', ')', '{', '}', '|', '#':
			flush(i)
			sb.WriteByte(full[i])
			start = i + 1
		}
	}
	flush(len(full))
	return sb.String()
}
