package mydi

import "sort"

// Injector is the frozen result of a successful Build. It never changes
// after construction, so any number of goroutines may read it without
// locking. Reads return values as stored: value types copy on return,
// pointers share their referent.
type Injector struct {
	store map[TypeKey]any
}

// Get returns the value stored for type T.
func Get[T any](inj *Injector) (T, error) {
	return GetKey[T](inj, KeyOf[T]())
}

// GetKey returns the value stored under an explicit key, for tagged or
// parameterized slots.
func GetKey[T any](inj *Injector, key TypeKey) (T, error) {
	v, ok := inj.store[key]
	if !ok {
		var zero T
		return zero, &NotFoundError{Key: key}
	}
	return safeAssert[T](v)
}

// MustGet returns the value for T or panics. For wiring code where an
// absent key is a programming error.
func MustGet[T any](inj *Injector) T {
	v, err := Get[T](inj)
	if err != nil {
		panic(err)
	}
	return v
}

// MustGetKey is MustGet for an explicit key.
func MustGetKey[T any](inj *Injector, key TypeKey) T {
	v, err := GetKey[T](inj, key)
	if err != nil {
		panic(err)
	}
	return v
}

// Lookup returns the raw stored value for key.
func (inj *Injector) Lookup(key TypeKey) (any, bool) {
	v, ok := inj.store[key]
	return v, ok
}

// Len returns the number of stored keys.
func (inj *Injector) Len() int {
	return len(inj.store)
}

// Keys returns every stored key, sorted by rendered name for stable
// output.
func (inj *Injector) Keys() []TypeKey {
	keys := make([]TypeKey, 0, len(inj.store))
	for k := range inj.store {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
