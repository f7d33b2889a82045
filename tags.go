package mydi

// Tagged wraps a value of type T with a phantom Tag type so several
// values of one underlying type can be registered side by side. The Tag
// parameter carries no data; any empty struct works:
//
//	type Primary struct{}
//	type Replica struct{}
//
//	b.Instance(mydi.NewTagged[*sql.DB, Primary](primaryDB))
//	b.Instance(mydi.NewTagged[*sql.DB, Replica](replicaDB))
//
// Each Tag instantiation mints its own TypeKey, so the two registrations
// never collide and resolve independently.
type Tagged[T any, Tag any] struct {
	value T
}

// NewTagged wraps v under Tag.
func NewTagged[T any, Tag any](v T) Tagged[T, Tag] {
	return Tagged[T, Tag]{value: v}
}

// Unwrap returns the wrapped value.
func (t Tagged[T, Tag]) Unwrap() T {
	return t.value
}

// Map applies f to the wrapped value, keeping the tag.
func (t Tagged[T, Tag]) Map(f func(T) T) Tagged[T, Tag] {
	t.value = f(t.value)
	return t
}

// Retag moves a wrapped value under another tag.
func Retag[NewTag any, T any, OldTag any](t Tagged[T, OldTag]) Tagged[T, NewTag] {
	return Tagged[T, NewTag]{value: t.value}
}
