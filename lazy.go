package mydi

// lazyCell is the write-once backing store shared by every Lazy handle
// pointing at the same target key within one build.
type lazyCell struct {
	target TypeKey
	value  any
	filled bool
}

func (c *lazyCell) fill(v any) {
	if c.filled {
		panic("mydi: internal: lazy cell for " + c.target.String() + " filled twice")
	}
	c.value = v
	c.filled = true
}

// Lazy is a deferred handle to a component of type T. Declaring a Lazy[T]
// requirement breaks a dependency cycle: the handle is delivered to the
// factory while the graph is still being assembled and becomes readable
// once the whole container is built.
//
// The zero Lazy is never filled; usable handles are always allocated by
// the engine. Handles may be copied freely; all copies share one cell.
type Lazy[T any] struct {
	cell *lazyCell
}

// Get returns the target value. Before the back-fill pass of the build it
// returns a *NotFilledError.
func (l Lazy[T]) Get() (T, error) {
	if l.cell == nil {
		var zero T
		return zero, &NotFilledError{Key: KeyOf[T]()}
	}
	if !l.cell.filled {
		var zero T
		return zero, &NotFilledError{Key: l.cell.target}
	}
	return safeAssert[T](l.cell.value)
}

// MustGet returns the target value or panics on an unfilled handle.
func (l Lazy[T]) MustGet() T {
	v, err := l.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Filled reports whether the handle can be read.
func (l Lazy[T]) Filled() bool {
	return l.cell != nil && l.cell.filled
}

// Key returns the TypeKey the handle resolves to.
func (l Lazy[T]) Key() TypeKey {
	if l.cell != nil {
		return l.cell.target
	}
	return KeyOf[T]()
}

// lazyMarker lets the engine recognize Lazy-shaped requirement slots
// without knowing T.
type lazyMarker interface {
	lazyTarget() TypeKey
	lazyNested() bool
	wrapLazyCell(c *lazyCell) any
}

func (Lazy[T]) lazyTarget() TypeKey { return KeyOf[T]() }

func (Lazy[T]) lazyNested() bool {
	var probe T
	_, ok := any(probe).(lazyMarker)
	return ok
}

func (Lazy[T]) wrapLazyCell(c *lazyCell) any { return Lazy[T]{cell: c} }
