package mydi

// Extension provides hooks into the build lifecycle. Implementations
// usually embed BaseExtension and override what they need.
type Extension interface {
	// Name returns the extension's name
	Name() string

	// Order determines extension hook order (lower = earlier)
	Order() int

	// Init is called when the extension is installed on a binder
	Init(b *Binder) error

	// Wrap intercepts one factory invocation during Build
	Wrap(next func() (any, error), op *Operation) (any, error)

	// OnError is called when a factory invocation fails
	OnError(err error, op *Operation)

	// OnBuildEnd is called once per Build with the outcome
	OnBuildEnd(inj *Injector, err error)
}

// BaseExtension provides default implementations for Extension methods
type BaseExtension struct {
	name string
}

// NewBaseExtension creates a new base extension with the given name
func NewBaseExtension(name string) BaseExtension {
	return BaseExtension{name: name}
}

func (e *BaseExtension) Name() string {
	return e.name
}

func (e *BaseExtension) Order() int {
	return 100
}

func (e *BaseExtension) Init(b *Binder) error {
	return nil
}

func (e *BaseExtension) Wrap(next func() (any, error), op *Operation) (any, error) {
	return next()
}

func (e *BaseExtension) OnError(err error, op *Operation) {
}

func (e *BaseExtension) OnBuildEnd(inj *Injector, err error) {
}

// Operation describes the factory invocation being observed
type Operation struct {
	Kind   OperationKind
	Key    TypeKey
	Origin string
}

// OperationKind represents the type of operation
type OperationKind string

const (
	// OpResolve indicates a component factory invocation
	OpResolve OperationKind = "resolve"
)
