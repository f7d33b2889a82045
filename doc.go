// Package mydi provides a runtime dependency-injection container for Go.
//
// # Overview
//
// mydi organizes wiring around three core concepts:
//
//  1. Binder: an accumulator of component recipes and prebuilt instances
//  2. Injector: the immutable, fully-wired result of a successful build
//  3. Lazy handles: write-once references that break dependency cycles
//
// Components are identified by TypeKey, which folds the Go type with an
// optional tag and generic parameters. Registration order never matters:
// the build pass orders construction topologically.
//
// # Basic Usage
//
// Register recipes and instances, then build:
//
//	b := mydi.NewBinder()
//
//	b.Instance(&Config{Port: 8080})
//
//	mydi.InjectFn1(b, func(cfg *Config) (*Server, error) {
//	    return NewServer(cfg.Port), nil
//	})
//
//	inj, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	srv, err := mydi.Get[*Server](inj)
//
// Struct components can be assembled field by field:
//
//	type App struct {
//	    Server *Server
//	    DB     *sql.DB
//	}
//
//	mydi.Inject[App](b)
//
// # Deferred Handles
//
// A Lazy[T] requirement breaks a cycle: the consumer's factory receives a
// handle instead of the value, and the handle becomes readable once the
// whole container is built.
//
//	type Notifier struct {
//	    Detector mydi.Lazy[*Detector]
//	}
//
//	mydi.Inject[Notifier](b)
//
//	// later, after Build:
//	d, err := notifier.Detector.Get()
//
// Lazy-of-Lazy requirements are rejected before graph analysis. Reading a
// handle before the build's back-fill pass returns *NotFilledError.
//
// # Tags
//
// Several values of one type can coexist under distinct keys, either with
// phantom tag types:
//
//	type Primary struct{}
//	type Replica struct{}
//
//	b.Instance(mydi.NewTagged[*sql.DB, Primary](primaryDB))
//	b.Instance(mydi.NewTagged[*sql.DB, Replica](replicaDB))
//
// or with string tags:
//
//	b.InstanceTag("primary", primaryDB)
//	db, err := mydi.GetKey[*sql.DB](inj, mydi.KeyOf[*sql.DB]().WithTag("primary"))
//
// # Verification
//
// Verify proves a graph buildable without constructing anything:
//
//	if err := b.Verify(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// partial graphs: seed keys count as satisfied
//	err := b.Verify(mydi.WithSeeds(mydi.KeyOf[*sql.DB]()))
//
//	// structured defect listing
//	rep := b.Report(mydi.WithNameMode(mydi.ShortNames))
//	fmt.Println(rep)
//
// One pass surfaces every defect class at once: duplicate registrations,
// nested lazy handles, missing producers, and dependency cycles.
//
// # Extensions
//
// Extensions hook the build through a middleware chain:
//
//	type TimingExtension struct {
//	    mydi.BaseExtension
//	}
//
//	func (e *TimingExtension) Wrap(next func() (any, error), op *mydi.Operation) (any, error) {
//	    start := time.Now()
//	    result, err := next()
//	    log.Printf("%s built in %v", op.Key, time.Since(start))
//	    return result, err
//	}
//
//	b := mydi.NewBinder(mydi.WithExtension(&TimingExtension{
//	    BaseExtension: mydi.NewBaseExtension("timing"),
//	}))
//
// # Thread Safety
//
// A Binder is single-owner: assemble and build it from one goroutine. The
// Injector produced by Build is immutable and safe for any number of
// concurrent readers without locking.
package mydi
