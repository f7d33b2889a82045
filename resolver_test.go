package mydi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resPair struct {
	Small uint32
	Big   uint64
}

type resReporter struct{ Sum uint64 }

type resLeaf struct{ Name string }

type resHolder struct{ Got bool }

type cycleA struct {
	Beta Lazy[cycleB]
}

type cycleB struct {
	Alpha cycleA
	Num   uint32
}

type cycNode1 struct{ N int }

type cycNode2 struct{ N int }

type cycNode3 struct{ N int }

type cycSelf struct{ N int }

type diaBase struct{ ID int }

type diaLeft struct{ B diaBase }

type diaRight struct{ B diaBase }

type diaTop struct {
	L diaLeft
	R diaRight
}

// permute returns every ordering of items.
func permute(items []int) [][]int {
	if len(items) <= 1 {
		out := make([]int, len(items))
		copy(out, items)
		return [][]int{out}
	}
	var all [][]int
	for i := range items {
		rest := make([]int, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, tail := range permute(rest) {
			all = append(all, append([]int{items[i]}, tail...))
		}
	}
	return all
}

//
// -----------------------------------------------------------------------------
// Ordering
// -----------------------------------------------------------------------------

// TestBuild_OrderIndependent verifies a consumer registered before its
// dependencies still receives the right values.
func TestBuild_OrderIndependent(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	InjectFn2(b, func(small uint32, big uint64) (resPair, error) {
		return resPair{Small: small, Big: big}, nil
	})
	b.Instance(uint64(2))
	InjectFn1(b, func(p resPair) (resReporter, error) {
		return resReporter{Sum: uint64(p.Small) + p.Big}, nil
	})
	b.Instance(uint32(1))

	inj, err := b.Build()
	require.NoError(t, err)

	pair, err := Get[resPair](inj)
	require.NoError(t, err)
	assert.Equal(t, resPair{Small: 1, Big: 2}, pair)

	rep, err := Get[resReporter](inj)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), rep.Sum)
}

// TestBuild_AllPermutations verifies the outcome is identical under every
// registration order of the same four components.
func TestBuild_AllPermutations(t *testing.T) {
	t.Parallel()

	steps := []func(*Binder){
		func(b *Binder) {
			InjectFn2(b, func(small uint32, big uint64) (resPair, error) {
				return resPair{Small: small, Big: big}, nil
			})
		},
		func(b *Binder) { b.Instance(uint64(2)) },
		func(b *Binder) {
			InjectFn1(b, func(p resPair) (resReporter, error) {
				return resReporter{Sum: uint64(p.Small) + p.Big}, nil
			})
		},
		func(b *Binder) { b.Instance(uint32(1)) },
	}

	for _, order := range permute([]int{0, 1, 2, 3}) {
		b := NewBinder()
		for _, i := range order {
			steps[i](b)
		}

		inj, err := b.Build()
		require.NoError(t, err, "order %v", order)

		pair := MustGet[resPair](inj)
		rep := MustGet[resReporter](inj)
		assert.Equal(t, resPair{Small: 1, Big: 2}, pair, "order %v", order)
		assert.Equal(t, uint64(3), rep.Sum, "order %v", order)
	}
}

// TestBuild_DeterministicSequence verifies independent factories run in
// registration order, build after build.
func TestBuild_DeterministicSequence(t *testing.T) {
	t.Parallel()

	type nodeX struct{}
	type nodeY struct{}
	type nodeZ struct{}

	b := NewBinder()
	var seq []string
	InjectFn0(b, func() (nodeX, error) {
		seq = append(seq, "x")
		return nodeX{}, nil
	})
	InjectFn0(b, func() (nodeY, error) {
		seq = append(seq, "y")
		return nodeY{}, nil
	})
	InjectFn0(b, func() (nodeZ, error) {
		seq = append(seq, "z")
		return nodeZ{}, nil
	})

	_, err := b.Build()
	require.NoError(t, err)
	_, err = b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z", "x", "y", "z"}, seq)
}

// TestBuild_DiamondBuiltOnce verifies a shared dependency is constructed a
// single time and both consumers see the same value.
func TestBuild_DiamondBuiltOnce(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	baseRuns := 0
	InjectFn0(b, func() (diaBase, error) {
		baseRuns++
		return diaBase{ID: 42}, nil
	})
	InjectFn1(b, func(base diaBase) (diaLeft, error) {
		return diaLeft{B: base}, nil
	})
	InjectFn1(b, func(base diaBase) (diaRight, error) {
		return diaRight{B: base}, nil
	})
	InjectFn2(b, func(l diaLeft, r diaRight) (diaTop, error) {
		return diaTop{L: l, R: r}, nil
	})

	inj, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 1, baseRuns)
	top := MustGet[diaTop](inj)
	assert.Equal(t, 42, top.L.B.ID)
	assert.Equal(t, 42, top.R.B.ID)
}

// TestBuild_InstancesOnly verifies a graph of prebuilt values needs no factories.
func TestBuild_InstancesOnly(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	b.Instance(resLeaf{Name: "a"})
	b.Instance(uint32(5))

	inj, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, inj.Len())
	assert.Equal(t, "a", MustGet[resLeaf](inj).Name)
}

// TestBuild_TwiceIsIndependent verifies each build re-runs factories and
// produces fresh values.
func TestBuild_TwiceIsIndependent(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	runs := 0
	InjectFn0(b, func() (*resLeaf, error) {
		runs++
		return &resLeaf{Name: "fresh"}, nil
	})

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 2, runs)
	assert.NotSame(t, MustGet[*resLeaf](first), MustGet[*resLeaf](second))
}

// TestBuild_FailureStopsDependents verifies factories downstream of a
// failure never run.
func TestBuild_FailureStopsDependents(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	InjectFn0(b, func() (diaBase, error) {
		return diaBase{}, assert.AnError
	})
	leftRuns := 0
	InjectFn1(b, func(base diaBase) (diaLeft, error) {
		leftRuns++
		return diaLeft{B: base}, nil
	})

	_, err := b.Build()
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KeyOf[diaBase](), rerr.Key)
	assert.Equal(t, 0, leftRuns)
}

//
// -----------------------------------------------------------------------------
// Deferred handles
// -----------------------------------------------------------------------------

// TestBuild_DeferredBreaksCycle verifies two mutually dependent components
// build when one side declares a Lazy handle, and the handle resolves to
// the finished value afterwards.
func TestBuild_DeferredBreaksCycle(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	Inject[cycleA](b)
	Inject[cycleB](b)
	b.Instance(uint32(7))

	require.NoError(t, b.Verify())
	inj, err := b.Build()
	require.NoError(t, err)

	a := MustGet[cycleA](inj)
	bv := MustGet[cycleB](inj)

	assert.Equal(t, uint32(7), bv.Num)
	require.True(t, a.Beta.Filled())
	assert.Equal(t, bv, a.Beta.MustGet())
	// The copy of a inside bv shares the same cell, so the loop closes.
	assert.Equal(t, bv, bv.Alpha.Beta.MustGet())
}

// TestBuild_DeferredHandleDuringFactory verifies a handle read inside a
// factory reports unfilled, then reads cleanly after the build.
func TestBuild_DeferredHandleDuringFactory(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	b.Instance(resLeaf{Name: "target"})

	var early error
	var handle Lazy[resLeaf]
	InjectFn1(b, func(leaf Lazy[resLeaf]) (resHolder, error) {
		handle = leaf
		_, early = leaf.Get()
		return resHolder{Got: true}, nil
	})

	_, err := b.Build()
	require.NoError(t, err)

	var nf *NotFilledError
	require.ErrorAs(t, early, &nf)
	assert.Equal(t, KeyOf[resLeaf](), nf.Key)

	require.True(t, handle.Filled())
	assert.Equal(t, "target", handle.MustGet().Name)
}

// TestRegister_DeferredRequirement verifies Deferred wires a typed handle
// into hand-assembled entries.
func TestRegister_DeferredRequirement(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	b.Instance(resLeaf{Name: "raw"})

	var handle Lazy[resLeaf]
	b.Register(ComponentEntry{
		Produced: KeyOf[resHolder](),
		Requires: []Requirement{Deferred[resLeaf]()},
		Factory: func(deps []any) (any, error) {
			handle = deps[0].(Lazy[resLeaf])
			return resHolder{Got: true}, nil
		},
	})

	_, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "raw", handle.MustGet().Name)
}

// TestRegister_BareDeferredRequirement verifies a requirement built as a
// plain literal delivers an untyped Lazy[any] handle.
func TestRegister_BareDeferredRequirement(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	b.Instance(resLeaf{Name: "plain"})

	var handle Lazy[any]
	b.Register(ComponentEntry{
		Produced: KeyOf[resHolder](),
		Requires: []Requirement{{Key: KeyOf[resLeaf](), Deferred: true}},
		Factory: func(deps []any) (any, error) {
			handle = deps[0].(Lazy[any])
			return resHolder{Got: true}, nil
		},
	})

	_, err := b.Build()
	require.NoError(t, err)

	require.True(t, handle.Filled())
	v, err := handle.Get()
	require.NoError(t, err)
	assert.Equal(t, resLeaf{Name: "plain"}, v)
}

//
// -----------------------------------------------------------------------------
// Cycles
// -----------------------------------------------------------------------------

// TestBuild_ThreeNodeCycle verifies the cycle is reported in edge order
// from its earliest registered member.
func TestBuild_ThreeNodeCycle(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	InjectFn1(b, func(cycNode2) (cycNode1, error) { return cycNode1{}, nil })
	InjectFn1(b, func(cycNode3) (cycNode2, error) { return cycNode2{}, nil })
	InjectFn1(b, func(cycNode1) (cycNode3, error) { return cycNode3{}, nil })

	_, err := b.Build()
	var cerr *CycleError
	require.ErrorAs(t, err, &cerr)
	want := [][]TypeKey{{KeyOf[cycNode1](), KeyOf[cycNode2](), KeyOf[cycNode3]()}}
	assert.Equal(t, want, cerr.Cycles)
}

// TestBuild_SelfCycle verifies a component requiring itself is a
// one-element cycle.
func TestBuild_SelfCycle(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	InjectFn1(b, func(cycSelf) (cycSelf, error) { return cycSelf{}, nil })

	_, err := b.Build()
	var cerr *CycleError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, [][]TypeKey{{KeyOf[cycSelf]()}}, cerr.Cycles)
}

// TestBuild_BlockedEntryNotInCycle verifies a component merely waiting on a
// cycle is not listed as part of it.
func TestBuild_BlockedEntryNotInCycle(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	InjectFn1(b, func(cycNode2) (cycNode1, error) { return cycNode1{}, nil })
	InjectFn1(b, func(cycNode1) (cycNode2, error) { return cycNode2{}, nil })
	InjectFn1(b, func(cycNode1) (resHolder, error) { return resHolder{}, nil })

	rep := b.Report()
	require.Len(t, rep.Cycles, 1)
	assert.Equal(t, []TypeKey{KeyOf[cycNode1](), KeyOf[cycNode2]()}, rep.Cycles[0])
	for _, k := range rep.Cycles[0] {
		assert.NotEqual(t, KeyOf[resHolder](), k)
	}
	assert.Empty(t, rep.Missing)
}

// TestBuild_DisjointCycles verifies independent cycles are reported
// separately, ordered by first registration.
func TestBuild_DisjointCycles(t *testing.T) {
	t.Parallel()

	type loopA1 struct{}
	type loopA2 struct{}
	type loopB1 struct{}
	type loopB2 struct{}

	b := NewBinder()
	InjectFn1(b, func(loopA2) (loopA1, error) { return loopA1{}, nil })
	InjectFn1(b, func(loopA1) (loopA2, error) { return loopA2{}, nil })
	InjectFn1(b, func(loopB2) (loopB1, error) { return loopB1{}, nil })
	InjectFn1(b, func(loopB1) (loopB2, error) { return loopB2{}, nil })

	rep := b.Report()
	want := [][]TypeKey{
		{KeyOf[loopA1](), KeyOf[loopA2]()},
		{KeyOf[loopB1](), KeyOf[loopB2]()},
	}
	assert.Equal(t, want, rep.Cycles)
}
