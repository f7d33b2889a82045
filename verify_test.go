package mydi

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verLeaf struct{ N int }

type verDup struct{ N int }

type verAbsent struct{ N int }

type verRoot struct {
	Missing verAbsent
}

type verLoop1 struct{ N int }

type verLoop2 struct{ N int }

type verNested struct {
	Handle Lazy[Lazy[verLeaf]]
}

//
// -----------------------------------------------------------------------------
// Verify / Build equivalence
// -----------------------------------------------------------------------------

// TestVerify_MatchesBuild verifies every structural defect class fails
// Verify and Build with the same typed error.
func TestVerify_MatchesBuild(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		setup func(*Binder)
		check func(t *testing.T, err error)
	}{
		{
			name: "duplicate",
			setup: func(b *Binder) {
				b.Instance(verDup{N: 1})
				b.Instance(verDup{N: 2})
			},
			check: func(t *testing.T, err error) {
				var dup *DuplicateComponentError
				require.ErrorAs(t, err, &dup)
				assert.Equal(t, []TypeKey{KeyOf[verDup]()}, dup.Keys)
			},
		},
		{
			name: "missing",
			setup: func(b *Binder) {
				Inject[verRoot](b)
			},
			check: func(t *testing.T, err error) {
				var miss *MissingDependencyError
				require.ErrorAs(t, err, &miss)
				require.Len(t, miss.Missing, 1)
				assert.Equal(t, KeyOf[verAbsent](), miss.Missing[0].Key)
				assert.Equal(t, KeyOf[verRoot](), miss.Missing[0].Consumer)
			},
		},
		{
			name: "cycle",
			setup: func(b *Binder) {
				InjectFn1(b, func(verLoop2) (verLoop1, error) { return verLoop1{}, nil })
				InjectFn1(b, func(verLoop1) (verLoop2, error) { return verLoop2{}, nil })
			},
			check: func(t *testing.T, err error) {
				var cyc *CycleError
				require.ErrorAs(t, err, &cyc)
				assert.Equal(t, [][]TypeKey{{KeyOf[verLoop1](), KeyOf[verLoop2]()}}, cyc.Cycles)
			},
		},
		{
			name: "nested lazy",
			setup: func(b *Binder) {
				Inject[verNested](b)
			},
			check: func(t *testing.T, err error) {
				var nested *InvalidLazyNestingError
				require.ErrorAs(t, err, &nested)
				assert.Equal(t, []TypeKey{KeyOf[Lazy[verLeaf]]()}, nested.Keys)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := NewBinder()
			tc.setup(b)

			tc.check(t, b.Verify())

			inj, err := b.Build()
			assert.Nil(t, inj)
			tc.check(t, err)
		})
	}
}

// TestVerify_AllDefectsAtOnce verifies one pass reports every defect class
// together instead of stopping at the first.
func TestVerify_AllDefectsAtOnce(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	b.Instance(verDup{N: 1})
	b.Instance(verDup{N: 2})
	Inject[verNested](b)
	Inject[verRoot](b)
	InjectFn1(b, func(verLoop2) (verLoop1, error) { return verLoop1{}, nil })
	InjectFn1(b, func(verLoop1) (verLoop2, error) { return verLoop2{}, nil })

	err := b.Verify()
	require.Error(t, err)

	var dup *DuplicateComponentError
	var nested *InvalidLazyNestingError
	var miss *MissingDependencyError
	var cyc *CycleError
	assert.ErrorAs(t, err, &dup)
	assert.ErrorAs(t, err, &nested)
	assert.ErrorAs(t, err, &miss)
	assert.ErrorAs(t, err, &cyc)
}

// TestVerify_MissingIsNotACycle verifies an absent producer is reported
// once, as missing, without a phantom cycle behind it.
func TestVerify_MissingIsNotACycle(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	Inject[verRoot](b)
	InjectFn1(b, func(verRoot) (verLeaf, error) { return verLeaf{}, nil })

	rep := b.Report()
	require.Len(t, rep.Missing, 1)
	assert.Empty(t, rep.Cycles)

	// Only the missing class is present in the folded error.
	err := rep.Err()
	var cyc *CycleError
	assert.False(t, errors.As(err, &cyc))
}

//
// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

// TestVerify_WithSeeds verifies seed keys satisfy requirements that have no
// registered producer.
func TestVerify_WithSeeds(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	Inject[verRoot](b)

	require.Error(t, b.Verify())
	assert.NoError(t, b.Verify(WithSeeds(KeyOf[verAbsent]())))

	// Seeds describe a future merge; they never make Build pass.
	_, err := b.Build()
	assert.Error(t, err)
}

// TestVerify_NameModes verifies ShortNames strips package paths from
// messages while FullNames keeps them.
func TestVerify_NameModes(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	Inject[verRoot](b)

	full := b.Verify().Error()
	assert.Contains(t, full, "github.com/a14e/mydi.verAbsent")

	short := b.Verify(WithNameMode(ShortNames)).Error()
	assert.Contains(t, short, "verAbsent")
	assert.NotContains(t, short, "github.com/a14e/mydi")
}

//
// -----------------------------------------------------------------------------
// Report
// -----------------------------------------------------------------------------

// TestReport_Clean verifies a sound graph yields an OK report.
func TestReport_Clean(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	b.Instance(verLeaf{N: 1})

	rep := b.Report()
	assert.True(t, rep.OK())
	assert.NoError(t, rep.Err())
	assert.Equal(t, "dependency graph OK", rep.String())
}

// TestReport_String verifies the rendered report names each defect section.
func TestReport_String(t *testing.T) {
	t.Parallel()

	b := NewBinder()
	b.Instance(verDup{N: 1})
	b.Instance(verDup{N: 2})
	Inject[verRoot](b)
	InjectFn1(b, func(verLoop2) (verLoop1, error) { return verLoop1{}, nil })
	InjectFn1(b, func(verLoop1) (verLoop2, error) { return verLoop2{}, nil })

	out := b.Report(WithNameMode(ShortNames)).String()
	assert.Contains(t, out, "duplicates:")
	assert.Contains(t, out, "missing:")
	assert.Contains(t, out, "cycles:")
	assert.Contains(t, out, "verLoop1 -> verLoop2 -> verLoop1")
	assert.Contains(t, out, "verAbsent required by verRoot")
	assert.True(t, strings.Contains(out, "verify_test.go:"), "origins cited: %q", out)
}
