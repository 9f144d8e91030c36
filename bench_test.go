package seqbench

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCoreLeavesSequenceEmpty(t *testing.T) {
	universe := Generate(128, rand.New(rand.NewSource(9)))
	gen := NewPlanGenerator()
	for name, newSeq := range variants() {
		t.Run(name, func(t *testing.T) {
			seq := newSeq()
			runCore(seq, universe.Prefix(128), gen.Generate(128))
			assert.True(t, seq.Empty())
		})
	}
}

func TestRunCoreFillsAscending(t *testing.T) {
	universe := Generate(64, rand.New(rand.NewSource(10)))
	for name, newSeq := range variants() {
		t.Run(name, func(t *testing.T) {
			seq := newSeq()
			// empty plan: phase 1 only
			runCore(seq, universe.Prefix(64), nil)
			require.Equal(t, 64, seq.Size())
			values := seq.Values()
			for i := 1; i < len(values); i++ {
				require.Less(t, values[i-1], values[i])
			}
		})
	}
}

func TestCheckPlan(t *testing.T) {
	assert.NotPanics(t, func() { checkPlan([]int{2, 1, 0, 0}, 4) })
	assert.NotPanics(t, func() { checkPlan(nil, 0) })
	assert.Panics(t, func() { checkPlan([]int{1, 0}, 3) })
	assert.Panics(t, func() { checkPlan([]int{0, 1}, 2) })
}

func TestMeasure(t *testing.T) {
	universe := Generate(512, rand.New(rand.NewSource(11)))
	for _, variant := range []string{ArrayVariant, ListVariant} {
		mean := Measure(variant, universe, 512, 2)
		assert.Greater(t, int64(mean), int64(0))
	}
}

func TestMeasureZeroN(t *testing.T) {
	universe := Generate(1, rand.New(rand.NewSource(12)))
	mean := Measure(ArrayVariant, universe, 0, DefaultRunsPerTest)
	assert.GreaterOrEqual(t, int64(mean), int64(0))
}

func TestMeasureBeyondPoolPanics(t *testing.T) {
	universe := Generate(8, rand.New(rand.NewSource(13)))
	assert.Panics(t, func() { Measure(ArrayVariant, universe, 9, 1) })
}

func TestMeasurePairJoinsBothVariants(t *testing.T) {
	universe := Generate(256, rand.New(rand.NewSource(14)))
	m := MeasurePair(universe, 256, 2)
	require.NotNil(t, m)
	assert.Equal(t, 256, m.N)
	assert.Greater(t, int64(m.ArrayTime), int64(0))
	assert.Greater(t, int64(m.ListTime), int64(0))
}

func TestMeasurePairInstancesAreIndependent(t *testing.T) {
	universe := Generate(64, rand.New(rand.NewSource(15)))
	// back-to-back measurements share nothing but the read-only universe
	first := MeasurePair(universe, 64, 1)
	second := MeasurePair(universe, 64, 1)
	assert.Equal(t, first.N, second.N)
	assert.GreaterOrEqual(t, int64(first.ArrayTime), int64(0))
	assert.GreaterOrEqual(t, int64(second.ArrayTime), int64(0))
}

func BenchmarkRunCoreArray(b *testing.B) {
	universe := Generate(1000, rand.New(rand.NewSource(16)))
	gen := NewPlanGenerator()
	plan := gen.Generate(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runCore(NewArraySequence(), universe.Prefix(1000), plan)
	}
}

func BenchmarkRunCoreList(b *testing.B) {
	universe := Generate(1000, rand.New(rand.NewSource(17)))
	gen := NewPlanGenerator()
	plan := gen.Generate(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runCore(NewListSequence(), universe.Prefix(1000), plan)
	}
}
