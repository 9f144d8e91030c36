package seqbench

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func variants() map[string]func() IntegerSequence {
	return map[string]func() IntegerSequence{
		ArrayVariant: func() IntegerSequence { return NewArraySequence() },
		ListVariant:  func() IntegerSequence { return NewListSequence() },
	}
}

func TestInsertNumericalWorkedExample(t *testing.T) {
	wantStates := [][]int{{5}, {1, 5}, {1, 4, 5}, {1, 2, 4, 5}}
	for name, newSeq := range variants() {
		t.Run(name, func(t *testing.T) {
			seq := newSeq()
			for i, v := range []int{5, 1, 4, 2} {
				seq.InsertNumerical(v)
				assert.Equal(t, wantStates[i], seq.Values())
			}
			assert.Equal(t, 4, seq.Size())
			assert.False(t, seq.Empty())
		})
	}
}

func TestRemoveWorkedExample(t *testing.T) {
	wantStates := [][]int{{1, 4, 5}, {1, 4}, {4}, {}}
	for name, newSeq := range variants() {
		t.Run(name, func(t *testing.T) {
			seq := newSeq()
			for _, v := range []int{5, 1, 4, 2} {
				seq.InsertNumerical(v)
			}
			for i, idx := range []int{1, 2, 0, 0} {
				seq.Remove(idx)
				assert.Equal(t, wantStates[i], seq.Values())
			}
			assert.True(t, seq.Empty())
		})
	}
}

func TestInsertNumericalKeepsAscendingOrder(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	values := r.Perm(200)
	for name, newSeq := range variants() {
		t.Run(name, func(t *testing.T) {
			seq := newSeq()
			for i, v := range values {
				seq.InsertNumerical(v)
				require.Equal(t, i+1, seq.Size())
			}
			assert.True(t, sort.IntsAreSorted(seq.Values()))
		})
	}
}

func TestVariantsPassThroughIdenticalStates(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	values := r.Perm(64)
	gen := NewPlanGenerator()
	plan := gen.Generate(len(values))

	array := NewArraySequence()
	list := NewListSequence()
	for _, v := range values {
		array.InsertNumerical(v)
		list.InsertNumerical(v)
		require.Equal(t, array.Values(), list.Values())
	}
	for _, idx := range plan {
		array.Remove(idx)
		list.Remove(idx)
		require.Equal(t, array.Values(), list.Values())
	}
	assert.True(t, array.Empty())
	assert.True(t, list.Empty())
}

func TestPushFrontPushBack(t *testing.T) {
	for name, newSeq := range variants() {
		t.Run(name, func(t *testing.T) {
			seq := newSeq()
			seq.PushBack(2)
			seq.PushBack(3)
			seq.PushFront(1)
			assert.Equal(t, []int{1, 2, 3}, seq.Values())
		})
	}
}

func TestRemoveOutOfRangePanics(t *testing.T) {
	for name, newSeq := range variants() {
		t.Run(name, func(t *testing.T) {
			seq := newSeq()
			assert.Panics(t, func() { seq.Remove(0) })
			seq.PushBack(1)
			seq.PushBack(2)
			assert.Panics(t, func() { seq.Remove(2) })
			assert.Panics(t, func() { seq.Remove(-1) })
			assert.Equal(t, 2, seq.Size())
		})
	}
}

func TestNewSequenceUnknownVariantPanics(t *testing.T) {
	assert.Panics(t, func() { NewSequence("tree") })
}

func TestFillNumerically(t *testing.T) {
	universe := Generate(100, rand.New(rand.NewSource(3)))
	for name, newSeq := range variants() {
		t.Run(name, func(t *testing.T) {
			seq := newSeq()
			FillNumerically(seq, universe, 100)
			assert.Equal(t, 100, seq.Size())
			assert.True(t, sort.IntsAreSorted(seq.Values()))
		})
	}
}

func TestFillNumericallyBeyondPoolPanics(t *testing.T) {
	universe := Generate(10, rand.New(rand.NewSource(4)))
	assert.Panics(t, func() { FillNumerically(NewArraySequence(), universe, 11) })
}

func benchmarkInsert(b *testing.B, newSeq func() IntegerSequence) {
	r := rand.New(rand.NewSource(5))
	values := r.Perm(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq := newSeq()
		for _, v := range values {
			seq.InsertNumerical(v)
		}
	}
}

func BenchmarkArraySequenceInsert(b *testing.B) {
	benchmarkInsert(b, func() IntegerSequence { return NewArraySequence() })
}

func BenchmarkListSequenceInsert(b *testing.B) {
	benchmarkInsert(b, func() IntegerSequence { return NewListSequence() })
}
