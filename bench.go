package seqbench

import (
	"fmt"
	"time"

	"github.com/ivpusic/grpool"
	log "github.com/sirupsen/logrus"
)

//DefaultRunsPerTest measured repetitions per variant and N
const DefaultRunsPerTest = 3

//runCore the timed unit: insert every prefix value in iteration order, then
//consume the removal plan until the sequence is empty. Performs no I/O and
//no logging and touches no state outside seq.
func runCore(seq IntegerSequence, prefix []int, plan []int) {
	for _, v := range prefix {
		seq.InsertNumerical(v)
	}
	for _, i := range plan {
		seq.Remove(i)
	}
}

//checkPlan verify the shrinking-domain invariant on a freshly generated plan
func checkPlan(plan []int, n int) {
	if len(plan) != n {
		panic(fmt.Sprintf("seqbench: removal plan has %d entries, want %d", len(plan), n))
	}
	if n > 0 && plan[n-1] != 0 {
		panic(fmt.Sprintf("seqbench: removal plan ends at index %d, want 0", plan[n-1]))
	}
}

//Measure run the benchmark core for one variant: one unmeasured warm-up run,
//then repeats timed runs, each against a fresh sequence and a freshly
//generated (reseeded) removal plan. Returns the arithmetic mean duration.
func Measure(variant string, universe *Universe, n, repeats int) time.Duration {
	entry := log.WithFields(log.Fields{Function: "Measure", Variant: variant, SweepSize: n})
	prefix := universe.Prefix(n)
	gen := NewPlanGenerator()

	warm := NewSequence(variant)
	runCore(warm, prefix, gen.Generate(n))
	if !warm.Empty() {
		panic(fmt.Sprintf("seqbench: %s sequence not empty after warm-up run", variant))
	}

	var total time.Duration
	for i := 0; i < repeats; i++ {
		plan := gen.Generate(n)
		checkPlan(plan, n)
		seq := NewSequence(variant)
		start := time.Now()
		runCore(seq, prefix, plan)
		total += time.Since(start)
	}
	mean := total / time.Duration(repeats)
	entry.Debugf("mean over %d runs: %dns", repeats, mean.Nanoseconds())
	return mean
}

//Measurement mean durations of both variants for one N
type Measurement struct {
	N         int
	ArrayTime time.Duration
	ListTime  time.Duration
}

//MeasurePair measure both variants for one N on two concurrent workers. Each
//worker owns its sequence instances and plan generator and reports its mean
//exactly once over a one-shot channel; the call joins both before returning.
//The pool lives only for this call, nothing is reused across N.
func MeasurePair(universe *Universe, n, repeats int) *Measurement {
	entry := log.WithFields(log.Fields{Function: "MeasurePair", SweepSize: n})
	pool := grpool.NewPool(2, 2)
	defer pool.Release()

	arrayCh := make(chan time.Duration, 1)
	listCh := make(chan time.Duration, 1)
	pool.JobQueue <- func() {
		arrayCh <- Measure(ArrayVariant, universe, n, repeats)
	}
	pool.JobQueue <- func() {
		listCh <- Measure(ListVariant, universe, n, repeats)
	}
	m := &Measurement{N: n, ArrayTime: <-arrayCh, ListTime: <-listCh}
	entry.Debugf("array %dns, list %dns", m.ArrayTime.Nanoseconds(), m.ListTime.Nanoseconds())
	return m
}
