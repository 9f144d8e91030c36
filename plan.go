package seqbench

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

//entropySeed draw a seed from the system entropy source
func entropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

//newSeededRand create a private random source seeded from system entropy
func newSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(entropySeed()))
}

//PlanGenerator produces removal plans from a private random stream. Each
//concurrent worker owns its own generator, so draws never race.
type PlanGenerator struct {
	rnd *rand.Rand
}

//NewPlanGenerator create a generator with its own seeded random source
func NewPlanGenerator() *PlanGenerator {
	return &PlanGenerator{rnd: newSeededRand()}
}

//Reseed discard the current random state and reseed from system entropy
func (gen *PlanGenerator) Reseed() {
	gen.rnd.Seed(entropySeed())
}

//Generate reseed, then produce n removal indices. Entry i is drawn uniformly
//from [0, n-1-i]: the valid index range shrinks by one per removal, which
//forces the final entry to 0.
func (gen *PlanGenerator) Generate(n int) []int {
	gen.Reseed()
	plan := make([]int, 0, n)
	for back := n - 1; back >= 0; back-- {
		plan = append(plan, gen.rnd.Intn(back+1))
	}
	return plan
}
