package seqbench

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

//Universe read-only pool of distinct integers. Iteration order is the
//construction order: file line order when loaded, draw order when generated.
//Built once per run and never mutated afterwards, so it is shared across all
//workers without locking.
type Universe struct {
	values []int
}

//LoadOrGenerate read the persisted integer pool at path, one integer per
//line. An unreadable or absent file falls back to in-process generation of
//minCount distinct integers; a readable file with a malformed line is a
//fatal data source error.
func LoadOrGenerate(path string, minCount int) (*Universe, error) {
	entry := log.WithFields(log.Fields{Function: "LoadOrGenerate"})
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			entry.WithError(err).Warnf("integer pool %s unreadable", path)
		}
		entry.Infof("generating pool of %s distinct integers", humanize.Comma(int64(minCount)))
		return Generate(minCount, newSeededRand()), nil
	}
	defer f.Close()
	values := make([]int, 0, minCount)
	seen := make(map[int]bool, minCount)
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			entry.WithError(err).Errorf("malformed line %d of integer pool %s", lineno, path)
			return nil, fmt.Errorf("error when parsing line %d of integer pool %s: %s", lineno, path, err.Error())
		}
		if !seen[n] {
			seen[n] = true
			values = append(values, n)
		}
	}
	if err := scanner.Err(); err != nil {
		entry.WithError(err).Errorf("reading integer pool %s", path)
		return nil, fmt.Errorf("error when reading integer pool %s: %s", path, err.Error())
	}
	entry.Infof("loaded %s distinct integers from %s", humanize.Comma(int64(len(values))), path)
	return &Universe{values: values}, nil
}

//Generate draw distinct integers uniformly over the full int32 range,
//resampling on duplicates until count distinct values are collected
func Generate(count int, r *rand.Rand) *Universe {
	values := make([]int, 0, count)
	seen := make(map[int]bool, count)
	for len(values) < count {
		n := int(int32(r.Uint32()))
		if !seen[n] {
			seen[n] = true
			values = append(values, n)
		}
	}
	return &Universe{values: values}
}

//Size number of distinct integers in the pool
func (u *Universe) Size() int {
	return len(u.values)
}

//Prefix first n values in iteration order. The returned slice aliases the
//pool and must be treated as read-only. Panics if n exceeds the pool size:
//a sweep bound larger than the pool is a caller defect, never truncated.
func (u *Universe) Prefix(n int) []int {
	if n > len(u.values) {
		panic(fmt.Sprintf("seqbench: requested %d values from a pool of %d", n, len(u.values)))
	}
	return u.values[:n]
}

//Values all pool values in iteration order, read-only
func (u *Universe) Values() []int {
	return u.values
}
