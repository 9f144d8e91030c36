package seqbench

import (
	"container/list"
	"fmt"
)

//variant names of the two sequence backends
const (
	//ArrayVariant contiguous-array-backed sequence
	ArrayVariant = "array"
	//ListVariant linked-node-backed sequence
	ListVariant = "list"
)

//IntegerSequence a mutable, ascending-sorted sequence of distinct integers.
//Both implementations locate positions by explicit forward scan so that the
//search cost is identical and only the storage's mutation cost differs.
type IntegerSequence interface {
	//InsertNumerical insert n at its position in numerical order
	InsertNumerical(n int)
	//PushBack append n at the end
	PushBack(n int)
	//PushFront prepend n at the front
	PushFront(n int)
	//Remove remove the i-th element, panics if i is out of range
	Remove(i int)
	//Size number of elements
	Size() int
	//Empty whether the sequence holds no elements
	Empty() bool
	//Values snapshot of the elements in sequence order
	Values() []int
}

//NewSequence create a fresh empty sequence of the named variant
func NewSequence(variant string) IntegerSequence {
	switch variant {
	case ArrayVariant:
		return NewArraySequence()
	case ListVariant:
		return NewListSequence()
	default:
		panic(fmt.Sprintf("seqbench: unknown sequence variant %q", variant))
	}
}

//FillNumerically insert the first n universe values into seq in iteration order
func FillNumerically(seq IntegerSequence, universe *Universe, n int) {
	for _, v := range universe.Prefix(n) {
		seq.InsertNumerical(v)
	}
}

//ArraySequence IntegerSequence backed by a contiguous slice
type ArraySequence struct {
	v []int
}

//NewArraySequence create an empty array-backed sequence
func NewArraySequence() *ArraySequence {
	return new(ArraySequence)
}

//InsertNumerical linear scan for the first element >= n, then shift
func (seq *ArraySequence) InsertNumerical(n int) {
	pos := 0
	for pos < len(seq.v) && seq.v[pos] < n {
		pos++
	}
	seq.v = append(seq.v, 0)
	copy(seq.v[pos+1:], seq.v[pos:])
	seq.v[pos] = n
}

//PushBack append n at the end
func (seq *ArraySequence) PushBack(n int) {
	seq.v = append(seq.v, n)
}

//PushFront prepend n, shifting every element
func (seq *ArraySequence) PushFront(n int) {
	seq.v = append(seq.v, 0)
	copy(seq.v[1:], seq.v)
	seq.v[0] = n
}

//Remove delete the i-th element, shifting the tail left
func (seq *ArraySequence) Remove(i int) {
	if i < 0 || i >= len(seq.v) {
		panic(fmt.Sprintf("seqbench: remove index %d out of range for size %d", i, len(seq.v)))
	}
	copy(seq.v[i:], seq.v[i+1:])
	seq.v = seq.v[:len(seq.v)-1]
}

//Size number of elements
func (seq *ArraySequence) Size() int {
	return len(seq.v)
}

//Empty whether the sequence holds no elements
func (seq *ArraySequence) Empty() bool {
	return len(seq.v) == 0
}

//Values snapshot of the elements in sequence order
func (seq *ArraySequence) Values() []int {
	out := make([]int, len(seq.v))
	copy(out, seq.v)
	return out
}

//ListSequence IntegerSequence backed by doubly linked nodes
type ListSequence struct {
	l *list.List
}

//NewListSequence create an empty node-backed sequence
func NewListSequence() *ListSequence {
	return &ListSequence{l: list.New()}
}

//InsertNumerical walk from the front to the first element >= n and splice
func (seq *ListSequence) InsertNumerical(n int) {
	for e := seq.l.Front(); e != nil; e = e.Next() {
		if e.Value.(int) >= n {
			seq.l.InsertBefore(n, e)
			return
		}
	}
	seq.l.PushBack(n)
}

//PushBack append n at the end
func (seq *ListSequence) PushBack(n int) {
	seq.l.PushBack(n)
}

//PushFront prepend n at the front
func (seq *ListSequence) PushFront(n int) {
	seq.l.PushFront(n)
}

//Remove walk i steps from the front and unlink, no jump shortcut
func (seq *ListSequence) Remove(i int) {
	if i < 0 || i >= seq.l.Len() {
		panic(fmt.Sprintf("seqbench: remove index %d out of range for size %d", i, seq.l.Len()))
	}
	e := seq.l.Front()
	for j := 0; j < i; j++ {
		e = e.Next()
	}
	seq.l.Remove(e)
}

//Size number of elements
func (seq *ListSequence) Size() int {
	return seq.l.Len()
}

//Empty whether the sequence holds no elements
func (seq *ListSequence) Empty() bool {
	return seq.l.Len() == 0
}

//Values snapshot of the elements in sequence order
func (seq *ListSequence) Values() []int {
	out := make([]int, 0, seq.l.Len())
	for e := seq.l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(int))
	}
	return out
}
