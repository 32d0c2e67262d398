// Package pq is a binary heap whose elements can be removed by handle
// after any number of reorderings.
package pq

import "container/heap"

// Handle identifies a pushed element for as long as it stays queued.
type Handle uint64

type entry[T any] struct {
	handle Handle
	value  T
}

type entries[T any] struct {
	items []entry[T]
	index map[Handle]int
	less  func(a, b T) bool
}

func (e *entries[T]) Len() int { return len(e.items) }

func (e *entries[T]) Less(i, j int) bool {
	return e.less(e.items[i].value, e.items[j].value)
}

func (e *entries[T]) Swap(i, j int) {
	e.items[i], e.items[j] = e.items[j], e.items[i]
	e.index[e.items[i].handle] = i
	e.index[e.items[j].handle] = j
}

func (e *entries[T]) Push(x interface{}) {
	it := x.(entry[T])
	e.index[it.handle] = len(e.items)
	e.items = append(e.items, it)
}

func (e *entries[T]) Pop() interface{} {
	old := e.items
	it := old[len(old)-1]
	old[len(old)-1] = entry[T]{}
	e.items = old[:len(old)-1]
	delete(e.index, it.handle)
	return it
}

// Queue pops the element for which less reports true against every other
// element first.
type Queue[T any] struct {
	h    entries[T]
	next Handle
}

func New[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{
		h: entries[T]{index: make(map[Handle]int), less: less},
	}
}

func (q *Queue[T]) Len() int { return q.h.Len() }

func (q *Queue[T]) Push(v T) Handle {
	q.next++
	heap.Push(&q.h, entry[T]{handle: q.next, value: v})
	return q.next
}

func (q *Queue[T]) Pop() (T, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(&q.h).(entry[T]).value, true
}

func (q *Queue[T]) Peek() (T, bool) {
	if q.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return q.h.items[0].value, true
}

// RemoveAt removes the element at heap position i.
func (q *Queue[T]) RemoveAt(i int) (T, bool) {
	if i < 0 || i >= q.h.Len() {
		var zero T
		return zero, false
	}
	return heap.Remove(&q.h, i).(entry[T]).value, true
}

// Remove removes the element pushed under h. It reports false when h was
// already popped or removed.
func (q *Queue[T]) Remove(h Handle) (T, bool) {
	i, ok := q.h.index[h]
	if !ok {
		var zero T
		return zero, false
	}
	return q.RemoveAt(i)
}

// Index returns the current heap position of h.
func (q *Queue[T]) Index(h Handle) (int, bool) {
	i, ok := q.h.index[h]
	return i, ok
}

func (q *Queue[T]) Contains(h Handle) bool {
	_, ok := q.h.index[h]
	return ok
}

func (q *Queue[T]) Clear() {
	q.h.items = q.h.items[:0]
	q.h.index = make(map[Handle]int)
}
