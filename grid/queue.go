/******************************************************************************************[Heap.h]
Copyright (c) 2003-2006, Niklas Een, Niklas Sorensson
Copyright (c) 2007-2010, Niklas Sorensson

Permission is hereby granted, free of charge, to any person obtaining a copy of this software and
associated documentation files (the "Software"), to deal in the Software without restriction,
including without limitation the rights to use, copy, modify, merge, publish, distribute,
sublicense, and/or sell copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all copies or
substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED, INCLUDING BUT
NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT
OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
**************************************************************************************************/

package grid

// A heap with a generic element type. This is strongly inspired from Minisat's mtl/Heap.h,
// through the variable queue of gophersat.

// A Queue is a binary min-heap of values ordered by an integer priority.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	content []entry[T]
}

type entry[T any] struct {
	val  T
	prio int
}

// Traversal functions.
func left(i int) int   { return i*2 + 1 }
func right(i int) int  { return (i + 1) * 2 }
func parent(i int) int { return (i - 1) >> 1 }

func (q *Queue[T]) lt(i, j int) bool {
	return q.content[i].prio < q.content[j].prio
}

func (q *Queue[T]) percolateUp(i int) {
	x := q.content[i]
	p := parent(i)
	for i != 0 && x.prio < q.content[p].prio {
		q.content[i] = q.content[p]
		i = p
		p = parent(p)
	}
	q.content[i] = x
}

func (q *Queue[T]) percolateDown(i int) {
	x := q.content[i]
	for left(i) < len(q.content) {
		child := left(i)
		if right(i) < len(q.content) && q.lt(right(i), left(i)) {
			child = right(i)
		}
		if q.content[child].prio >= x.prio {
			break
		}
		q.content[i] = q.content[child]
		i = child
	}
	q.content[i] = x
}

func (q *Queue[T]) Len() int    { return len(q.content) }
func (q *Queue[T]) Empty() bool { return len(q.content) == 0 }

// Push inserts val with the given priority.
func (q *Queue[T]) Push(val T, prio int) {
	q.content = append(q.content, entry[T]{val: val, prio: prio})
	q.percolateUp(len(q.content) - 1)
}

// Pop removes and returns the value with the lowest priority, along with that priority.
// It panics if the queue is empty.
func (q *Queue[T]) Pop() (T, int) {
	x := q.content[0]
	last := len(q.content) - 1
	q.content[0] = q.content[last]
	q.content = q.content[:last]
	if len(q.content) > 1 {
		q.percolateDown(0)
	}
	return x.val, x.prio
}
