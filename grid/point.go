// Package grid provides points, rectangular character maps and a priority queue,
// the building blocks of most map-based puzzles.
package grid

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// A Pt2 is a point, or a vector, on a 2D plane. Y grows downwards.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt is the most common kind of point.
type Pt = Pt2[int]

// Directions, clockwise, starting from north.
var (
	North = Pt{0, -1}
	East  = Pt{1, 0}
	South = Pt{0, 1}
	West  = Pt{-1, 0}
)

// Dirs4 holds the four orthogonal directions, clockwise from north.
var Dirs4 = [4]Pt{North, East, South, West}

// Dirs8 holds the eight directions, clockwise from north.
var Dirs8 = [8]Pt{North, {1, -1}, East, {1, 1}, South, {-1, 1}, West, {-1, -1}}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X - q.X, p.Y - q.Y} }
func (p Pt2[T]) Scale(k T) Pt2[T]    { return Pt2[T]{p.X * k, p.Y * k} }

// Right returns the direction p rotated a quarter turn clockwise.
func (p Pt2[T]) Right() Pt2[T] { return Pt2[T]{-p.Y, p.X} }

// Left returns the direction p rotated a quarter turn counter-clockwise.
func (p Pt2[T]) Left() Pt2[T] { return Pt2[T]{p.Y, -p.X} }

func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Wrap returns p moved inside the [0, size.X) x [0, size.Y) rectangle, as on a torus.
func (p Pt2[T]) Wrap(size Pt2[T]) Pt2[T] {
	p.X %= size.X
	p.Y %= size.Y
	if p.X < 0 {
		p.X += size.X
	}
	if p.Y < 0 {
		p.Y += size.Y
	}
	return p
}

// Neighbors yields the four orthogonal neighbors of p, clockwise from north.
// Iteration stops early when the consumer breaks out of the loop.
func Neighbors(p Pt) iter.Seq[Pt] {
	return func(yield func(Pt) bool) {
		for _, d := range Dirs4 {
			if !yield(p.Add(d)) {
				return
			}
		}
	}
}
