package grid

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	g, err := Parse("#..\n.^.\n..#\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.W)
	assert.Equal(t, 3, g.H)
	p, ok := g.Find('^')
	require.True(t, ok)
	assert.Equal(t, Pt{1, 1}, p)
	assert.Equal(t, byte('#'), g.At(Pt{2, 2}))
	assert.Equal(t, byte(0), g.At(Pt{3, 0}))
	assert.Equal(t, "#..\n.^.\n..#\n", g.String())

	_, err = Parse("##\n#\n")
	assert.Error(t, err)
	_, err = Parse("\n\n")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	g := New(3, 2, '.')
	g.Set(Pt{2, 1}, '#')
	assert.Equal(t, "...\n..#\n", g.String())
}

func TestPoints(t *testing.T) {
	tests := map[string]struct {
		got, want Pt
	}{
		"add":         {Pt{1, 2}.Add(Pt{3, -4}), Pt{4, -2}},
		"sub":         {Pt{1, 2}.Sub(Pt{3, -4}), Pt{-2, 6}},
		"scale":       {Pt{1, -2}.Scale(3), Pt{3, -6}},
		"right":       {North.Right(), East},
		"left":        {North.Left(), West},
		"wrap":        {Pt{-1, 8}.Wrap(Pt{11, 7}), Pt{10, 1}},
		"wrap inside": {Pt{3, 4}.Wrap(Pt{11, 7}), Pt{3, 4}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, test.got)
		})
	}
	assert.Equal(t, 7, Pt{1, 2}.MDist(Pt{-2, -2}))
}

func TestNeighbors(t *testing.T) {
	var got []Pt
	for n := range Neighbors(Pt{2, 5}) {
		got = append(got, n)
	}
	want := []Pt{{2, 4}, {3, 5}, {2, 6}, {1, 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("neighbors mismatch (-want +got):\n%s", diff)
	}
	n := 0
	for range Neighbors(Pt{}) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestQueue(t *testing.T) {
	var q Queue[string]
	prios := map[string]int{"e": 5, "a": 1, "d": 4, "c": 3, "b": 2, "f": 6}
	for _, v := range []string{"e", "a", "d", "f", "c", "b"} {
		q.Push(v, prios[v])
	}
	var got []string
	for !q.Empty() {
		v, prio := q.Pop()
		assert.Equal(t, prios[v], prio)
		got = append(got, v)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e", "f"}, got); diff != "" {
		t.Errorf("pop order mismatch (-want +got):\n%s", diff)
	}
}

func ExampleQueue() {
	var q Queue[Pt]
	q.Push(Pt{2, 2}, 4)
	q.Push(Pt{0, 1}, 1)
	q.Push(Pt{1, 1}, 2)
	for q.Len() > 0 {
		p, d := q.Pop()
		fmt.Println(p, d)
	}
	// Output:
	// {0 1} 1
	// {1 1} 2
	// {2 2} 4
}
