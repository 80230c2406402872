package datalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const reach = `
Decl edge(From, To).
reach(A, B) :- edge(A, B).
reach(A, C) :- edge(A, B), reach(B, C).
`

func TestReach(t *testing.T) {
	e, err := New(reach)
	require.NoError(t, err)
	e.Add("edge", 1, 2)
	e.Add("edge", 2, 3)
	e.Add("edge", 5, 4)
	require.NoError(t, e.Eval())
	got, err := e.Query("reach", 2)
	require.NoError(t, err)
	want := [][]int64{{1, 2}, {1, 3}, {2, 3}, {5, 4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reach mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryEmpty(t *testing.T) {
	e, err := New(reach)
	require.NoError(t, err)
	require.NoError(t, e.Eval())
	got, err := e.Query("reach", 2)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestNewError(t *testing.T) {
	_, err := New("reach(A, B) :- ")
	require.Error(t, err)
}
