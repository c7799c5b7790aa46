package cache

import (
	"testing"

	"github.com/pflow-xyz/go-sudoku/grid"
	"github.com/pflow-xyz/go-sudoku/solver"
)

const testPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestGetOrComputeComputesOnce(t *testing.T) {
	g, err := grid.Parse(testPuzzle)
	if err != nil {
		t.Fatal(err)
	}

	c := New(0)
	calls := 0
	compute := func() solver.Result {
		calls++
		return solver.Solve(g)
	}

	first := c.GetOrCompute(g, compute)
	second := c.GetOrCompute(g, compute)

	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
	if first.Solution != second.Solution {
		t.Error("cache returned a different result")
	}
}

func TestCacheStats(t *testing.T) {
	g, _ := grid.Parse(testPuzzle)
	c := New(0)

	if _, ok := c.Get(g); ok {
		t.Fatal("hit on an empty cache")
	}
	c.Put(g, solver.Solve(g))
	if _, ok := c.Get(g); !ok {
		t.Fatal("miss after Put")
	}

	st := c.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Size != 1 {
		t.Errorf("stats = %+v, want 1 hit, 1 miss, size 1", st)
	}
	if st.HitRate != 0.5 {
		t.Errorf("hit rate = %v, want 0.5", st.HitRate)
	}
}

func TestCacheEviction(t *testing.T) {
	var empty grid.Grid
	g, _ := grid.Parse(testPuzzle)

	c := New(1)
	c.Put(empty, solver.Result{})
	c.Put(g, solver.Result{})

	if c.Size() != 1 {
		t.Errorf("size = %d, want 1 after eviction", c.Size())
	}
	if c.Stats().Evictions != 1 {
		t.Errorf("evictions = %d, want 1", c.Stats().Evictions)
	}
}

func TestCachedSolverMatchesDirectSolve(t *testing.T) {
	g, _ := grid.Parse(testPuzzle)

	cs := NewCachedSolver(16)
	direct := solver.Solve(g)
	cached := cs.Solve(g)
	hit := cs.Solve(g)

	if cached.Solution != direct.Solution || hit.Solution != direct.Solution {
		t.Error("cached result differs from a direct solve")
	}
	if cs.Cache().Stats().Hits != 1 {
		t.Errorf("hits = %d, want 1", cs.Cache().Stats().Hits)
	}
}

func TestClear(t *testing.T) {
	g, _ := grid.Parse(testPuzzle)
	c := New(0)
	c.Put(g, solver.Result{})
	c.Clear()
	if c.Size() != 0 {
		t.Errorf("size = %d after Clear, want 0", c.Size())
	}
}
