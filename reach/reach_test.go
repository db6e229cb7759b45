package reach_test

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/socialreach/core"
	"github.com/katalvlaran/socialreach/reach"
)

// graph builds a registry from names (ids 0..n-1) and an adjacency from pairs.
func graph(t testing.TB, names []string, pairs [][2]core.NodeID) (*core.Adjacency, *core.Registry) {
	t.Helper()
	rows := make([]core.NodeRow, len(names))
	for i, n := range names {
		rows[i] = core.NodeRow{ID: core.NodeID(i), RawName: n}
	}
	reg := core.BuildRegistry(rows)
	edges := make([]core.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = core.Edge{From: p[0], To: p[1]}
	}
	adj, err := core.BuildAdjacency(reg, edges)
	if err != nil {
		t.Fatalf("BuildAdjacency: %v", err)
	}
	return adj, reg
}

var chainNames = []string{"Alice", "Bob", "Charlie", "Dave", "Eve"}

func chain(t testing.TB) (*core.Adjacency, *core.Registry) {
	return graph(t, chainNames, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
}

// TestBoundedReach_Errors verifies that invalid inputs are rejected.
func TestBoundedReach_Errors(t *testing.T) {
	adj, reg := chain(t)

	if _, err := reach.BoundedReach(nil, reg, "Alice", 3); !errors.Is(err, reach.ErrNilGraph) {
		t.Errorf("nil adjacency: want ErrNilGraph, got %v", err)
	}
	if _, err := reach.BoundedReach(adj, nil, "Alice", 3); !errors.Is(err, reach.ErrNilGraph) {
		t.Errorf("nil registry: want ErrNilGraph, got %v", err)
	}
	if _, err := reach.BoundedReach(adj, reg, "Mallory", 3); !errors.Is(err, reach.ErrStartNotFound) {
		t.Errorf("unknown start: want ErrStartNotFound, got %v", err)
	}
	if _, err := reach.BoundedReach(adj, reg, "Alice", -1); !errors.Is(err, reach.ErrInvalidHops) {
		t.Errorf("negative hops: want ErrInvalidHops, got %v", err)
	}
}

// TestBoundedReach_ChainThreeHops: Eve sits at depth 4 and must not be counted.
func TestBoundedReach_ChainThreeHops(t *testing.T) {
	adj, reg := chain(t)

	res, err := reach.BoundedReach(adj, reg, "Alice", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reached != 3 {
		t.Errorf("Reached = %d; want 3", res.Reached)
	}
	if want := []core.NodeID{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, ok := res.Depth[4]; ok {
		t.Errorf("Eve must not be visited within 3 hops")
	}
	if res.StartName != "Alice" || res.Start != 0 {
		t.Errorf("start = %d/%q; want 0/Alice", res.Start, res.StartName)
	}
}

// TestBoundedReach_ZeroHops: only the start is visited, and it is excluded.
func TestBoundedReach_ZeroHops(t *testing.T) {
	adj, reg := chain(t)

	for _, name := range chainNames {
		res, err := reach.BoundedReach(adj, reg, name, 0)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if res.Reached != 0 || len(res.Order) != 1 {
			t.Errorf("%s: Reached = %d, Order = %v; want 0 and [start]", name, res.Reached, res.Order)
		}
	}
}

// TestBoundedReach_BoundaryDepthCountedNotExpanded checks nodes at exactly
// maxHops are counted while their successors are not.
func TestBoundedReach_BoundaryDepthCountedNotExpanded(t *testing.T) {
	adj, reg := chain(t)

	res, err := reach.BoundedReach(adj, reg, "Alice", 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached != 1 || res.Depth[1] != 1 {
		t.Errorf("Reached = %d, Depth[Bob] = %d; want 1, 1", res.Reached, res.Depth[1])
	}
	if _, ok := res.Depth[2]; ok {
		t.Errorf("Charlie must not be visited with maxHops=1")
	}
}

// TestBoundedReach_SubstringMatch resolves by containment in registry order.
func TestBoundedReach_SubstringMatch(t *testing.T) {
	adj, reg := chain(t)

	res, err := reach.BoundedReach(adj, reg, "harl", 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.StartName != "Charlie" || res.Reached != 2 {
		t.Errorf("got start %q reached %d; want Charlie, 2", res.StartName, res.Reached)
	}
}

// TestBoundedReach_CyclesAndParallelEdges ensures dedup on revisits.
func TestBoundedReach_CyclesAndParallelEdges(t *testing.T) {
	adj, reg := graph(t,
		[]string{"A", "B", "C"},
		[][2]core.NodeID{{0, 0}, {0, 1}, {0, 1}, {1, 2}, {2, 0}, {2, 1}},
	)

	res, err := reach.BoundedReach(adj, reg, "A", 10)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached != 2 {
		t.Errorf("Reached = %d; want 2", res.Reached)
	}
	if want := []core.NodeID{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBoundedReach_UnregisteredSuccessorCounted: a successor without a name is still a node.
func TestBoundedReach_UnregisteredSuccessorCounted(t *testing.T) {
	adj, reg := graph(t, []string{"A"}, [][2]core.NodeID{{0, 42}})

	res, err := reach.BoundedReach(adj, reg, "A", 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached != 1 {
		t.Errorf("Reached = %d; want 1", res.Reached)
	}
}

// TestBoundedReach_SiblingOrder follows adjacency-list order, then FIFO.
func TestBoundedReach_SiblingOrder(t *testing.T) {
	adj, reg := graph(t,
		[]string{"root", "x", "y", "z", "w"},
		[][2]core.NodeID{{0, 3}, {0, 1}, {3, 4}, {1, 2}},
	)

	res, err := reach.BoundedReach(adj, reg, "root", 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.NodeID{0, 3, 1, 4, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := [][]core.NodeID{{0}, {3, 1}, {4, 2}}; !reflect.DeepEqual(res.Levels(), want) {
		t.Errorf("Levels = %v; want %v", res.Levels(), want)
	}
}

// TestBoundedReach_Monotonic checks Reached never decreases as maxHops grows.
func TestBoundedReach_Monotonic(t *testing.T) {
	const n = 200
	r := rand.New(rand.NewSource(7))
	names := make([]string, n)
	for i := range names {
		names[i] = "page"
	}
	var pairs [][2]core.NodeID
	for i := 0; i < 3*n; i++ {
		pairs = append(pairs, [2]core.NodeID{core.NodeID(r.Intn(n)), core.NodeID(r.Intn(n))})
	}
	adj, _ := graph(t, names, pairs)

	prev := -1
	for hops := 0; hops <= 12; hops++ {
		res, err := reach.FromID(adj, 0, hops)
		if err != nil {
			t.Fatal(err)
		}
		if res.Reached < prev {
			t.Fatalf("hops=%d: Reached %d < previous %d", hops, res.Reached, prev)
		}
		prev = res.Reached
	}
}

// TestFromID_StartWithoutOutgoingEdges visits only the start.
func TestFromID_StartWithoutOutgoingEdges(t *testing.T) {
	adj, _ := chain(t)

	res, err := reach.FromID(adj, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached != 0 || res.StartName != core.UnknownName {
		t.Errorf("got Reached %d, StartName %q", res.Reached, res.StartName)
	}
}

// TestBoundedReach_Hooks asserts hook order and depths.
func TestBoundedReach_Hooks(t *testing.T) {
	adj, reg := chain(t)

	var enq, vis []int
	_, err := reach.BoundedReach(adj, reg, "Alice", 2,
		reach.WithOnEnqueue(func(_ core.NodeID, d int) { enq = append(enq, d) }),
		reach.WithOnVisit(func(_ core.NodeID, d int) error { vis = append(vis, d); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(enq, want) || !reflect.DeepEqual(vis, want) {
		t.Errorf("enqueue depths %v, visit depths %v; want %v", enq, vis, want)
	}
}

// TestBoundedReach_VisitErrorAborts wraps the hook error.
func TestBoundedReach_VisitErrorAborts(t *testing.T) {
	adj, reg := chain(t)
	stop := errors.New("stop")

	_, err := reach.BoundedReach(adj, reg, "Alice", 3,
		reach.WithOnVisit(func(id core.NodeID, _ int) error {
			if id == 2 {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) || !strings.Contains(err.Error(), "OnVisit") {
		t.Errorf("want wrapped stop error, got %v", err)
	}
}

// TestBoundedReach_FilterNeighbor prunes Bob→Charlie.
func TestBoundedReach_FilterNeighbor(t *testing.T) {
	adj, reg := chain(t)

	res, err := reach.BoundedReach(adj, reg, "Alice", 3,
		reach.WithFilterNeighbor(func(curr, nbr core.NodeID) bool { return !(curr == 1 && nbr == 2) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached != 1 {
		t.Errorf("Reached = %d; want 1", res.Reached)
	}
}

// TestBoundedReach_Cancellation verifies that a cancelled context halts the search.
func TestBoundedReach_Cancellation(t *testing.T) {
	adj, reg := chain(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := reach.BoundedReach(adj, reg, "Alice", 3, reach.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestResult_PathTo covers reachable and unreachable targets.
func TestResult_PathTo(t *testing.T) {
	adj, reg := chain(t)
	res, err := reach.BoundedReach(adj, reg, "Alice", 3)
	if err != nil {
		t.Fatal(err)
	}

	if path, _ := res.PathTo(3); !reflect.DeepEqual(path, []core.NodeID{0, 1, 2, 3}) {
		t.Errorf("PathTo(Dave) = %v", path)
	}
	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []core.NodeID{0}) {
		t.Errorf("PathTo(start) = %v", path)
	}
	if _, err := res.PathTo(4); err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo(Eve): expected error, got %v", err)
	}
}
