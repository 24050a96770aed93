package comments

import (
	"testing"

	"github.com/jwrfree/jatinotes-sub000/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func TestOrganizeMixedSchemes(t *testing.T) {
	flat := []models.Comment{
		{ID: "A"},
		{ID: "B", ParentID: strPtr("A")},
		{ID: "C", LegacyParentID: intPtr(5)},
		{ID: "D", LegacyExternalID: intPtr(5)},
	}

	roots := Organize(flat)

	if got := ids(roots); len(got) != 2 || got[0] != "A" || got[1] != "D" {
		t.Fatalf("Expected roots [A D], got %v", got)
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].ID != "B" {
		t.Errorf("Expected B under A, got %v", ids(roots[0].Children))
	}
	if len(roots[1].Children) != 1 || roots[1].Children[0].ID != "C" {
		t.Errorf("Expected C under D via legacy resolution, got %v", ids(roots[1].Children))
	}
}

func TestOrganizeNativeTakesPrecedence(t *testing.T) {
	flat := []models.Comment{
		{ID: "A"},
		{ID: "B", LegacyExternalID: intPtr(7)},
		// Both schemes present: the native reference must win.
		{ID: "C", ParentID: strPtr("A"), LegacyParentID: intPtr(7)},
	}

	roots := Organize(flat)

	if len(roots) != 2 {
		t.Fatalf("Expected 2 roots, got %v", ids(roots))
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].ID != "C" {
		t.Errorf("Expected C under A, got %v", ids(roots[0].Children))
	}
	if len(roots[1].Children) != 0 {
		t.Errorf("Expected B childless, got %v", ids(roots[1].Children))
	}
}

func TestOrganizeOrphanBecomesRoot(t *testing.T) {
	flat := []models.Comment{
		{ID: "A", ParentID: strPtr("missing")},
		{ID: "B", LegacyParentID: intPtr(99)},
	}

	roots := Organize(flat)

	if got := ids(roots); len(got) != 2 {
		t.Fatalf("Expected orphans as roots, got %v", got)
	}
}

func TestOrganizeSelfReferenceBecomesRoot(t *testing.T) {
	flat := []models.Comment{
		{ID: "A", ParentID: strPtr("A")},
		{ID: "B", LegacyParentID: intPtr(3), LegacyExternalID: intPtr(3)},
	}

	roots := Organize(flat)

	if got := ids(roots); len(got) != 2 {
		t.Fatalf("Expected self-referencing comments as roots, got %v", got)
	}
	for _, r := range roots {
		if len(r.Children) != 0 {
			t.Errorf("Comment %s attached as its own child", r.ID)
		}
	}
}

func TestOrganizePreservesSiblingOrder(t *testing.T) {
	flat := []models.Comment{
		{ID: "root"},
		{ID: "r1", ParentID: strPtr("root")},
		{ID: "r2", ParentID: strPtr("root")},
		{ID: "r3", ParentID: strPtr("root")},
	}

	roots := Organize(flat)

	if len(roots) != 1 {
		t.Fatalf("Expected a single root, got %v", ids(roots))
	}
	want := []string{"r1", "r2", "r3"}
	got := ids(roots[0].Children)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sibling order not preserved: got %v, want %v", got, want)
		}
	}
}

func TestOrganizeIdempotentOverFlatten(t *testing.T) {
	flat := []models.Comment{
		{ID: "A"},
		{ID: "B", ParentID: strPtr("A")},
		{ID: "C", ParentID: strPtr("B")},
		{ID: "D", LegacyExternalID: intPtr(1)},
		{ID: "E", LegacyParentID: intPtr(1)},
	}

	first := Organize(flat)
	second := Organize(Flatten(first))

	var shape func(nodes []*Node) string
	shape = func(nodes []*Node) string {
		out := ""
		for _, n := range nodes {
			out += n.ID + "(" + shape(n.Children) + ")"
		}
		return out
	}

	if shape(first) != shape(second) {
		t.Errorf("Forest shape changed on reapplication: %s vs %s", shape(first), shape(second))
	}
}

func TestWalkBreaksCycles(t *testing.T) {
	// A two-node cycle cannot be produced by the store, but traversal must
	// not hang if one shows up.
	a := &Node{Comment: models.Comment{ID: "A"}}
	b := &Node{Comment: models.Comment{ID: "B"}}
	a.Children = []*Node{b}
	b.Children = []*Node{a}

	var visited []string
	Walk([]*Node{a}, func(n *Node, _ int) {
		visited = append(visited, n.ID)
	})

	if len(visited) != 2 {
		t.Errorf("Expected each node visited once, got %v", visited)
	}
}

func TestWalkDepths(t *testing.T) {
	flat := []models.Comment{
		{ID: "A"},
		{ID: "B", ParentID: strPtr("A")},
		{ID: "C", ParentID: strPtr("B")},
	}

	depths := map[string]int{}
	Walk(Organize(flat), func(n *Node, depth int) {
		depths[n.ID] = depth
	})

	if depths["A"] != 0 || depths["B"] != 1 || depths["C"] != 2 {
		t.Errorf("Unexpected depths: %v", depths)
	}
}
