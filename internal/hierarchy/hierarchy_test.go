package hierarchy

import (
	"reflect"
	"testing"
)

func sampleTree() []*Node {
	return []*Node{
		{
			Code: "12", Name: "Insecta",
			Children: []*Node{
				{Code: "12.1", Name: "Coleoptera", Children: []*Node{
					{Code: "12.1.4", Name: "Carabidae"},
				}},
				{Code: "12.2", Name: "Lepidoptera"},
			},
		},
		{Code: "13", Name: "Arachnida"},
	}
}

func TestFlattenOrderAndLevels(t *testing.T) {
	rows := Flatten(sampleTree())

	want := []FlatRow{
		{1, "12", "Insecta"},
		{2, "12.1", "Coleoptera"},
		{3, "12.1.4", "Carabidae"},
		{2, "12.2", "Lepidoptera"},
		{1, "13", "Arachnida"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("Flatten = %v, want %v", rows, want)
	}
}

func TestFlattenTrimsAndDropsPlaceholder(t *testing.T) {
	rows := Flatten([]*Node{{Code: "  7 ", Name: " Mollusca "}})
	if len(rows) != 1 || rows[0].Code != "7" || rows[0].Name != "Mollusca" {
		t.Fatalf("expected trimmed single row, got %v", rows)
	}

	// A lone blank node is the default editor placeholder and must vanish.
	if rows := Flatten([]*Node{{}}); rows != nil {
		t.Fatalf("placeholder root should flatten to nothing, got %v", rows)
	}

	// Two blank nodes are real (if odd) data.
	if rows := Flatten([]*Node{{}, {}}); len(rows) != 2 {
		t.Fatalf("two blank roots should survive, got %v", rows)
	}

	if rows := Flatten(nil); rows != nil {
		t.Fatalf("empty tree should flatten to nothing, got %v", rows)
	}
}

func TestGroupByLevel1Partition(t *testing.T) {
	rows := Flatten(sampleTree())
	groups := GroupByLevel1(rows)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if len(groups[0]) != 4 || len(groups[1]) != 1 {
		t.Fatalf("unexpected group sizes: %d, %d", len(groups[0]), len(groups[1]))
	}

	// Concatenating the groups must reproduce the flattened sequence exactly.
	var flat []FlatRow
	for _, g := range groups {
		flat = append(flat, g...)
	}
	if !reflect.DeepEqual(flat, rows) {
		t.Fatalf("group concatenation diverges from Flatten output")
	}
}

func TestGroupByLevel1LeadingOrphans(t *testing.T) {
	rows := []FlatRow{
		{2, "x.1", "orphan"},
		{3, "x.1.1", "deeper orphan"},
		{1, "1", "first real group"},
		{2, "1.1", "child"},
	}
	groups := GroupByLevel1(rows)
	if len(groups) != 2 {
		t.Fatalf("expected leading orphan group + one real group, got %d groups", len(groups))
	}
	if groups[0][0].Level != 2 {
		t.Fatalf("leading group should start with the orphan row, got %v", groups[0][0])
	}

	if got := GroupByLevel1(nil); got != nil {
		t.Fatalf("GroupByLevel1(nil) = %v, want nil", got)
	}
}

func TestExpandChildCode(t *testing.T) {
	tests := []struct {
		parent, child, want string
	}{
		{"12", "06", "12.6"},
		{"12", "6", "12.6"},
		{"12", "12.6", "12.6"},  // already delimited
		{"", "06", "06"},        // no parent context
		{"12", "", ""},          // nothing to expand
		{"12", "abc", "abc"},    // not a numeric suffix
		{"12", "1234", "1234"},  // too long for a suffix
		{"12", " 06 ", "12.6"},  // whitespace tolerated
	}
	for _, tt := range tests {
		if got := ExpandChildCode(tt.parent, tt.child, "."); got != tt.want {
			t.Errorf("ExpandChildCode(%q, %q) = %q, want %q", tt.parent, tt.child, got, tt.want)
		}
	}
}

func TestExpandChildCodesRecursesWithExpandedParent(t *testing.T) {
	roots := []*Node{
		{Code: "12", Name: "Insecta", Children: []*Node{
			{Code: "06", Name: "Coleoptera", Children: []*Node{
				{Code: "2", Name: "Carabidae"},
			}},
		}},
	}
	ExpandChildCodes(roots, ".")

	if got := roots[0].Children[0].Code; got != "12.6" {
		t.Fatalf("child code = %q, want 12.6", got)
	}
	if got := roots[0].Children[0].Children[0].Code; got != "12.6.2" {
		t.Fatalf("grandchild code = %q, want 12.6.2", got)
	}
}
