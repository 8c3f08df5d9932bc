// Package hierarchy defines the catalog tree consumed by the layout engine
// and the flattening/grouping passes applied to it before pagination.
package hierarchy

import "strings"

// Node is one entry in the catalog tree: a code, a display name, and an
// ordered list of children. The tree editor exports trees of arbitrary
// depth; the layout engine handles any depth even though the UI caps it.
type Node struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Children []*Node `json:"children,omitempty"`
}

// FlatRow is one row of the flattened tree: 1-based depth plus the node's
// code and name, both trimmed.
type FlatRow struct {
	Level int
	Code  string
	Name  string
}

// Document is a full label document as handed over by a front-end: metadata
// plus the root nodes of the hierarchy.
type Document struct {
	Title          string  `json:"title"`
	CabinetSection string  `json:"cabinet_section"`
	Roots          []*Node `json:"hierarchy"`
}

// Flatten converts the tree into rows by pre-order depth-first traversal,
// siblings in their given order, level 1 at the roots.
//
// If the result is a single row with both code and name blank it is dropped:
// that is the placeholder node an empty editor starts with, and an export of
// an empty document should produce a header-only PDF, not one blank row.
func Flatten(roots []*Node) []FlatRow {
	rows := walk(roots, 1, nil)
	if len(rows) == 1 && rows[0].Code == "" && rows[0].Name == "" {
		return nil
	}
	return rows
}

func walk(nodes []*Node, level int, out []FlatRow) []FlatRow {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		out = append(out, FlatRow{
			Level: level,
			Code:  strings.TrimSpace(n.Code),
			Name:  strings.TrimSpace(n.Name),
		})
		out = walk(n.Children, level+1, out)
	}
	return out
}

// GroupByLevel1 partitions rows into level-1 blocks: each group starts at a
// level-1 row and runs until the next one. Rows preceding the first level-1
// row form their own leading group. Concatenating the groups in order
// reproduces the input exactly.
func GroupByLevel1(rows []FlatRow) [][]FlatRow {
	if len(rows) == 0 {
		return nil
	}

	var groups [][]FlatRow
	var cur []FlatRow
	for _, r := range rows {
		if r.Level == 1 {
			if len(cur) > 0 {
				groups = append(groups, cur)
			}
			cur = []FlatRow{r}
			continue
		}
		cur = append(cur, r)
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}
