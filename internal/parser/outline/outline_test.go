package outline

import (
	"strings"
	"testing"
)

const sample = `title: Beetle Cabinet
cabinet: West Wing, Drawer 4

# specimens collected 2019
- 12 Insecta
-- 12.1 Coleoptera
--- 12.1.1 Carabidae
-- 12.2 Lepidoptera
- 13 Arachnida
`

func TestParseOutline(t *testing.T) {
	doc, err := NewParser().ParseString(sample)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Title != "Beetle Cabinet" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.CabinetSection != "West Wing, Drawer 4" {
		t.Errorf("cabinet = %q", doc.CabinetSection)
	}
	if len(doc.Roots) != 2 {
		t.Fatalf("roots = %d, want 2", len(doc.Roots))
	}
	insecta := doc.Roots[0]
	if insecta.Code != "12" || insecta.Name != "Insecta" {
		t.Errorf("root = %q %q", insecta.Code, insecta.Name)
	}
	if len(insecta.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(insecta.Children))
	}
	coleo := insecta.Children[0]
	if coleo.Code != "12.1" || len(coleo.Children) != 1 {
		t.Errorf("coleoptera = %q children=%d", coleo.Code, len(coleo.Children))
	}
	if coleo.Children[0].Name != "Carabidae" {
		t.Errorf("grandchild = %q", coleo.Children[0].Name)
	}
}

func TestParseHeaderWithoutSpaces(t *testing.T) {
	// The key and colon lex as separate tokens even with no whitespace
	// around the colon.
	doc, err := NewParser().ParseString("title:Compact Header\n- Alpha\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Title != "Compact Header" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Roots) != 1 || doc.Roots[0].Name != "Alpha" {
		t.Errorf("roots = %+v", doc.Roots)
	}
}

func TestParseEntriesWithoutHeaders(t *testing.T) {
	doc, err := NewParser().Parse(strings.NewReader("- Alpha\n- Beta\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Title != "" {
		t.Errorf("title = %q, want empty", doc.Title)
	}
	if len(doc.Roots) != 2 || doc.Roots[0].Name != "Alpha" {
		t.Errorf("roots = %+v", doc.Roots)
	}
}

func TestParseDepthJump(t *testing.T) {
	doc, err := NewParser().ParseString("- Top\n--- Deep\n-- Middle\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	top := doc.Roots[0]
	if len(top.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(top.Children))
	}
	if top.Children[0].Name != "Deep" || top.Children[1].Name != "Middle" {
		t.Errorf("children = %q, %q", top.Children[0].Name, top.Children[1].Name)
	}
}

func TestParseEmptyEntry(t *testing.T) {
	if _, err := NewParser().ParseString("- Alpha\n-\n"); err == nil {
		t.Fatal("expected error for empty entry")
	}
}
