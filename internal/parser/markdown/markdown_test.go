package markdown

import (
	"testing"
)

const sample = `# 12 Insecta

Some prose that should be ignored.

## 12.1 Coleoptera

### 12.1.1 Carabidae

## 12.2 Lepidoptera

# 13 Arachnida
`

func TestParseHeadingTree(t *testing.T) {
	doc, err := NewParser().ParseString(sample)
	if err != nil {
		t.Fatalf("parse: %v", err)
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
	if coleo.Code != "12.1" {
		t.Errorf("child code = %q", coleo.Code)
	}
	if len(coleo.Children) != 1 || coleo.Children[0].Name != "Carabidae" {
		t.Errorf("grandchild = %+v", coleo.Children)
	}
	if doc.Roots[1].Name != "Arachnida" {
		t.Errorf("second root = %q", doc.Roots[1].Name)
	}
}

func TestParseSkippedLevels(t *testing.T) {
	doc, err := NewParser().ParseString("# Top\n\n### Deep\n\n## Middle\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Roots) != 1 {
		t.Fatalf("roots = %d, want 1", len(doc.Roots))
	}
	top := doc.Roots[0]
	if len(top.Children) != 2 {
		t.Fatalf("children of Top = %d, want 2", len(top.Children))
	}
	if top.Children[0].Name != "Deep" || top.Children[1].Name != "Middle" {
		t.Errorf("children = %q, %q", top.Children[0].Name, top.Children[1].Name)
	}
}

func TestParseNoHeadings(t *testing.T) {
	doc, err := NewParser().ParseString("just a paragraph\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Roots) != 0 {
		t.Errorf("roots = %d, want 0", len(doc.Roots))
	}
}
