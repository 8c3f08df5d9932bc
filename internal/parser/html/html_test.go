package html

import "testing"

const sample = `<!DOCTYPE html>
<html>
<head><title>Beetle Cabinet</title></head>
<body>
<h1>Ignored heading</h1>
<ul>
  <li>12 Insecta
    <ul>
      <li>12.1 Coleoptera</li>
      <li>12.2 Lepidoptera</li>
    </ul>
  </li>
  <li>13 Arachnida</li>
</ul>
</body>
</html>`

func TestParseNestedList(t *testing.T) {
	doc, err := NewParser().ParseString(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Title != "Beetle Cabinet" {
		t.Fatalf("title = %q", doc.Title)
	}
	if len(doc.Roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(doc.Roots))
	}

	first := doc.Roots[0]
	if first.Code != "12" || first.Name != "Insecta" {
		t.Fatalf("root = %q / %q", first.Code, first.Name)
	}
	if len(first.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(first.Children))
	}
	if c := first.Children[0]; c.Code != "12.1" || c.Name != "Coleoptera" {
		t.Fatalf("child = %q / %q", c.Code, c.Name)
	}
	if doc.Roots[1].Code != "13" {
		t.Fatalf("second root code = %q", doc.Roots[1].Code)
	}
}

func TestParseItemWithoutCode(t *testing.T) {
	doc, err := NewParser().ParseString(`<ul><li>Just a name</li></ul>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(doc.Roots))
	}
	if doc.Roots[0].Code != "" || doc.Roots[0].Name != "Just a name" {
		t.Fatalf("root = %q / %q", doc.Roots[0].Code, doc.Roots[0].Name)
	}
}

func TestParseNoList(t *testing.T) {
	doc, err := NewParser().ParseString(`<p>nothing here</p>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Roots) != 0 {
		t.Fatalf("expected no roots, got %d", len(doc.Roots))
	}
}
