package template

import "testing"

func TestResolveFallsBackToClassic(t *testing.T) {
	for _, id := range []string{"", "   ", "gothic", "CLASSIC?", "classic "} {
		if spec := Resolve(id); spec.ID != DefaultID {
			t.Errorf("Resolve(%q).ID = %q, want %q", id, spec.ID, DefaultID)
		}
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	if got := Resolve("Code_First"); got.ID != "code_first" {
		t.Fatalf("Resolve(Code_First).ID = %q", got.ID)
	}
}

func TestResolveKnownIDs(t *testing.T) {
	for _, id := range IDs() {
		spec := Resolve(id)
		if spec.ID != id {
			t.Errorf("Resolve(%q).ID = %q", id, spec.ID)
		}
		if spec.MaxFont < spec.MinFont {
			t.Errorf("%s: MaxFont %.1f < MinFont %.1f", id, spec.MaxFont, spec.MinFont)
		}
		if spec.CodeColFrac <= 0 || spec.CodeColFrac >= 1 {
			t.Errorf("%s: CodeColFrac %.2f out of (0,1)", id, spec.CodeColFrac)
		}
		if spec.FontRegular.Family == "" || spec.FontBold.Style == "" {
			t.Errorf("%s: incomplete font pair %+v / %+v", id, spec.FontRegular, spec.FontBold)
		}
	}
}

func TestTemplateFlags(t *testing.T) {
	checks := []struct {
		id   string
		flag func(Spec) bool
	}{
		{"outline", func(s Spec) bool { return s.UsesBulletsAndIndent }},
		{"two_column", func(s Spec) bool { return s.UsesBulletsAndIndent }},
		{"code_first", func(s Spec) bool { return s.EmphasizeCode }},
		{"compact", func(s Spec) bool { return s.DenseSpacing }},
		{"boxed", func(s Spec) bool { return s.BoxedFrame }},
		{"institutional", func(s Spec) bool { return s.InstitutionalChrome }},
	}
	for _, c := range checks {
		if !c.flag(Resolve(c.id)) {
			t.Errorf("template %q is missing its defining flag", c.id)
		}
	}

	if Resolve("classic").UsesBulletsAndIndent {
		t.Error("classic should not render bullets")
	}
	if Resolve("outline").RuleInterval != 0 {
		t.Error("outline should not draw row rules")
	}
}
