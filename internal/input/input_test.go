package input

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cabinet.json")
	if err := os.WriteFile(path, []byte(`{"hierarchy":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.Name != path {
		t.Errorf("name = %q", src.Name)
	}
	if string(src.Data) != `{"hierarchy":[]}` {
		t.Errorf("data = %q", src.Data)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadRemote(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte("# 12 Insecta\n"))
	}))
	defer ts.Close()

	src, err := NewLoader().Load(ts.URL + "/catalog")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.Name != "catalog.md" {
		t.Errorf("name = %q", src.Name)
	}
	if string(src.Data) != "# 12 Insecta\n" {
		t.Errorf("data = %q", src.Data)
	}
}

func TestLoadRemoteError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	if _, err := NewLoader().Load(ts.URL + "/gone.json"); err == nil {
		t.Fatal("expected error for 404")
	}
}
