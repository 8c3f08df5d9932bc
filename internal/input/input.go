// Package input fetches label inputs for the CLI: local files and
// http(s) URLs are both accepted.
package input

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
)

// Source is a fetched input: raw bytes plus the name used to pick a parser.
type Source struct {
	Name string
	Data []byte
}

// Loader handles loading label inputs.
type Loader struct {
	client *http.Client
}

// NewLoader creates a new input loader.
func NewLoader() *Loader {
	return &Loader{client: &http.Client{}}
}

// Load loads an input from a URL or file path.
func (l *Loader) Load(ref string) (*Source, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return l.loadRemote(ref)
	}
	return loadLocal(ref)
}

func loadLocal(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Source{Name: path, Data: data}, nil
}

func (l *Loader) loadRemote(urlStr string) (*Source, error) {
	resp, err := l.client.Get(urlStr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	name := remoteName(urlStr)
	if path.Ext(name) == "" {
		name += extensionForType(resp.Header.Get("Content-Type"))
	}
	return &Source{Name: name, Data: data}, nil
}

func remoteName(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "input"
	}
	return path.Base(u.Path)
}

// extensionForType maps a Content-Type header to a parser extension.
func extensionForType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	switch mediaType {
	case "application/json":
		return ".json"
	case "text/markdown":
		return ".md"
	case "text/html":
		return ".html"
	case "text/plain":
		return ".txt"
	}
	return ""
}
