package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// memFS is an in-memory FileSystem.
type memFS struct {
	files map[string][]byte
}

func newMemFS() *memFS {
	return &memFS{files: make(map[string][]byte)}
}

func (m *memFS) add(path, content string) {
	m.files[path] = []byte(content)
}

func (m *memFS) Open(string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f *memFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

const sampleTOML = `
[screen]
scale = 3
size = 5

[font]
ramp = [176, 176, 177, 178, 179, 180, 181]

[render]
translucency = true
`

const sampleYAML = `
screen:
  scale: 3
  size: 5
font:
  ramp: [176, 176, 177, 178, 179, 180, 181]
render:
  translucency: true
`

func TestFileLoaders(t *testing.T) {
	memfs := newMemFS()
	memfs.add("/hud.toml", sampleTOML)
	memfs.add("/hud.yaml", sampleYAML)

	for _, path := range []string{"/hud.toml", "/hud.yaml"} {
		t.Run(path, func(t *testing.T) {
			config, err := ForPath(memfs, path).Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			screen, ok := config["screen"].(map[string]any)
			if !ok {
				t.Fatalf("screen = %T, want a map", config["screen"])
			}
			if screen["scale"] != int64(3) {
				t.Errorf("scale = %v (%T), want int64 3", screen["scale"], screen["scale"])
			}
			ramp, ok := config["font"].(map[string]any)["ramp"].([]any)
			if !ok || len(ramp) != 7 || ramp[6] != int64(181) {
				t.Errorf("ramp = %#v", config["font"])
			}
			if config["render"].(map[string]any)["translucency"] != true {
				t.Errorf("translucency = %v", config["render"])
			}
		})
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path string
		yaml bool
	}{
		{"hud.toml", false},
		{"hud.yaml", true},
		{"HUD.YML", true},
		{"hud", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, isYAML := ForPath(newMemFS(), tt.path).(*YAMLLoader)
			if isYAML != tt.yaml {
				t.Errorf("ForPath(%q) YAML = %v, want %v", tt.path, isYAML, tt.yaml)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	for _, path := range []string{"/none.toml", "/none.yaml"} {
		config, err := ForPath(newMemFS(), path).Load()
		if err != nil || config != nil {
			t.Errorf("%s: Load = %v, %v; want nil, nil", path, config, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	memfs := newMemFS()
	memfs.add("/bad.toml", "[screen]\nscale = = 3\n")
	memfs.add("/bad.yaml", "screen:\n  scale: 3\n size: [\n")

	for _, path := range []string{"/bad.toml", "/bad.yaml"} {
		t.Run(path, func(t *testing.T) {
			_, err := ForPath(memfs, path).Load()
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *ParseError", err)
			}
			if perr.Path != path {
				t.Errorf("Path = %q, want %q", perr.Path, path)
			}
			if perr.Line == 0 {
				t.Errorf("Line = 0, want the failing line: %v", perr)
			}
			if perr.Unwrap() == nil {
				t.Error("Unwrap() = nil")
			}
		})
	}
}

func TestLoadFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("TOML: %v", err)
	}
	if _, ok := config["screen"]; !ok {
		t.Error("TOML reader lost the screen section")
	}

	config, err = NewYAMLLoader("").LoadFromReader(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	if _, ok := config["font"]; !ok {
		t.Error("YAML reader lost the font section")
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		err  ParseError
		want string
	}{
		{ParseError{Path: "a", Message: "m"}, "parse error in a: m"},
		{ParseError{Path: "a", Line: 2, Message: "m"}, "parse error in a at line 2: m"},
		{ParseError{Path: "a", Line: 2, Column: 5, Message: "m"}, "parse error in a at line 2, column 5: m"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"screen": map[string]any{"scale": int64(2), "size": int64(8)},
		"hud":    map[string]any{"logLines": int64(1)},
	}
	src := map[string]any{
		"screen":  map[string]any{"size": int64(5)},
		"logging": map[string]any{"level": "debug"},
	}

	got := DeepMerge(dst, src)
	screen := got["screen"].(map[string]any)
	if screen["scale"] != int64(2) || screen["size"] != int64(5) {
		t.Errorf("screen = %v", screen)
	}
	if got["hud"].(map[string]any)["logLines"] != int64(1) {
		t.Errorf("hud = %v", got["hud"])
	}
	if got["logging"].(map[string]any)["level"] != "debug" {
		t.Errorf("logging = %v", got["logging"])
	}

	if DeepMerge(nil, nil) == nil {
		t.Error("DeepMerge(nil, nil) should return an empty map")
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{
		"font": map[string]any{"ramp": []any{int64(1), int64(2)}},
	}
	dst := Clone(src)
	dst["font"].(map[string]any)["ramp"].([]any)[0] = int64(9)

	if src["font"].(map[string]any)["ramp"].([]any)[0] != int64(1) {
		t.Error("Clone shares nested slices with the source")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}
