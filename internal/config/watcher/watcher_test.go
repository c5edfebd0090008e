package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func newTestWatcher(t *testing.T, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func waitEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for an event")
		return Event{}
	}
}

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestConvertOp(t *testing.T) {
	tests := []struct {
		in   fsnotify.Op
		want Operation
		ok   bool
	}{
		{fsnotify.Write, OpWrite, true},
		{fsnotify.Create, OpCreate, true},
		{fsnotify.Create | fsnotify.Write, OpCreate, true},
		{fsnotify.Remove, OpRemove, true},
		{fsnotify.Rename, OpRename, true},
		{fsnotify.Chmod, 0, false},
	}
	for _, tt := range tests {
		got, ok := convertOp(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("convertOp(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	w := newTestWatcher(t)
	err := w.Watch(filepath.Join(t.TempDir(), "nope", "hud.toml"))
	if err != ErrPathNotExist {
		t.Errorf("Watch = %v, want ErrPathNotExist", err)
	}
}

func TestWatchAfterClose(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "hud.toml")); err != ErrWatcherClosed {
		t.Errorf("Watch = %v, want ErrWatcherClosed", err)
	}
}

func TestWatchDeliversWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hud.toml")
	if err := os.WriteFile(path, []byte("[screen]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newTestWatcher(t, WithDebounce(20*time.Millisecond))
	events := make(chan Event, 16)
	w.OnChange(func(ev Event) { events <- ev })
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[screen]\nsize = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, events)
	if ev.Path != path {
		t.Errorf("Path = %q, want %q", ev.Path, path)
	}
	if ev.Op != OpWrite {
		t.Errorf("Op = %v, want write", ev.Op)
	}
}

func TestQueueCoalesces(t *testing.T) {
	w := newTestWatcher(t)
	path := filepath.Join(t.TempDir(), "hud.toml")
	w.files[path] = true

	w.queue(fsnotify.Event{Name: path, Op: fsnotify.Create})
	w.queue(fsnotify.Event{Name: path, Op: fsnotify.Write})
	if got := w.pending[path].Op; got != OpCreate {
		t.Errorf("create then write = %v, want create", got)
	}

	w.queue(fsnotify.Event{Name: path, Op: fsnotify.Remove})
	if got := w.pending[path].Op; got != OpRemove {
		t.Errorf("then remove = %v, want remove", got)
	}

	w.queue(fsnotify.Event{Name: path, Op: fsnotify.Write})
	if got := w.pending[path].Op; got != OpRemove {
		t.Errorf("remove then write = %v, want remove", got)
	}

	w.queue(fsnotify.Event{Name: path, Op: fsnotify.Create})
	if got := w.pending[path].Op; got != OpCreate {
		t.Errorf("remove then create = %v, want create", got)
	}

	if w.queue(fsnotify.Event{Name: path + ".bak", Op: fsnotify.Write}) {
		t.Error("events for unwatched files should be ignored")
	}
}
