package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newWatcher(t *testing.T, opts ...Option) *Watcher {
	t.Helper()
	w, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
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
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestOperation_String(t *testing.T) {
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

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewlines.toml")
	if err := os.WriteFile(path, []byte("[view]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := newWatcher(t, WithDebounce(20*time.Millisecond))
	events := make(chan Event, 16)
	w.OnChange(func(ev Event) { events <- ev })
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("[view]\ntabSize = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ev := waitEvent(t, events)
	if ev.Path != path {
		t.Errorf("Path = %q, want %q", ev.Path, path)
	}
}

func TestWatcher_DetectsCreation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "later.yaml")

	w := newWatcher(t, WithDebounce(0))
	events := make(chan Event, 16)
	w.OnChange(func(ev Event) { events <- ev })
	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() of a missing file error = %v", err)
	}

	if err := os.WriteFile(path, []byte("view: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if ev := waitEvent(t, events); ev.Path != path || ev.Op != OpCreate {
		t.Errorf("event = %+v, want create of %s", ev, path)
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "a.toml")
	other := filepath.Join(dir, "b.toml")

	w := newWatcher(t, WithDebounce(0))
	events := make(chan Event, 16)
	w.OnChange(func(ev Event) { events <- ev })
	if err := w.Watch(watched); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(watched, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if ev := waitEvent(t, events); ev.Path != watched {
		t.Errorf("got event for %s", ev.Path)
	}
}

func TestWatcher_QueueCoalesces(t *testing.T) {
	w := newWatcher(t)
	now := time.Now()

	w.queue(Event{Path: "/a", Op: OpCreate, Time: now})
	w.queue(Event{Path: "/a", Op: OpWrite, Time: now.Add(time.Millisecond)})
	if got := w.pending["/a"]; got.Op != OpCreate || !got.Time.Equal(now.Add(time.Millisecond)) {
		t.Errorf("create+write = %+v, want create with the later time", got)
	}

	w.queue(Event{Path: "/a", Op: OpRemove, Time: now})
	w.queue(Event{Path: "/a", Op: OpRename, Time: now})
	if got := w.pending["/a"].Op; got != OpRemove {
		t.Errorf("remove+rename = %v, want remove", got)
	}

	w.queue(Event{Path: "/b", Op: OpWrite, Time: now})
	w.queue(Event{Path: "/b", Op: OpWrite, Time: now})
	if len(w.pending) != 2 {
		t.Errorf("pending = %d files, want 2", len(w.pending))
	}
}

func TestWatcher_HandlerPanicRecovered(t *testing.T) {
	w := newWatcher(t)
	called := false
	w.OnChange(func(Event) { panic("boom") })
	w.OnChange(func(Event) { called = true })

	w.emit(Event{Path: "/x", Op: OpWrite})
	if !called {
		t.Error("handler after a panicking one was not called")
	}
}

func TestWatcher_Unwatch(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.toml"), filepath.Join(dir, "b.toml")

	w := newWatcher(t)
	for _, p := range []string{a, b, a} {
		if err := w.Watch(p); err != nil {
			t.Fatalf("Watch(%s) error = %v", p, err)
		}
	}
	if got := w.WatchedFiles(); len(got) != 2 {
		t.Fatalf("WatchedFiles() = %v", got)
	}
	if err := w.Unwatch(a); err != nil {
		t.Fatalf("Unwatch() error = %v", err)
	}
	if got := w.WatchedFiles(); len(got) != 1 || got[0] != b {
		t.Errorf("WatchedFiles() = %v, want [%s]", got, b)
	}
}

func TestWatcher_Closed(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("second Close() = %v, want ErrWatcherClosed", err)
	}
	if err := w.Watch(t.TempDir()); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Watch() after Close = %v, want ErrWatcherClosed", err)
	}
}
