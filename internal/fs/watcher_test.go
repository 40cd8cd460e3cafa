package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsDebouncedModify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	events := make(chan Event, 8)
	w, err := NewWatcher(50*time.Millisecond, func(ev Event) { events <- ev })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Add(path))

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))
	}

	select {
	case ev := <-events:
		assert.Equal(t, path, ev.Path)
		assert.Equal(t, OpModify, ev.Op)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for modify event")
	}

	select {
	case ev := <-events:
		t.Fatalf("burst should collapse into one event, got extra %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherSuppressesUnchangedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("same"), 0644))

	events := make(chan Event, 8)
	w, err := NewWatcher(30*time.Millisecond, func(ev Event) { events <- ev })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))

	require.NoError(t, os.WriteFile(path, []byte("same"), 0644))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event for unchanged content: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	events := make(chan Event, 8)
	w, err := NewWatcher(30*time.Millisecond, func(ev Event) { events <- ev })
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Add(path))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0644))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event for unwatched sibling: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(time.Second, func(Event) {})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Error(t, w.Add(filepath.Join(t.TempDir(), "x")))
}

func TestOSFileSystem(t *testing.T) {
	ctx := context.Background()
	fsys := NewOS(t.TempDir())

	require.NoError(t, fsys.MkdirAll(ctx, "src/pkg"))
	require.NoError(t, fsys.WriteFile(ctx, "src/main.go", []byte("package main")))

	entries, err := fsys.ListDir(ctx, "src")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "main.go", entries[0].Path)
	assert.False(t, entries[0].IsDir)
	assert.Equal(t, "pkg", entries[1].Path)
	assert.True(t, entries[1].IsDir)

	require.NoError(t, fsys.Rename(ctx, "src/main.go", "src/app.go"))
	data, err := fsys.ReadFile(ctx, "src/app.go")
	require.NoError(t, err)
	assert.Equal(t, "package main", string(data))

	require.NoError(t, fsys.Remove(ctx, "src"))
	_, err = fsys.Stat(ctx, "src")
	assert.True(t, os.IsNotExist(err))
}
