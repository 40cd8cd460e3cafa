package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/fs"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/ot"
	"github.com/goval-community/homeval/internal/store"
)

func otDeps(t *testing.T, files map[string]string) (Deps, string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	// keep the real watcher quiet; tests feed fs events by hand
	return Deps{FS: fs.NewOS(dir), Debounce: time.Hour}.withDefaults(), dir
}

func link(t *testing.T, h *harness, box *actor.Outbox, path string) *goval.OtLinkFileResponse {
	t.Helper()
	h.send(1, "link", &goval.OtLinkFile{File: &goval.File{Path: path}})
	return recvBody[*goval.OtLinkFileResponse](t, box)
}

func TestOTRequiresLink(t *testing.T) {
	deps, _ := otDeps(t, nil)
	h := newHarness(t, NewOT(deps))
	box := h.attach(1, "a")

	assert.Equal(t, &goval.Otstatus{}, recvBody[*goval.Otstatus](t, box))

	h.send(1, "r", &goval.Flush{})
	cmd := recv(t, box)
	assert.Equal(t, "r", cmd.Ref)
	assert.Equal(t, goval.Error("Command sent before otLinkFile"), cmd.Body)
}

func TestOTLinkMissingFile(t *testing.T) {
	deps, _ := otDeps(t, nil)
	h := newHarness(t, NewOT(deps))
	box := h.attach(1, "a")
	recv(t, box)

	h.send(1, "link", &goval.OtLinkFile{File: &goval.File{Path: "nope.txt"}})
	assert.Equal(t, goval.Error("nope.txt: no such file or directory"), recv(t, box).Body)
}

func TestOTLinkRejectsBinaryFile(t *testing.T) {
	deps, dir := otDeps(t, map[string]string{"bin.dat": "ab\xffcd"})
	h := newHarness(t, NewOT(deps))
	box := h.attach(1, "a")
	recv(t, box)

	h.send(1, "link", &goval.OtLinkFile{File: &goval.File{Path: "bin.dat"}})
	assert.Equal(t, goval.Error("bin.dat: not a UTF-8 text file"), recv(t, box).Body)

	// still unlinked, and the file is untouched
	h.send(1, "r", &goval.Flush{})
	assert.Equal(t, goval.Error("Command sent before otLinkFile"), recv(t, box).Body)
	data, err := os.ReadFile(filepath.Join(dir, "bin.dat"))
	require.NoError(t, err)
	assert.Equal(t, "ab\xffcd", string(data))
}

func TestOTLinkAndEdit(t *testing.T) {
	deps, dir := otDeps(t, map[string]string{"a.txt": "hello"})
	h := newHarness(t, NewOT(deps))
	box := h.attach(1, "a")
	recv(t, box)

	res := link(t, h, box, "a.txt")
	assert.Equal(t, uint32(1), res.Version)
	assert.Equal(t, "hello", string(res.LinkedFile.Content))

	h.send(1, "edit", &goval.OTPacket{Op: []goval.OTOp{goval.Skip(5), goval.Insert("!")}})

	broadcast := recvBody[*goval.OTPacket](t, box)
	assert.Equal(t, uint32(2), broadcast.Version)
	assert.Equal(t, ot.Checksum("hello!"), broadcast.Crc32)
	assert.Equal(t, uint32(1001), broadcast.UserID)

	reply := recv(t, box)
	assert.Equal(t, "edit", reply.Ref)
	assert.Equal(t, &goval.Ok{}, reply.Body)

	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello!", string(data))

	// a second client sees the current state
	other := h.attach(2, "b")
	status := recvBody[*goval.Otstatus](t, other)
	assert.Equal(t, "hello!", status.Contents)
	assert.Equal(t, uint32(2), status.Version)
	assert.Equal(t, "a.txt", status.LinkedFile.Path)
}

func TestOTBoundsErrorLeavesStateUnchanged(t *testing.T) {
	deps, dir := otDeps(t, map[string]string{"a.txt": "abc"})
	h := newHarness(t, NewOT(deps))
	box := h.attach(1, "a")
	recv(t, box)
	link(t, h, box, "a.txt")

	h.send(1, "bad", &goval.OTPacket{Op: []goval.OTOp{goval.Skip(2), goval.Delete(5)}})
	assert.Equal(t, goval.Error("Invalid delete past bounds"), recv(t, box).Body)

	h.send(1, "bad", &goval.OTPacket{Op: []goval.OTOp{goval.Skip(4)}})
	assert.Equal(t, goval.Error("Invalid skip past bounds"), recv(t, box).Body)

	other := h.attach(2, "b")
	status := recvBody[*goval.Otstatus](t, other)
	assert.Equal(t, "abc", status.Contents)
	assert.Equal(t, uint32(1), status.Version)

	data, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}

func TestOTFetchReturnsHistory(t *testing.T) {
	deps, _ := otDeps(t, map[string]string{"a.txt": ""})
	h := newHarness(t, NewOT(deps))
	box := h.attach(1, "a")
	recv(t, box)
	link(t, h, box, "a.txt")

	const n = 4
	for i := 0; i < n; i++ {
		h.send(1, "", &goval.OTPacket{Op: []goval.OTOp{goval.Insert("x")}})
		recvBody[*goval.OTPacket](t, box)
		recvBody[*goval.Ok](t, box)
	}

	h.send(1, "fetch", &goval.OtFetchRequest{VersionFrom: 1, VersionTo: n})
	res := recvBody[*goval.OtFetchResponse](t, box)
	require.Len(t, res.Packets, n+1)
	for i, p := range res.Packets {
		assert.Equal(t, uint32(i+1), p.Version)
	}

	h.send(1, "fetch", &goval.OtFetchRequest{VersionFrom: 1, VersionTo: n + 1})
	assert.Equal(t, goval.Error("Invalid version range"), recv(t, box).Body)
}

func TestOTCursorsGoToOthers(t *testing.T) {
	deps, _ := otDeps(t, map[string]string{"a.txt": "abc"})
	h := newHarness(t, NewOT(deps))
	a := h.attach(1, "a")
	recv(t, a)
	link(t, h, a, "a.txt")
	b := h.attach(2, "b")
	recv(t, b)

	cursor := goval.OTCursor{ID: "c1", Position: 2}
	h.send(1, "", &goval.OtNewCursor{OTCursor: cursor})
	got := recvBody[*goval.OtNewCursor](t, b)
	assert.Equal(t, "c1", got.ID)
	assertQuiet(t, a)

	c := h.attach(3, "c")
	status := recvBody[*goval.Otstatus](t, c)
	require.Len(t, status.Cursors, 1)
	assert.Equal(t, uint32(2), status.Cursors[0].Position)

	h.send(2, "", &goval.OtDeleteCursor{OTCursor: cursor})
	recvBody[*goval.OtDeleteCursor](t, a)
	recvBody[*goval.OtDeleteCursor](t, c)
}

func TestOTReconcilesExternalChange(t *testing.T) {
	deps, dir := otDeps(t, map[string]string{"a.txt": "hello"})
	h := newHarness(t, NewOT(deps))
	box := h.attach(1, "a")
	recv(t, box)
	link(t, h, box, "a.txt")

	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))
	require.NoError(t, h.ch.Send(actor.FSEvent{Event: fs.Event{Path: deps.FS.Abs("a.txt"), Op: fs.OpModify}}))

	packet := recvBody[*goval.OTPacket](t, box)
	assert.Equal(t, uint32(2), packet.Version)
	assert.Equal(t, goval.AuthorReplit, packet.Author)
	assert.Equal(t, []goval.OTOp{goval.Skip(5), goval.Insert(" world")}, packet.Op)

	// same content again is not a change
	require.NoError(t, h.ch.Send(actor.FSEvent{Event: fs.Event{Path: deps.FS.Abs("a.txt"), Op: fs.OpModify}}))
	assertQuiet(t, box)
}

func TestOTRestoresCachedHistory(t *testing.T) {
	deps, _ := otDeps(t, map[string]string{"a.txt": "hi"})
	db, err := store.OpenSQLite(filepath.Join(t.TempDir(), "homeval.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	deps.Files = db

	first := newHarness(t, NewOT(deps))
	box := first.attach(1, "a")
	recv(t, box)
	link(t, first, box, "a.txt")
	first.send(1, "", &goval.OTPacket{Op: []goval.OTOp{goval.Skip(2), goval.Insert("!")}})
	recvBody[*goval.OTPacket](t, box)
	recvBody[*goval.Ok](t, box)

	cached, err := db.GetFile(context.Background(), "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hi!", cached.Contents)
	assert.Len(t, cached.History, 2)

	second := newHarness(t, NewOT(deps))
	box = second.attach(1, "a")
	recv(t, box)
	res := link(t, second, box, "a.txt")
	assert.Equal(t, uint32(2), res.Version)
}
