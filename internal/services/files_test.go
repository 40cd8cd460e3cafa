package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/config"
	"github.com/goval-community/homeval/internal/fs"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/replspace"
)

func TestGCSFilesRoundTrip(t *testing.T) {
	deps := Deps{FS: fs.NewOS(t.TempDir())}.withDefaults()
	h := newHarness(t, NewGCSFiles(deps))
	box := h.attach(1, "a")

	call := func(body goval.Body) goval.Body {
		t.Helper()
		h.send(1, "ref", body)
		cmd := recv(t, box)
		assert.Equal(t, "ref", cmd.Ref)
		return cmd.Body
	}

	assert.Equal(t, &goval.Ok{}, call(&goval.Mkdir{File: goval.File{Path: "src"}}))
	assert.Equal(t, &goval.Ok{}, call(&goval.Write{File: goval.File{Path: "src/main.py", Content: []byte("print(1)")}}))

	files := call(&goval.Readdir{File: goval.File{Path: "."}}).(*goval.Files)
	assert.Equal(t, []goval.File{{Path: "src", Type: goval.FileDirectory}}, files.Files)

	read := call(&goval.Read{File: goval.File{Path: "src/main.py"}}).(*goval.File)
	assert.Equal(t, "print(1)", string(read.Content))

	st := call(&goval.Stat{File: goval.File{Path: "src/main.py"}}).(*goval.StatResult)
	assert.True(t, st.Exists)
	assert.Equal(t, goval.FileRegular, st.Type)
	assert.Equal(t, int64(8), st.Size)

	assert.Equal(t, &goval.Ok{}, call(&goval.Move{OldPath: "src/main.py", NewPath: "src/app.py"}))
	assert.Equal(t, goval.Error("src/main.py: no such file or directory"), call(&goval.Read{File: goval.File{Path: "src/main.py"}}))

	assert.Equal(t, &goval.Ok{}, call(&goval.Remove{File: goval.File{Path: "src"}}))
	st = call(&goval.Stat{File: goval.File{Path: "src"}}).(*goval.StatResult)
	assert.False(t, st.Exists)
	assert.Equal(t, goval.Error("src: no such file or directory"), call(&goval.Remove{File: goval.File{Path: "src"}}))
}

func TestGCSFilesVirtualFiles(t *testing.T) {
	deps := Deps{FS: fs.NewOS(t.TempDir()), Version: "1.2.3", Started: time.Now().Add(-time.Minute)}.withDefaults()
	h := newHarness(t, NewGCSFiles(deps))
	box := h.attach(1, "a")

	h.send(1, "", &goval.Write{File: goval.File{Path: ".env", Content: []byte("A=1")}})
	recvBody[*goval.Ok](t, box)
	h.send(1, "", &goval.Read{File: goval.File{Path: ".env"}})
	assert.Equal(t, "A=1", string(recvBody[*goval.File](t, box).Content))

	h.send(1, "", &goval.Read{File: goval.File{Path: ".config/goval/info"}})
	var info ServerInfo
	require.NoError(t, json.Unmarshal(recvBody[*goval.File](t, box).Content, &info))
	assert.Equal(t, "homeval", info.Server)
	assert.Equal(t, "1.2.3", info.Version)
	assert.GreaterOrEqual(t, info.Uptime, int64(60))
	assert.Contains(t, info.Services, "ot")
}

func TestGitBridgesReplspace(t *testing.T) {
	table := replspace.NewTable()
	h := newHarness(t, NewGit(table))
	box := h.attach(1, "a")

	pending := table.Create(time.Second)
	require.NoError(t, h.ch.Send(actor.Replspace{Session: 1, Message: replspace.GitHubTokenRequest{ID: pending.Nonce}}))
	req := recvBody[*goval.ReplspaceApiGetGitHubToken](t, box)
	assert.Equal(t, pending.Nonce, req.Nonce)

	h.send(1, "", &goval.ReplspaceApiGitHubToken{Nonce: pending.Nonce, Token: "ghp_x"})
	reply, err := pending.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ghp_x", reply.Token)

	open := table.Create(time.Second)
	require.NoError(t, h.ch.Send(actor.Replspace{Session: 1, Message: replspace.OpenFileRequest{ID: open.Nonce, File: "a.txt", WaitForClose: true}}))
	assert.Equal(t, &goval.ReplspaceApiOpenFile{File: "a.txt", WaitForClose: true, Nonce: open.Nonce}, recv(t, box).Body)
	h.send(1, "", &goval.ReplspaceApiCloseFile{Nonce: open.Nonce})
	_, err = open.Wait(context.Background())
	require.NoError(t, err)

	// no originating session, or a session on another channel
	require.NoError(t, h.ch.Send(actor.Replspace{Session: 0, Message: replspace.GitHubTokenRequest{ID: "x"}}))
	require.NoError(t, h.ch.Send(actor.Replspace{Session: 9, Message: replspace.GitHubTokenRequest{ID: "y"}}))
	assertQuiet(t, box)
}

func TestDotReplitAndToolchain(t *testing.T) {
	dr := &config.DotReplit{
		Run:        []string{"python3", "main.py"},
		Language:   "python3",
		Entrypoint: "main.py",
		Hidden:     []string{"venv"},
	}

	h := newHarness(t, &DotReplit{dotReplit: dr})
	box := h.attach(1, "a")
	h.send(1, "", &goval.DotReplitGetRequest{})
	res := recvBody[*goval.DotReplitGetResponse](t, box)
	assert.Equal(t, []string{"python3", "main.py"}, res.DotReplit.Run.Args)
	assert.Equal(t, "python3", res.DotReplit.Language)
	assert.Equal(t, []string{"venv"}, res.DotReplit.Hidden)

	h = newHarness(t, &Toolchain{dotReplit: dr})
	box = h.attach(1, "a")
	h.send(1, "", &goval.NixModulesGetRequest{})
	assert.Equal(t, &goval.NixModulesGetResponse{}, recv(t, box).Body)
	h.send(1, "", &goval.ToolchainGetRequest{})
	tc := recvBody[*goval.ToolchainGetResponse](t, box)
	require.Len(t, tc.Configs.Runs, 1)
	assert.Equal(t, "homeval/test", tc.Configs.Runs[0].ID)
	assert.Equal(t, "main.py", tc.Configs.Entrypoint)
}
