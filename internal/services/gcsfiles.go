package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/goval"
)

const (
	infoPath = ".config/goval/info"
	envPath  = ".env"
)

// ServerInfo is served as the contents of .config/goval/info.
type ServerInfo struct {
	Server     string   `json:"server"`
	Version    string   `json:"version"`
	License    string   `json:"license"`
	Authors    []string `json:"authors"`
	Repository string   `json:"repository"`
	Uptime     int64    `json:"uptime"`
	Services   []string `json:"services"`
}

// GCSFiles gives clients plain file access to the workspace.
type GCSFiles struct {
	actor.BaseService

	deps Deps
	// dotEnv is the virtual .env file; it never touches disk
	dotEnv []byte
	now    func() time.Time
}

func NewGCSFiles(deps Deps) *GCSFiles {
	return &GCSFiles{deps: deps, now: time.Now}
}

func (s *GCSFiles) Info() ServerInfo {
	return ServerInfo{
		Server:     "homeval",
		Version:    s.deps.Version,
		License:    "AGPL",
		Authors:    []string{"PotentialStyx <62217716+PotentialStyx@users.noreply.github.com>"},
		Repository: "https://github.com/goval-community/homeval",
		Uptime:     int64(s.now().Sub(s.deps.Started).Seconds()),
		Services:   Implemented(),
	}
}

func notFound(path string) goval.Error {
	return goval.Error(path + ": no such file or directory")
}

func (s *GCSFiles) Message(info *actor.ChannelInfo, cmd goval.Command, _ int32) (goval.Body, error) {
	ctx := context.Background()
	fsys := s.deps.FS

	switch body := cmd.Body.(type) {
	case *goval.Readdir:
		entries, err := fsys.ListDir(ctx, body.Path)
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(body.Path), nil
		}
		if err != nil {
			return nil, fmt.Errorf("readdir %s: %w", body.Path, err)
		}
		files := make([]goval.File, 0, len(entries))
		for _, e := range entries {
			f := goval.File{Path: e.Path, Type: goval.FileRegular}
			if e.IsDir {
				f.Type = goval.FileDirectory
			}
			files = append(files, f)
		}
		return &goval.Files{Files: files}, nil

	case *goval.Mkdir:
		if err := fsys.MkdirAll(ctx, body.Path); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", body.Path, err)
		}
		return &goval.Ok{}, nil

	case *goval.Read:
		switch body.Path {
		case envPath:
			return &goval.File{Path: body.Path, Content: append([]byte(nil), s.dotEnv...)}, nil
		case infoPath:
			content, err := json.Marshal(s.Info())
			if err != nil {
				return nil, err
			}
			return &goval.File{Path: body.Path, Content: content}, nil
		}
		content, err := fsys.ReadFile(ctx, body.Path)
		if err != nil {
			info.Logger().Warn("read %s: %v", body.Path, err)
			return notFound(body.Path), nil
		}
		return &goval.File{Path: body.Path, Content: content}, nil

	case *goval.Write:
		if body.Path == envPath {
			s.dotEnv = append([]byte(nil), body.Content...)
			return &goval.Ok{}, nil
		}
		if err := fsys.WriteFile(ctx, body.Path, body.Content); err != nil {
			return nil, fmt.Errorf("write %s: %w", body.Path, err)
		}
		return &goval.Ok{}, nil

	case *goval.Remove:
		err := fsys.Remove(ctx, body.Path)
		if errors.Is(err, fs.ErrNotExist) {
			return notFound(body.Path), nil
		}
		if err != nil {
			return nil, err
		}
		return &goval.Ok{}, nil

	case *goval.Move:
		if err := fsys.Rename(ctx, body.OldPath, body.NewPath); err != nil {
			return nil, fmt.Errorf("move %s: %w", body.OldPath, err)
		}
		return &goval.Ok{}, nil

	case *goval.Stat:
		st, err := fsys.Stat(ctx, body.Path)
		if errors.Is(err, fs.ErrNotExist) {
			return &goval.StatResult{Exists: false}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", body.Path, err)
		}
		res := &goval.StatResult{
			Exists:   true,
			Type:     goval.FileRegular,
			Size:     st.Size,
			FileMode: st.Mode.String(),
			ModTime:  st.ModTime.Unix(),
		}
		if st.IsDir {
			res.Type = goval.FileDirectory
		}
		return res, nil

	default:
		info.Logger().Warn("unknown gcsfiles command %s", goval.BodyName(cmd.Body))
		return nil, nil
	}
}
