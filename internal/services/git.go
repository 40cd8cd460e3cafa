package services

import (
	"errors"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/replspace"
)

// Git bridges replspace requests made by tooling inside the workspace to
// the client session that issued the triggering command.
type Git struct {
	actor.BaseService

	table *replspace.Table
}

func NewGit(table *replspace.Table) *Git {
	return &Git{table: table}
}

func (s *Git) Replspace(info *actor.ChannelInfo, session int32, msg replspace.Message) error {
	if session == 0 {
		info.Logger().Warn("replspace request %s has no originating session, ignoring", msg.Nonce())
		return nil
	}

	var body goval.Body
	switch m := msg.(type) {
	case replspace.GitHubTokenRequest:
		body = &goval.ReplspaceApiGetGitHubToken{Nonce: m.ID}
	case replspace.OpenFileRequest:
		body = &goval.ReplspaceApiOpenFile{File: m.File, WaitForClose: m.WaitForClose, Nonce: m.ID}
	default:
		return nil
	}

	err := info.Send(body, actor.Only(session))
	if errors.Is(err, actor.ErrNoSession) {
		// the session is attached to some other git channel
		return nil
	}
	return err
}

func (s *Git) Message(info *actor.ChannelInfo, cmd goval.Command, _ int32) (goval.Body, error) {
	var nonce string
	var reply replspace.Reply

	switch body := cmd.Body.(type) {
	case *goval.ReplspaceApiGitHubToken:
		nonce, reply = body.Nonce, replspace.Reply{Token: body.Token}
	case *goval.ReplspaceApiCloseFile:
		nonce = body.Nonce
	default:
		return nil, nil
	}

	if s.table == nil {
		info.Logger().Warn("no replspace table, dropping reply for %s", nonce)
		return nil, nil
	}
	if err := s.table.Resolve(nonce, reply); err != nil {
		info.Logger().Warn("replspace reply for %s: %v", nonce, err)
	}
	return nil, nil
}
