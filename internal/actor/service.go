package actor

import (
	"github.com/goval-community/homeval/internal/fs"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
	"github.com/goval-community/homeval/internal/replspace"
)

// Service is the per-channel behaviour a channel actor drives. Hooks are
// called sequentially from the actor goroutine, never concurrently. A
// non-nil body returned from Attach or Message is sent to the calling
// session only; Message replies carry the request's ref.
type Service interface {
	Open(info *ChannelInfo) error
	Attach(info *ChannelInfo, client identity.ClientInfo, session int32) (goval.Body, error)
	Detach(info *ChannelInfo, session int32) error
	Message(info *ChannelInfo, cmd goval.Command, session int32) (goval.Body, error)
	ProcessDead(info *ChannelInfo, exitCode int) error
	FSEvent(info *ChannelInfo, ev fs.Event) error
	Replspace(info *ChannelInfo, session int32, msg replspace.Message) error
	Shutdown(info *ChannelInfo) error
}

// BaseService implements every Service hook as a no-op. Services embed it
// and override the hooks they need.
type BaseService struct{}

func (BaseService) Open(*ChannelInfo) error { return nil }

func (BaseService) Attach(*ChannelInfo, identity.ClientInfo, int32) (goval.Body, error) {
	return nil, nil
}

func (BaseService) Detach(*ChannelInfo, int32) error { return nil }

func (BaseService) Message(*ChannelInfo, goval.Command, int32) (goval.Body, error) {
	return nil, nil
}

func (BaseService) ProcessDead(*ChannelInfo, int) error { return nil }

func (BaseService) FSEvent(*ChannelInfo, fs.Event) error { return nil }

func (BaseService) Replspace(*ChannelInfo, int32, replspace.Message) error { return nil }

func (BaseService) Shutdown(*ChannelInfo) error { return nil }
