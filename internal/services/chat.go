package services

import (
	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
)

// Chat relays chat messages and typing indicators, and replays the message
// history to new sessions.
type Chat struct {
	actor.BaseService

	history []goval.ChatMessage
}

func NewChat() *Chat {
	return &Chat{}
}

func (s *Chat) Attach(*actor.ChannelInfo, identity.ClientInfo, int32) (goval.Body, error) {
	return &goval.ChatScrollback{Scrollback: append([]goval.ChatMessage(nil), s.history...)}, nil
}

func (s *Chat) Message(info *actor.ChannelInfo, cmd goval.Command, session int32) (goval.Body, error) {
	switch body := cmd.Body.(type) {
	case *goval.ChatMessage:
		s.history = append(s.history, *body)
		return nil, info.SendCommand(cmd, actor.EveryoneExcept(session))
	case *goval.ChatTyping:
		return nil, info.SendCommand(cmd, actor.EveryoneExcept(session))
	default:
		info.Logger().Warn("unknown chat command %s", goval.BodyName(cmd.Body))
		return nil, nil
	}
}
