package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/goval"
	"github.com/goval-community/homeval/internal/identity"
)

// Presence tracks who is connected and which file each session has open.
type Presence struct {
	actor.BaseService

	users []goval.User
	files map[int32]goval.FileOpened
	now   func() time.Time
}

func NewPresence() *Presence {
	return &Presence{files: make(map[int32]goval.FileOpened), now: time.Now}
}

func (s *Presence) roster() *goval.Roster {
	files := make([]goval.FileOpened, 0, len(s.files))
	for _, f := range s.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Session < files[j].Session })
	return &goval.Roster{User: append([]goval.User(nil), s.users...), Files: files}
}

func (s *Presence) Attach(info *actor.ChannelInfo, client identity.ClientInfo, session int32) (goval.Body, error) {
	roster := s.roster()

	user := goval.User{ID: client.ID, Name: client.Username, Session: session}
	if err := info.Send(&goval.Join{User: user}, actor.EveryoneExcept(session)); err != nil {
		info.Logger().Warn("failed to announce %s: %v", client.Username, err)
	}
	s.users = append(s.users, user)
	return roster, nil
}

func (s *Presence) Detach(info *actor.ChannelInfo, session int32) error {
	delete(s.files, session)

	idx := -1
	for i, u := range s.users {
		if u.Session == session {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("session %d left without joining presence", session)
	}
	user := s.users[idx]
	s.users = append(s.users[:idx], s.users[idx+1:]...)
	return info.Send(&goval.Part{User: user}, actor.EveryoneExcept(session))
}

func (s *Presence) Message(info *actor.ChannelInfo, cmd goval.Command, session int32) (goval.Body, error) {
	switch body := cmd.Body.(type) {
	case *goval.FollowUser:
		return nil, info.Send(&goval.FollowUser{Session: session}, actor.Only(body.Session))
	case *goval.UnfollowUser:
		return nil, info.Send(&goval.UnfollowUser{Session: session}, actor.Only(body.Session))
	case *goval.OpenFile:
		client, _ := info.Client(session)
		opened := goval.FileOpened{
			UserID:    client.ID,
			File:      body.File,
			Session:   session,
			Timestamp: s.now().UTC().Truncate(time.Second),
		}
		s.files[session] = opened
		return nil, info.Send(&opened, actor.EveryoneExcept(session))
	default:
		info.Logger().Warn("unknown presence command %s", goval.BodyName(cmd.Body))
		return nil, nil
	}
}
