package goval

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/goval-community/homeval/internal/goval/govalpb"
)

// toPB maps the envelope and its body onto the generated Command. A nil
// body leaves the oneof unset.
func toPB(c Command) *pb.Command {
	out := &pb.Command{Channel: c.Channel, Session: c.Session, Ref: c.Ref}
	switch b := c.Body.(type) {
	case *OpenChan:
		out.Body = &pb.Command_OpenChan{OpenChan: &pb.OpenChannel{
			Service: b.Service,
			Name:    b.Name,
			Action:  pb.OpenChannel_Action(b.Action),
			Id:      b.ID,
		}}
	case *OpenChanRes:
		out.Body = &pb.Command_OpenChanRes{OpenChanRes: &pb.OpenChannelRes{
			Id:    b.ID,
			State: pb.OpenChannelRes_State(b.State),
			Error: b.Error,
		}}
	case *CloseChan:
		out.Body = &pb.Command_CloseChan{CloseChan: &pb.CloseChannel{Id: b.ID, Action: pb.CloseChannel_Action(b.Action)}}
	case *CloseChanRes:
		out.Body = &pb.Command_CloseChanRes{CloseChanRes: &pb.CloseChannelRes{Id: b.ID, Status: pb.CloseChannelRes_Status(b.Status)}}
	case *ContainerState:
		out.Body = &pb.Command_ContainerState{ContainerState: &pb.ContainerState{State: pb.ContainerState_State(b.State)}}
	case *Ping:
		out.Body = &pb.Command_Ping{Ping: &pb.Ping{}}
	case *Pong:
		out.Body = &pb.Command_Pong{Pong: &pb.Pong{}}
	case *Ok:
		out.Body = &pb.Command_Ok{Ok: &pb.OK{}}
	case Error:
		out.Body = &pb.Command_Error{Error: []byte(b)}
	case *ProtocolError:
		out.Body = &pb.Command_ProtocolError{ProtocolError: &pb.ProtocolError{Text: b.Text}}
	case *Toast:
		out.Body = &pb.Command_Toast{Toast: &pb.Toast{Text: b.Text}}
	case *BootStatus:
		out.Body = &pb.Command_BootStatus{BootStatus: &pb.BootStatus{
			Stage:    pb.BootStatus_Stage(b.Stage),
			Progress: b.Progress,
			Total:    b.Total,
		}}
	case Input:
		out.Body = &pb.Command_Input{Input: string(b)}
	case Output:
		out.Body = &pb.Command_Output{Output: []byte(b)}
	case *ResizeTerm:
		out.Body = &pb.Command_ResizeTerm{ResizeTerm: &pb.ResizeTerm{Rows: b.Rows, Cols: b.Cols}}
	case *Exec:
		out.Body = &pb.Command_Exec{Exec: execToPB(b)}
	case State:
		out.Body = &pb.Command_State{State: pb.State(b)}
	case *RunMain:
		out.Body = &pb.Command_RunMain{RunMain: &pb.RunMain{}}
	case *Clear:
		out.Body = &pb.Command_Clear{Clear: &pb.Clear{}}
	case *OutputBlockStartEvent:
		out.Body = &pb.Command_OutputBlockStartEvent{OutputBlockStartEvent: &pb.OutputBlockStartEvent{
			ExecutionMode:    b.ExecutionMode,
			MeasureStartTime: timeToPB(b.MeasureStartTime),
		}}
	case *OutputBlockEndEvent:
		out.Body = &pb.Command_OutputBlockEndEvent{OutputBlockEndEvent: &pb.OutputBlockEndEvent{
			ExitCode:       b.ExitCode,
			MeasureEndTime: timeToPB(b.MeasureEndTime),
		}}

	case *OTPacket:
		out.Body = &pb.Command_Ot{Ot: packetToPB(b)}
	case *OtLinkFile:
		out.Body = &pb.Command_OtLinkFile{OtLinkFile: &pb.OTLinkFile{File: fileToPB(b.File), HighConsistency: b.HighConsistency}}
	case *OtLinkFileResponse:
		out.Body = &pb.Command_OtLinkFileResponse{OtLinkFileResponse: &pb.OTLinkFileResponse{Version: b.Version, LinkedFile: fileToPB(b.LinkedFile)}}
	case *Otstatus:
		status := &pb.OTStatus{Contents: b.Contents, Version: b.Version, LinkedFile: fileToPB(b.LinkedFile)}
		for i := range b.Cursors {
			status.Cursors = append(status.Cursors, cursorToPB(&b.Cursors[i]))
		}
		out.Body = &pb.Command_Otstatus{Otstatus: status}
	case *OtNewCursor:
		out.Body = &pb.Command_OtNewCursor{OtNewCursor: cursorToPB(&b.OTCursor)}
	case *OtDeleteCursor:
		out.Body = &pb.Command_OtDeleteCursor{OtDeleteCursor: cursorToPB(&b.OTCursor)}
	case *OtFetchRequest:
		out.Body = &pb.Command_OtFetchRequest{OtFetchRequest: &pb.OTFetchRequest{VersionFrom: b.VersionFrom, VersionTo: b.VersionTo}}
	case *OtFetchResponse:
		res := &pb.OTFetchResponse{}
		for i := range b.Packets {
			res.Packets = append(res.Packets, packetToPB(&b.Packets[i]))
		}
		out.Body = &pb.Command_OtFetchResponse{OtFetchResponse: res}
	case *Flush:
		out.Body = &pb.Command_Flush{Flush: &pb.Flush{}}

	case *ChatMessage:
		out.Body = &pb.Command_ChatMessage{ChatMessage: &pb.ChatMessage{Username: b.Username, Text: b.Text}}
	case *ChatTyping:
		out.Body = &pb.Command_ChatTyping{ChatTyping: &pb.ChatTyping{Username: b.Username, Typing: b.Typing}}
	case *ChatScrollback:
		sb := &pb.ChatScrollback{}
		for _, m := range b.Scrollback {
			sb.Scrollback = append(sb.Scrollback, &pb.ChatMessage{Username: m.Username, Text: m.Text})
		}
		out.Body = &pb.Command_ChatScrollback{ChatScrollback: sb}
	case *FileOpened:
		out.Body = &pb.Command_FileOpened{FileOpened: fileOpenedToPB(b)}
	case *Roster:
		r := &pb.Roster{}
		for i := range b.User {
			r.User = append(r.User, userToPB(&b.User[i]))
		}
		for i := range b.Files {
			r.Files = append(r.Files, fileOpenedToPB(&b.Files[i]))
		}
		out.Body = &pb.Command_Roster{Roster: r}
	case *Join:
		out.Body = &pb.Command_Join{Join: userToPB(&b.User)}
	case *Part:
		out.Body = &pb.Command_Part{Part: userToPB(&b.User)}
	case *FollowUser:
		out.Body = &pb.Command_FollowUser{FollowUser: &pb.FollowUser{Session: b.Session}}
	case *UnfollowUser:
		out.Body = &pb.Command_UnfollowUser{UnfollowUser: &pb.FollowUser{Session: b.Session}}
	case *OpenFile:
		out.Body = &pb.Command_OpenFile{OpenFile: &pb.OpenFile{File: b.File}}

	case *File:
		out.Body = &pb.Command_File{File: fileToPB(b)}
	case *Readdir:
		out.Body = &pb.Command_Readdir{Readdir: fileToPB(&b.File)}
	case *Mkdir:
		out.Body = &pb.Command_Mkdir{Mkdir: fileToPB(&b.File)}
	case *Read:
		out.Body = &pb.Command_Read{Read: fileToPB(&b.File)}
	case *Write:
		out.Body = &pb.Command_Write{Write: fileToPB(&b.File)}
	case *Remove:
		out.Body = &pb.Command_Remove{Remove: fileToPB(&b.File)}
	case *Stat:
		out.Body = &pb.Command_Stat{Stat: fileToPB(&b.File)}
	case *Move:
		out.Body = &pb.Command_Move{Move: &pb.Move{OldPath: b.OldPath, NewPath: b.NewPath}}
	case *StatResult:
		out.Body = &pb.Command_StatRes{StatRes: &pb.StatResult{
			Exists:   b.Exists,
			Type:     pb.File_Type(b.Type),
			Size:     b.Size,
			FileMode: b.FileMode,
			ModTime:  b.ModTime,
		}}
	case *Files:
		fs := &pb.Files{}
		for i := range b.Files {
			fs.Files = append(fs.Files, fileToPB(&b.Files[i]))
		}
		out.Body = &pb.Command_Files{Files: fs}
	case *FsSnapshot:
		out.Body = &pb.Command_FsSnapshot{FsSnapshot: &pb.FsSnapshot{}}

	case *ToolchainGetRequest:
		out.Body = &pb.Command_ToolchainGetRequest{ToolchainGetRequest: &pb.ToolchainGetRequest{}}
	case *ToolchainGetResponse:
		res := &pb.ToolchainGetResponse{}
		if b.Configs != nil {
			res.Configs = &pb.ToolchainConfigs{Entrypoint: b.Configs.Entrypoint}
			for _, r := range b.Configs.Runs {
				res.Configs.Runs = append(res.Configs.Runs, &pb.RunOption{
					Id:        r.ID,
					Name:      r.Name,
					FileParam: r.FileParam,
					Language:  r.Language,
				})
			}
		}
		out.Body = &pb.Command_ToolchainGetResponse{ToolchainGetResponse: res}
	case *NixModulesGetRequest:
		out.Body = &pb.Command_NixModulesGetRequest{NixModulesGetRequest: &pb.NixModulesGetRequest{}}
	case *NixModulesGetResponse:
		res := &pb.NixModulesGetResponse{}
		for _, m := range b.Modules {
			res.Modules = append(res.Modules, &pb.NixModule{Id: m.ID})
		}
		out.Body = &pb.Command_NixModulesGetResponse{NixModulesGetResponse: res}
	case *DotReplitGetRequest:
		out.Body = &pb.Command_DotReplitGetRequest{DotReplitGetRequest: &pb.DotReplitGetRequest{}}
	case *DotReplitGetResponse:
		res := &pb.DotReplitGetResponse{}
		if d := b.DotReplit; d != nil {
			res.DotReplit = &pb.DotReplit{
				Run:        execToPB(d.Run),
				Language:   d.Language,
				Entrypoint: d.Entrypoint,
				Hidden:     d.Hidden,
			}
		}
		out.Body = &pb.Command_DotReplitGetResponse{DotReplitGetResponse: res}

	case *ReplspaceApiGetGitHubToken:
		out.Body = &pb.Command_ReplspaceApiGetGitHubToken{ReplspaceApiGetGitHubToken: &pb.ReplspaceApiGetGitHubToken{Nonce: b.Nonce}}
	case *ReplspaceApiGitHubToken:
		out.Body = &pb.Command_ReplspaceApiGitHubToken{ReplspaceApiGitHubToken: &pb.ReplspaceApiGitHubToken{Nonce: b.Nonce, Token: b.Token}}
	case *ReplspaceApiOpenFile:
		out.Body = &pb.Command_ReplspaceApiOpenFile{ReplspaceApiOpenFile: &pb.ReplspaceApiOpenFile{
			File:         b.File,
			WaitForClose: b.WaitForClose,
			Nonce:        b.Nonce,
		}}
	case *ReplspaceApiCloseFile:
		out.Body = &pb.Command_ReplspaceApiCloseFile{ReplspaceApiCloseFile: &pb.ReplspaceApiCloseFile{Nonce: b.Nonce}}
	}
	return out
}

// fromPB is the inverse of toPB. Bodies this server does not know about
// decode to nil.
func fromPB(c *pb.Command) Body {
	switch b := c.GetBody().(type) {
	case *pb.Command_OpenChan:
		m := b.OpenChan
		return &OpenChan{Service: m.GetService(), Name: m.GetName(), Action: OpenChanAction(m.GetAction()), ID: m.GetId()}
	case *pb.Command_OpenChanRes:
		m := b.OpenChanRes
		return &OpenChanRes{State: OpenChanState(m.GetState()), ID: m.GetId(), Error: m.GetError()}
	case *pb.Command_CloseChan:
		return &CloseChan{Action: CloseAction(b.CloseChan.GetAction()), ID: b.CloseChan.GetId()}
	case *pb.Command_CloseChanRes:
		return &CloseChanRes{Status: CloseStatus(b.CloseChanRes.GetStatus()), ID: b.CloseChanRes.GetId()}
	case *pb.Command_ContainerState:
		return &ContainerState{State: ContainerStatus(b.ContainerState.GetState())}
	case *pb.Command_Ping:
		return &Ping{}
	case *pb.Command_Pong:
		return &Pong{}
	case *pb.Command_Ok:
		return &Ok{}
	case *pb.Command_Error:
		return Error(b.Error)
	case *pb.Command_ProtocolError:
		return &ProtocolError{Text: b.ProtocolError.GetText()}
	case *pb.Command_Toast:
		return &Toast{Text: b.Toast.GetText()}
	case *pb.Command_BootStatus:
		m := b.BootStatus
		return &BootStatus{Stage: BootStage(m.GetStage()), Progress: m.GetProgress(), Total: m.GetTotal()}
	case *pb.Command_Input:
		return Input(b.Input)
	case *pb.Command_Output:
		return Output(b.Output)
	case *pb.Command_ResizeTerm:
		return &ResizeTerm{Rows: b.ResizeTerm.GetRows(), Cols: b.ResizeTerm.GetCols()}
	case *pb.Command_Exec:
		return execFromPB(b.Exec)
	case *pb.Command_State:
		return State(b.State)
	case *pb.Command_RunMain:
		return &RunMain{}
	case *pb.Command_Clear:
		return &Clear{}
	case *pb.Command_OutputBlockStartEvent:
		m := b.OutputBlockStartEvent
		return &OutputBlockStartEvent{ExecutionMode: m.GetExecutionMode(), MeasureStartTime: timeFromPB(m.GetMeasureStartTime())}
	case *pb.Command_OutputBlockEndEvent:
		m := b.OutputBlockEndEvent
		return &OutputBlockEndEvent{ExitCode: m.GetExitCode(), MeasureEndTime: timeFromPB(m.GetMeasureEndTime())}

	case *pb.Command_Ot:
		return packetFromPB(b.Ot)
	case *pb.Command_OtLinkFile:
		return &OtLinkFile{File: fileFromPB(b.OtLinkFile.GetFile()), HighConsistency: b.OtLinkFile.GetHighConsistency()}
	case *pb.Command_OtLinkFileResponse:
		m := b.OtLinkFileResponse
		return &OtLinkFileResponse{Version: m.GetVersion(), LinkedFile: fileFromPB(m.GetLinkedFile())}
	case *pb.Command_Otstatus:
		m := b.Otstatus
		status := &Otstatus{Contents: m.GetContents(), Version: m.GetVersion(), LinkedFile: fileFromPB(m.GetLinkedFile())}
		for _, c := range m.GetCursors() {
			status.Cursors = append(status.Cursors, cursorFromPB(c))
		}
		return status
	case *pb.Command_OtNewCursor:
		return &OtNewCursor{cursorFromPB(b.OtNewCursor)}
	case *pb.Command_OtDeleteCursor:
		return &OtDeleteCursor{cursorFromPB(b.OtDeleteCursor)}
	case *pb.Command_OtFetchRequest:
		return &OtFetchRequest{VersionFrom: b.OtFetchRequest.GetVersionFrom(), VersionTo: b.OtFetchRequest.GetVersionTo()}
	case *pb.Command_OtFetchResponse:
		res := &OtFetchResponse{}
		for _, p := range b.OtFetchResponse.GetPackets() {
			res.Packets = append(res.Packets, *packetFromPB(p))
		}
		return res
	case *pb.Command_Flush:
		return &Flush{}

	case *pb.Command_ChatMessage:
		return &ChatMessage{Username: b.ChatMessage.GetUsername(), Text: b.ChatMessage.GetText()}
	case *pb.Command_ChatTyping:
		return &ChatTyping{Username: b.ChatTyping.GetUsername(), Typing: b.ChatTyping.GetTyping()}
	case *pb.Command_ChatScrollback:
		sb := &ChatScrollback{}
		for _, m := range b.ChatScrollback.GetScrollback() {
			sb.Scrollback = append(sb.Scrollback, ChatMessage{Username: m.GetUsername(), Text: m.GetText()})
		}
		return sb
	case *pb.Command_FileOpened:
		opened := fileOpenedFromPB(b.FileOpened)
		return &opened
	case *pb.Command_Roster:
		r := &Roster{}
		for _, u := range b.Roster.GetUser() {
			r.User = append(r.User, userFromPB(u))
		}
		for _, f := range b.Roster.GetFiles() {
			r.Files = append(r.Files, fileOpenedFromPB(f))
		}
		return r
	case *pb.Command_Join:
		return &Join{userFromPB(b.Join)}
	case *pb.Command_Part:
		return &Part{userFromPB(b.Part)}
	case *pb.Command_FollowUser:
		return &FollowUser{Session: b.FollowUser.GetSession()}
	case *pb.Command_UnfollowUser:
		return &UnfollowUser{Session: b.UnfollowUser.GetSession()}
	case *pb.Command_OpenFile:
		return &OpenFile{File: b.OpenFile.GetFile()}

	case *pb.Command_File:
		f := fileValue(b.File)
		return &f
	case *pb.Command_Readdir:
		return &Readdir{fileValue(b.Readdir)}
	case *pb.Command_Mkdir:
		return &Mkdir{fileValue(b.Mkdir)}
	case *pb.Command_Read:
		return &Read{fileValue(b.Read)}
	case *pb.Command_Write:
		return &Write{fileValue(b.Write)}
	case *pb.Command_Remove:
		return &Remove{fileValue(b.Remove)}
	case *pb.Command_Stat:
		return &Stat{fileValue(b.Stat)}
	case *pb.Command_Move:
		return &Move{OldPath: b.Move.GetOldPath(), NewPath: b.Move.GetNewPath()}
	case *pb.Command_StatRes:
		m := b.StatRes
		return &StatResult{
			Exists:   m.GetExists(),
			Type:     FileType(m.GetType()),
			Size:     m.GetSize(),
			FileMode: m.GetFileMode(),
			ModTime:  m.GetModTime(),
		}
	case *pb.Command_Files:
		fs := &Files{}
		for _, f := range b.Files.GetFiles() {
			fs.Files = append(fs.Files, fileValue(f))
		}
		return fs
	case *pb.Command_FsSnapshot:
		return &FsSnapshot{}

	case *pb.Command_ToolchainGetRequest:
		return &ToolchainGetRequest{}
	case *pb.Command_ToolchainGetResponse:
		res := &ToolchainGetResponse{}
		if c := b.ToolchainGetResponse.GetConfigs(); c != nil {
			res.Configs = &ToolchainConfigs{Entrypoint: c.GetEntrypoint()}
			for _, r := range c.GetRuns() {
				res.Configs.Runs = append(res.Configs.Runs, RunOption{
					ID:        r.GetId(),
					Name:      r.GetName(),
					FileParam: r.GetFileParam(),
					Language:  r.GetLanguage(),
				})
			}
		}
		return res
	case *pb.Command_NixModulesGetRequest:
		return &NixModulesGetRequest{}
	case *pb.Command_NixModulesGetResponse:
		res := &NixModulesGetResponse{}
		for _, m := range b.NixModulesGetResponse.GetModules() {
			res.Modules = append(res.Modules, NixModule{ID: m.GetId()})
		}
		return res
	case *pb.Command_DotReplitGetRequest:
		return &DotReplitGetRequest{}
	case *pb.Command_DotReplitGetResponse:
		res := &DotReplitGetResponse{}
		if d := b.DotReplitGetResponse.GetDotReplit(); d != nil {
			res.DotReplit = &DotReplit{
				Language:   d.GetLanguage(),
				Entrypoint: d.GetEntrypoint(),
				Hidden:     d.GetHidden(),
			}
			if d.GetRun() != nil {
				res.DotReplit.Run = execFromPB(d.GetRun())
			}
		}
		return res

	case *pb.Command_ReplspaceApiGetGitHubToken:
		return &ReplspaceApiGetGitHubToken{Nonce: b.ReplspaceApiGetGitHubToken.GetNonce()}
	case *pb.Command_ReplspaceApiGitHubToken:
		m := b.ReplspaceApiGitHubToken
		return &ReplspaceApiGitHubToken{Nonce: m.GetNonce(), Token: m.GetToken()}
	case *pb.Command_ReplspaceApiOpenFile:
		m := b.ReplspaceApiOpenFile
		return &ReplspaceApiOpenFile{File: m.GetFile(), WaitForClose: m.GetWaitForClose(), Nonce: m.GetNonce()}
	case *pb.Command_ReplspaceApiCloseFile:
		return &ReplspaceApiCloseFile{Nonce: b.ReplspaceApiCloseFile.GetNonce()}
	}
	return nil
}

// A zero time stays off the wire.
func timeToPB(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func timeFromPB(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func fileToPB(f *File) *pb.File {
	if f == nil {
		return nil
	}
	return &pb.File{Path: f.Path, Type: pb.File_Type(f.Type), Content: f.Content}
}

func fileValue(f *pb.File) File {
	return File{Path: f.GetPath(), Type: FileType(f.GetType()), Content: f.GetContent()}
}

func fileFromPB(f *pb.File) *File {
	if f == nil {
		return nil
	}
	v := fileValue(f)
	return &v
}

func userToPB(u *User) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{Id: u.ID, Name: u.Name, Session: u.Session, Roles: u.Roles}
}

func userFromPB(u *pb.User) User {
	return User{ID: u.GetId(), Name: u.GetName(), Session: u.GetSession(), Roles: u.GetRoles()}
}

func cursorToPB(c *OTCursor) *pb.OTCursor {
	return &pb.OTCursor{
		Position:       c.Position,
		SelectionStart: c.SelectionStart,
		SelectionEnd:   c.SelectionEnd,
		User:           userToPB(c.User),
		Id:             c.ID,
	}
}

func cursorFromPB(c *pb.OTCursor) OTCursor {
	cursor := OTCursor{
		Position:       c.GetPosition(),
		SelectionStart: c.GetSelectionStart(),
		SelectionEnd:   c.GetSelectionEnd(),
		ID:             c.GetId(),
	}
	if c.GetUser() != nil {
		u := userFromPB(c.GetUser())
		cursor.User = &u
	}
	return cursor
}

func fileOpenedToPB(f *FileOpened) *pb.FileOpened {
	return &pb.FileOpened{
		UserId:    f.UserID,
		File:      f.File,
		Session:   f.Session,
		Timestamp: timeToPB(f.Timestamp),
	}
}

func fileOpenedFromPB(f *pb.FileOpened) FileOpened {
	return FileOpened{
		UserID:    f.GetUserId(),
		File:      f.GetFile(),
		Session:   f.GetSession(),
		Timestamp: timeFromPB(f.GetTimestamp()),
	}
}

func execToPB(e *Exec) *pb.Exec {
	if e == nil {
		return nil
	}
	return &pb.Exec{
		Args:      e.Args,
		Env:       e.Env,
		Blocking:  e.Blocking,
		Lifecycle: pb.Exec_Lifecycle(e.Lifecycle),
	}
}

func execFromPB(e *pb.Exec) *Exec {
	return &Exec{
		Args:      e.GetArgs(),
		Env:       e.GetEnv(),
		Blocking:  e.GetBlocking(),
		Lifecycle: ExecLifecycle(e.GetLifecycle()),
	}
}

func packetToPB(p *OTPacket) *pb.OTPacket {
	out := &pb.OTPacket{
		Version:   p.Version,
		Crc32:     p.Crc32,
		Committed: timeToPB(p.Committed),
		Author:    pb.OTPacket_Author(p.Author),
		UserId:    p.UserID,
		Nonce:     p.Nonce,
	}
	for _, op := range p.Op {
		c := &pb.OTOpComponent{}
		switch op.Kind {
		case OpSkip:
			c.OpComponent = &pb.OTOpComponent_Skip{Skip: op.Count}
		case OpDelete:
			c.OpComponent = &pb.OTOpComponent_Delete{Delete: op.Count}
		case OpInsert:
			c.OpComponent = &pb.OTOpComponent_Insert{Insert: op.Text}
		}
		out.Op = append(out.Op, c)
	}
	return out
}

// packetFromPB leaves a component with no operation set as a zero OTOp,
// which the OT layer rejects as invalid.
func packetFromPB(p *pb.OTPacket) *OTPacket {
	out := &OTPacket{
		Version:   p.GetVersion(),
		Crc32:     p.GetCrc32(),
		Committed: timeFromPB(p.GetCommitted()),
		Author:    Author(p.GetAuthor()),
		UserID:    p.GetUserId(),
		Nonce:     p.GetNonce(),
	}
	for _, c := range p.GetOp() {
		var op OTOp
		switch v := c.GetOpComponent().(type) {
		case *pb.OTOpComponent_Skip:
			op = Skip(v.Skip)
		case *pb.OTOpComponent_Delete:
			op = Delete(v.Delete)
		case *pb.OTOpComponent_Insert:
			op = Insert(v.Insert)
		}
		out.Op = append(out.Op, op)
	}
	return out
}
