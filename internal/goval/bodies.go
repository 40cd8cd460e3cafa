package goval

import "time"

// User describes a connected collaborator.
type User struct {
	ID      uint32
	Name    string
	Session int32
	Roles   []string
}

type ChatMessage struct {
	Username string
	Text     string
}

type ChatTyping struct {
	Username string
	Typing   bool
}

type ChatScrollback struct {
	Scrollback []ChatMessage
}

type FileOpened struct {
	UserID    uint32
	File      string
	Session   int32
	Timestamp time.Time
}

type Roster struct {
	User  []User
	Files []FileOpened
}

type Join struct{ User }

type Part struct{ User }

type FollowUser struct {
	Session int32
}

type UnfollowUser struct {
	Session int32
}

type OpenFile struct {
	File string
}

type FileType int32

const (
	FileRegular FileType = iota
	FileDirectory
)

// File is a path with optional contents. It is also the body of a File
// reply.
type File struct {
	Path    string
	Type    FileType
	Content []byte
}

type Readdir struct{ File }

type Mkdir struct{ File }

type Read struct{ File }

type Write struct{ File }

type Remove struct{ File }

type Stat struct{ File }

type Move struct {
	OldPath string
	NewPath string
}

type StatResult struct {
	Exists   bool
	Type     FileType
	Size     int64
	FileMode string
	ModTime  int64
}

type Files struct {
	Files []File
}

type FsSnapshot struct{}

type RunOption struct {
	ID        string
	Name      string
	FileParam bool
	Language  string
}

type ToolchainConfigs struct {
	Entrypoint string
	Runs       []RunOption
}

type ToolchainGetRequest struct{}

type ToolchainGetResponse struct {
	Configs *ToolchainConfigs
}

type NixModule struct {
	ID string
}

type NixModulesGetRequest struct{}

type NixModulesGetResponse struct {
	Modules []NixModule
}

// DotReplit mirrors the parsed .replit configuration.
type DotReplit struct {
	Run        *Exec
	Language   string
	Entrypoint string
	Hidden     []string
}

type DotReplitGetRequest struct{}

type DotReplitGetResponse struct {
	DotReplit *DotReplit
}

type ReplspaceApiGetGitHubToken struct {
	Nonce string
}

type ReplspaceApiGitHubToken struct {
	Nonce string
	Token string
}

type ReplspaceApiOpenFile struct {
	File         string
	WaitForClose bool
	Nonce        string
}

type ReplspaceApiCloseFile struct {
	Nonce string
}

func (*ChatMessage) isBody()                {}
func (*ChatTyping) isBody()                 {}
func (*ChatScrollback) isBody()             {}
func (*FileOpened) isBody()                 {}
func (*Roster) isBody()                     {}
func (*Join) isBody()                       {}
func (*Part) isBody()                       {}
func (*FollowUser) isBody()                 {}
func (*UnfollowUser) isBody()               {}
func (*OpenFile) isBody()                   {}
func (*File) isBody()                       {}
func (*Readdir) isBody()                    {}
func (*Mkdir) isBody()                      {}
func (*Read) isBody()                       {}
func (*Write) isBody()                      {}
func (*Remove) isBody()                     {}
func (*Stat) isBody()                       {}
func (*Move) isBody()                       {}
func (*StatResult) isBody()                 {}
func (*Files) isBody()                      {}
func (*FsSnapshot) isBody()                 {}
func (*ToolchainGetRequest) isBody()        {}
func (*ToolchainGetResponse) isBody()       {}
func (*NixModulesGetRequest) isBody()       {}
func (*NixModulesGetResponse) isBody()      {}
func (*DotReplitGetRequest) isBody()        {}
func (*DotReplitGetResponse) isBody()       {}
func (*ReplspaceApiGetGitHubToken) isBody() {}
func (*ReplspaceApiGitHubToken) isBody()    {}
func (*ReplspaceApiOpenFile) isBody()       {}
func (*ReplspaceApiCloseFile) isBody()      {}
