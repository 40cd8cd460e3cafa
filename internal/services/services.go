// Package services implements the channel services a client can open:
// collaborative editing, terminals, process runs, chat, presence, file
// access and a handful of informational stubs.
//
// Every service is owned by exactly one channel actor, so service state is
// never touched concurrently; goroutines a service spawns talk back to it
// through ChannelInfo.Notify.
package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/goval-community/homeval/internal/actor"
	"github.com/goval-community/homeval/internal/config"
	"github.com/goval-community/homeval/internal/consts"
	"github.com/goval-community/homeval/internal/fs"
	"github.com/goval-community/homeval/internal/proc"
	"github.com/goval-community/homeval/internal/replspace"
	"github.com/goval-community/homeval/internal/store"
)

// Deps are the process-wide collaborators services are built with.
type Deps struct {
	// FS is the workspace filesystem. Defaults to the working directory.
	FS fs.FileSystem
	// Env is the base environment of every child process.
	Env *proc.Env
	// DotReplit is the loaded .replit. May be nil.
	DotReplit *config.DotReplit
	// Files caches OT histories between links. May be nil.
	Files store.FileCache
	// Replspace resolves replies to replspace requests. May be nil.
	Replspace *replspace.Table
	// Version and Started feed the server info file.
	Version string
	Started time.Time
	// Debounce is the OT file watcher debounce window.
	Debounce time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.FS == nil {
		d.FS = fs.NewOS("")
	}
	if d.Env == nil {
		d.Env = proc.NewEnv()
	}
	if d.DotReplit == nil {
		d.DotReplit = &config.DotReplit{}
	}
	if d.Started.IsZero() {
		d.Started = time.Now()
	}
	if d.Debounce <= 0 {
		d.Debounce = consts.WatchDebounce
	}
	if d.Version == "" {
		d.Version = "dev"
	}
	return d
}

var constructors = map[string]func(Deps) actor.Service{
	"chat":      func(Deps) actor.Service { return NewChat() },
	"dotreplit": func(d Deps) actor.Service { return &DotReplit{dotReplit: d.DotReplit} },
	"exec":      func(d Deps) actor.Service { return NewExec(d) },
	"gcsfiles":  func(d Deps) actor.Service { return NewGCSFiles(d) },
	"git":       func(d Deps) actor.Service { return NewGit(d.Replspace) },
	"null":      func(Deps) actor.Service { return &Null{} },
	"open":      func(Deps) actor.Service { return &Null{} },
	"ot":        func(d Deps) actor.Service { return NewOT(d) },
	"output":    func(d Deps) actor.Service { return NewOutput(d) },
	"presence":  func(Deps) actor.Service { return NewPresence() },
	"shell":     func(d Deps) actor.Service { return NewShell(d) },
	"shell2":    func(d Deps) actor.Service { return NewShell(d) },
	"snapshot":  func(Deps) actor.Service { return &Snapshot{} },
	"toolchain": func(d Deps) actor.Service { return &Toolchain{dotReplit: d.DotReplit} },
}

// New constructs the service registered under name.
func New(name string, deps Deps) (actor.Service, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", actor.ErrUnknownService, name)
	}
	return ctor(deps.withDefaults()), nil
}

// Implemented lists the service names New accepts, sorted.
func Implemented() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// notifyExit returns a process exit callback that reports to the channel.
func notifyExit(info *actor.ChannelInfo) func(int) {
	return func(code int) {
		if err := info.Notify(actor.ProcessDead{ExitCode: code}); err != nil {
			info.Logger().Debug("process exit after channel closed: %v", err)
		}
	}
}
