package proc

import (
	"os"
	"sort"
	"strings"
	"sync"
)

// Env is the process-wide environment every spawned child inherits, on
// top of the server's own environment.
type Env struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewEnv creates an empty base environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]string)}
}

// Set adds or replaces a variable.
func (e *Env) Set(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vars[key] = value
}

// Get returns a variable from the base environment.
func (e *Env) Get(key string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.vars[key]
	return v, ok
}

// Environ merges the server environment, the base and overrides, in that
// order of precedence from lowest to highest. e may be nil.
func (e *Env) Environ(overrides map[string]string) []string {
	merged := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			merged[k] = v
		}
	}
	if e != nil {
		e.mu.RLock()
		for k, v := range e.vars {
			merged[k] = v
		}
		e.mu.RUnlock()
	}
	for k, v := range overrides {
		merged[k] = v
	}

	out := make([]string, 0, len(merged))
	for k, v := range merged {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
