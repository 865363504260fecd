package commands

import (
	"fmt"
	"sort"
	"sync"

	"deskshell/internal/logger"
)

// Func is an invocable command handler. Handlers are synchronous and run on
// the caller's goroutine.
type Func func(arg string) (string, error)

// Registry is the table of commands the front-end layer may invoke by name.
// Command names are unique strings.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Func
	logger logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop{}
	}
	return &Registry{
		byName: make(map[string]Func),
		logger: log,
	}
}

// Register adds a command under the given name. Empty names and duplicate
// registrations are rejected.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("register command: empty name")
	}
	if fn == nil {
		return fmt.Errorf("register command %q: nil handler", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("register command %q: already registered", name)
	}
	r.byName[name] = fn

	r.logger.Debug("CommandRegistry", "command registered", map[string]interface{}{
		"command": name,
	})
	return nil
}

// Invoke runs the named command with the given argument.
func (r *Registry) Invoke(name, arg string) (string, error) {
	r.mu.RLock()
	fn, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("invoke command %q: not registered", name)
	}
	return fn(arg)
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
