package tools

import (
	"os"
	"slices"
	"sync"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"golang.org/x/exp/maps"
)

// Registry is a threadsafe storage for LLMTools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]LLMTool
	debug bool
}

// NewRegistry returns an empty tools registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]LLMTool), debug: misc.Truthy(os.Getenv("DEBUG"))}
}

// Defaults returns a registry pre-loaded with the email assistant's
// tool set. This is the closed set the response loop dispatches on:
// anything outside it is a dispatch violation.
func Defaults() *Registry {
	r := NewRegistry()
	r.Set(SendEmail.Specification().Name, SendEmail)
	r.Set(ScheduleMeeting.Specification().Name, ScheduleMeeting)
	r.Set(CheckAvailability.Specification().Name, CheckAvailability)
	r.Set(Done.Specification().Name, Done)
	r.Set(AskUser.Specification().Name, AskUser)
	return r
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (LLMTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Set registers tool under the provided name.
func (r *Registry) Set(name string, t LLMTool) {
	r.mu.Lock()
	if r.debug {
		ancli.Okf("adding tool to registry, name: %v\n", t.Specification().Name)
	}
	r.tools[name] = t
	r.mu.Unlock()
}

// All returns a copy of all registered tools keyed by name.
func (r *Registry) All() map[string]LLMTool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := make(map[string]LLMTool, len(r.tools))
	for k, v := range r.tools {
		cp[k] = v
	}
	return cp
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := maps.Keys(r.tools)
	slices.Sort(names)
	return names
}

// Reset removes all registered tools. Primarily used for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.tools = make(map[string]LLMTool)
	r.mu.Unlock()
}
