package api

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"whisper-batch/internal/app/hardware"
)

// Dependencies are shared collaborators handed to every backend creator.
type Dependencies struct {
	Probe  hardware.Probe
	Logger *zap.SugaredLogger
}

// Creator builds a Transcriber from its configured settings.
type Creator func(settings map[string]interface{}, deps Dependencies) (Transcriber, error)

var (
	registry      = make(map[string]Creator)
	registryMutex sync.RWMutex
)

// Register makes a backend available under the given name. Backend packages
// call this from init(); main selects them with blank imports.
func Register(name string, creator Creator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registry[name] = creator
}

// New builds the named backend.
func New(name string, settings map[string]interface{}, deps Dependencies) (Transcriber, error) {
	registryMutex.RLock()
	creator, ok := registry[name]
	registryMutex.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown transcription provider %q (registered: %v)", name, Registered())
	}
	return creator(settings, deps)
}

// Registered returns the registered backend names in sorted order.
func Registered() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
