package backend

import (
	"sort"
	"sync"

	"github.com/c2fo/storages"
)

// DefaultAlias is the alias application code looks up when it does not care which storage it gets.
const DefaultAlias = "default"

var mmu sync.RWMutex
var m map[string]storages.Storage

// Register a storage under an alias, replacing any storage already registered under it
func Register(alias string, s storages.Storage) {
	mmu.Lock()
	m[alias] = s
	mmu.Unlock()
}

// Unregister unregisters a storage from the backend map
func Unregister(alias string) {
	mmu.Lock()
	delete(m, alias)
	mmu.Unlock()
}

// UnregisterAll unregisters all storages from the backend map
func UnregisterAll() {
	// mainly for tests
	mmu.Lock()
	m = make(map[string]storages.Storage)
	mmu.Unlock()
}

// Backend returns the storage registered under alias, or nil
func Backend(alias string) storages.Storage {
	mmu.RLock()
	defer mmu.RUnlock()
	return m[alias]
}

// Default returns the storage registered under DefaultAlias, or nil
func Default() storages.Storage {
	return Backend(DefaultAlias)
}

// RegisteredBackends returns the sorted aliases of all registered storages
func RegisteredBackends() []string {
	var f []string
	mmu.RLock()
	for k := range m {
		f = append(f, k)
	}
	mmu.RUnlock()
	sort.Strings(f)
	return f
}

func init() {
	m = make(map[string]storages.Storage)
}
