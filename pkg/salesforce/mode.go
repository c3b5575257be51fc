package salesforce

import (
	"sync"

	"crm-agent-be/internal/constant"
)

// ModeStore holds the process-wide CRM mode. It is initialized from
// configuration at startup and updated only through the admin config
// endpoint; the adapter reads it on every call so a switch takes effect
// on the next request.
type ModeStore struct {
	mu   sync.RWMutex
	mode string
}

func NewModeStore(initial string) *ModeStore {
	if initial != constant.CRMModeReal {
		initial = constant.CRMModeMock
	}
	return &ModeStore{mode: initial}
}

func (m *ModeStore) Get() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mode
}

func (m *ModeStore) Set(mode string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
}
