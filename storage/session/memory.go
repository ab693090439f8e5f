package sessionstore

import (
	"sync"

	"github.com/trezcool/mentorhub/core/auth"
)

// MemoryStore keeps a session in memory. used in tests
type MemoryStore struct {
	mutex sync.RWMutex
	sess  *auth.Session
}

var _ auth.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) Load() (auth.Session, error) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	if ms.sess == nil {
		return auth.Session{}, auth.ErrNoSession
	}
	return *ms.sess, nil
}

func (ms *MemoryStore) Save(sess auth.Session) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	ms.sess = &sess
	return nil
}

func (ms *MemoryStore) Clear() error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	ms.sess = nil
	return nil
}
