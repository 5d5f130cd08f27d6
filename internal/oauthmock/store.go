package oauthmock

import "sync"

// ClientRegistry stores dynamically registered clients. Registration is
// append-only; entries are never updated or deleted.
type ClientRegistry interface {
	Put(client *RegisteredClient)
	Get(clientID string) (*RegisteredClient, bool)
	Len() int
}

// GrantStore maps authorization codes to the context needed to redeem them.
// Take is the single-use enforcement point: it must atomically look up and
// remove the grant so two concurrent redemptions of the same code can never
// both succeed.
type GrantStore interface {
	Put(grant *IssuedGrant)
	Take(code string) (*IssuedGrant, bool)
	Len() int
}

type memoryClientRegistry struct {
	mu      sync.RWMutex
	clients map[string]*RegisteredClient
}

// NewMemoryClientRegistry creates an in-memory client registry.
func NewMemoryClientRegistry() ClientRegistry {
	return &memoryClientRegistry{clients: make(map[string]*RegisteredClient)}
}

func (r *memoryClientRegistry) Put(client *RegisteredClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client.ClientID] = client
}

func (r *memoryClientRegistry) Get(clientID string) (*RegisteredClient, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[clientID]
	return client, ok
}

func (r *memoryClientRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

type memoryGrantStore struct {
	mu     sync.Mutex
	grants map[string]*IssuedGrant
}

// NewMemoryGrantStore creates an in-memory grant store.
func NewMemoryGrantStore() GrantStore {
	return &memoryGrantStore{grants: make(map[string]*IssuedGrant)}
}

func (s *memoryGrantStore) Put(grant *IssuedGrant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[grant.Code] = grant
}

// Take removes and returns the grant for code. The lookup and delete happen
// under one lock acquisition, so exactly one of any number of concurrent
// callers observes the grant.
func (s *memoryGrantStore) Take(code string) (*IssuedGrant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	grant, ok := s.grants[code]
	if ok {
		delete(s.grants, code)
	}
	return grant, ok
}

func (s *memoryGrantStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.grants)
}
