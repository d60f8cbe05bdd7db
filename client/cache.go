// client/cache.go - Read cache and invalidation rules
package client

import (
	"path"
	"sync"
)

type mutationKind int

const (
	mutRegister mutationKind = iota
	mutLogin
	mutLogout
	mutCreateBird
	mutUpdateBird
	mutDeleteBird
	mutCreateTraining
	mutCreateTournament
	mutEnroll
	mutSubmitResults
)

// invalidationRules is the mutation → cached-reads table. Patterns use "*"
// for one path segment, so "/api/birds/*" covers every single-bird read and
// "/api/birds/*/trainings" covers every training list.
var invalidationRules = map[mutationKind][]string{
	mutRegister:         {"/api/user"},
	mutLogin:            {"/api/user"},
	mutLogout:           {"/api/user"},
	mutCreateBird:       {"/api/birds", "/api/birds/*"},
	mutUpdateBird:       {"/api/birds", "/api/birds/*"},
	mutDeleteBird:       {"/api/birds", "/api/birds/*", "/api/birds/*/trainings"},
	mutCreateTraining:   {"/api/birds/*/trainings"},
	mutCreateTournament: {"/api/tournaments"},
	mutEnroll:           {"/api/tournaments", "/api/tournaments/*"},
	mutSubmitResults:    {"/api/tournaments/*", "/api/rankings"},
}

// responseCache stores raw response bodies keyed by endpoint path.
type responseCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func newResponseCache() *responseCache {
	return &responseCache{entries: make(map[string][]byte)}
}

func (rc *responseCache) get(key string) ([]byte, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	body, ok := rc.entries[key]
	return body, ok
}

func (rc *responseCache) set(key string, body []byte) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries[key] = body
}

// invalidate drops every cached read the mutation's rules cover.
func (rc *responseCache) invalidate(mutation mutationKind) {
	patterns := invalidationRules[mutation]
	if len(patterns) == 0 {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	for key := range rc.entries {
		for _, pattern := range patterns {
			if ok, _ := path.Match(pattern, key); ok {
				delete(rc.entries, key)
				break
			}
		}
	}
}
