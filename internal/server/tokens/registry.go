// Package tokens implements the in-memory session token registry: a
// process-wide map from opaque token value to owning account, guarded by a
// single mutex. The registry starts empty and is torn down with the
// process, so a restart invalidates every session.
package tokens

import (
	"sync"
	"time"

	"github.com/avasiljevs/userauth/internal/common"
	"github.com/avasiljevs/userauth/internal/server/models"
)

// Registry is a concurrency-safe mapping from token value to account.
// All operations serialize on one mutex; critical sections cover single
// map accesses only and never span store calls.
type Registry struct {
	mu      sync.Mutex
	entries map[string]models.Token

	// validity > 0 enables expiry: entries older than issuedAt+validity
	// are treated as absent and removed lazily on lookup.
	validity time.Duration

	// now is a seam for expiry tests.
	now func() time.Time
}

// NewRegistry creates an empty registry. A zero validity disables expiry.
func NewRegistry(validity time.Duration) *Registry {
	return &Registry{
		entries:  make(map[string]models.Token),
		validity: validity,
		now:      time.Now,
	}
}

// Generate produces a random token value that is not currently a live key,
// retrying until the candidate is free. It does not claim the slot; the
// caller inserts with Put. Callers that want generation and insertion to be
// atomic should use Issue instead.
func (r *Registry) Generate() (string, error) {
	for {
		candidate, err := common.MakeRandAlphanumericString(common.TokenLength)
		if err != nil {
			return "", err
		}
		if !r.Contains(candidate) {
			return candidate, nil
		}
	}
}

// Issue generates a collision-free token and binds it to accountID in one
// critical section, so two concurrent calls can never claim the same value.
func (r *Registry) Issue(accountID int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		candidate, err := common.MakeRandAlphanumericString(common.TokenLength)
		if err != nil {
			return "", err
		}
		if _, taken := r.entries[candidate]; taken {
			continue
		}
		r.entries[candidate] = models.Token{
			Value:     candidate,
			AccountID: accountID,
			IssuedAt:  r.now(),
		}
		return candidate, nil
	}
}

// Put associates token with accountID, overwriting any existing entry for
// the same value.
func (r *Registry) Put(token string, accountID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[token] = models.Token{
		Value:     token,
		AccountID: accountID,
		IssuedAt:  r.now(),
	}
}

// Remove deletes a single token and reports whether it was present.
func (r *Registry) Remove(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, found := r.entries[token]
	delete(r.entries, token)
	return found
}

// Lookup resolves a token to its owning account ID. Expired entries are
// removed on first sight and reported as absent.
func (r *Registry) Lookup(token string) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, found := r.entries[token]
	if !found {
		return 0, false
	}
	if r.expired(entry) {
		delete(r.entries, token)
		return 0, false
	}
	return entry.AccountID, true
}

// Contains reports whether token is a live key in the registry.
func (r *Registry) Contains(token string) bool {
	_, found := r.Lookup(token)
	return found
}

// RevokeAccount removes every token bound to accountID and returns how
// many were revoked. The registry is keyed by token, so this scans by
// value; an account may hold several concurrent sessions.
func (r *Registry) RevokeAccount(accountID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	revoked := 0
	for value, entry := range r.entries {
		if entry.AccountID == accountID {
			delete(r.entries, value)
			revoked++
		}
	}
	return revoked
}

// Len returns the number of live entries, expired ones included until
// their first lookup.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) expired(entry models.Token) bool {
	if r.validity <= 0 {
		return false
	}
	return r.now().After(entry.IssuedAt.Add(r.validity))
}
