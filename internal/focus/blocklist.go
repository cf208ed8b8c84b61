package focus

import (
	"strings"
	"sync"

	"github.com/blackwell-systems/webtime/internal/tracker"
)

// Blocklist is the set of domains blocked during an active focus session.
// Entries are stored normalized; no two entries share a normalized domain.
type Blocklist struct {
	mu      sync.Mutex
	domains []string
}

// NewBlocklist creates a Blocklist seeded with the given domains. Seed
// entries are normalized and deduplicated.
func NewBlocklist(domains ...string) *Blocklist {
	bl := &Blocklist{}
	for _, d := range domains {
		_ = bl.Add(d)
	}
	return bl
}

// Add normalizes the domain and appends it to the list. An input that
// normalizes to nothing fails with ErrInvalidDomain; a domain already
// present (post-normalization) fails with ErrDuplicateDomain.
func (bl *Blocklist) Add(domain string) error {
	normalized := tracker.NormalizeDomain(domain)
	if normalized == "" {
		return ErrInvalidDomain
	}

	bl.mu.Lock()
	defer bl.mu.Unlock()

	for _, d := range bl.domains {
		if d == normalized {
			return ErrDuplicateDomain
		}
	}
	bl.domains = append(bl.domains, normalized)
	return nil
}

// Remove deletes the domain from the list, reporting whether it was
// present. Removing an absent domain is a no-op.
func (bl *Blocklist) Remove(domain string) bool {
	normalized := tracker.NormalizeDomain(domain)

	bl.mu.Lock()
	defer bl.mu.Unlock()

	for i, d := range bl.domains {
		if d == normalized {
			bl.domains = append(bl.domains[:i], bl.domains[i+1:]...)
			return true
		}
	}
	return false
}

// Matches reports whether the domain matches any entry. Matching uses the
// same substring semantics as domain categorization, so "example.com"
// matches an entry "example.com" as well as "sub.example.com".
func (bl *Blocklist) Matches(domain string) bool {
	normalized := tracker.NormalizeDomain(domain)
	if normalized == "" {
		return false
	}

	bl.mu.Lock()
	defer bl.mu.Unlock()

	for _, d := range bl.domains {
		if strings.Contains(normalized, d) || strings.Contains(d, normalized) {
			return true
		}
	}
	return false
}

// Domains returns a copy of the current entries in insertion order.
func (bl *Blocklist) Domains() []string {
	bl.mu.Lock()
	defer bl.mu.Unlock()

	out := make([]string, len(bl.domains))
	copy(out, bl.domains)
	return out
}
