package tracker

import (
	"net/url"
	"strings"
)

// NormalizeDomain lowercases a domain, strips any scheme, port, and path,
// and removes a leading "www.". All blocklist entries and visit domains go
// through this before comparison or storage.
func NormalizeDomain(domain string) string {
	d := strings.TrimSpace(strings.ToLower(domain))

	if i := strings.Index(d, "://"); i >= 0 {
		d = d[i+3:]
	}
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	if i := strings.LastIndex(d, ":"); i >= 0 {
		// Only treat as a port if everything after the colon is digits.
		if port := d[i+1:]; port != "" && strings.Trim(port, "0123456789") == "" {
			d = d[:i]
		}
	}
	d = strings.TrimPrefix(d, "www.")
	return strings.TrimSuffix(d, ".")
}

// DomainFromURL extracts the normalized domain from a raw URL. Inputs that
// fail to parse as URLs are normalized as bare domains instead.
func DomainFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err == nil && u.Hostname() != "" {
		return NormalizeDomain(u.Hostname())
	}
	return NormalizeDomain(raw)
}
