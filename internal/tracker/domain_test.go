package tracker

import "testing"

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com"},
		{"EXAMPLE.COM", "example.com"},
		{"www.example.com", "example.com"},
		{"WWW.Example.com", "example.com"},
		{"https://example.com", "example.com"},
		{"https://www.example.com/path?q=1", "example.com"},
		{"example.com:8080", "example.com"},
		{"example.com.", "example.com"},
		{"  example.com  ", "example.com"},
		{"sub.www.example.com", "sub.www.example.com"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := NormalizeDomain(tc.in); got != tc.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDomain_Idempotent(t *testing.T) {
	inputs := []string{"https://WWW.YouTube.com/watch?v=x", "example.com:443", "news.ycombinator.com"}
	for _, in := range inputs {
		once := NormalizeDomain(in)
		if twice := NormalizeDomain(once); twice != once {
			t.Errorf("NormalizeDomain not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestDomainFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.youtube.com/watch?v=abc", "youtube.com"},
		{"http://github.com/user/repo", "github.com"},
		{"https://example.com:8443/x", "example.com"},
		{"reddit.com", "reddit.com"},
		{"reddit.com/r/golang", "reddit.com"},
	}

	for _, tc := range tests {
		if got := DomainFromURL(tc.in); got != tc.want {
			t.Errorf("DomainFromURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
