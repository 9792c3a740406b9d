package service

import (
	"net/url"
	"strings"
)

// DefaultImageHosts are the hosts gallery images may be served from. A
// leading "*." matches any subdomain.
var DefaultImageHosts = []string{
	"images.unsplash.com",
	"plus.unsplash.com",
	"*.fbcdn.net",
	"drive.google.com",
	"lh3.googleusercontent.com",
	"firebasestorage.googleapis.com",
}

// ImageHosts is an allow-list of image hosts.
type ImageHosts struct {
	patterns []string
}

// NewImageHosts builds an allow-list from the defaults plus extra patterns.
func NewImageHosts(extra ...string) *ImageHosts {
	seen := map[string]bool{}
	var patterns []string
	for _, p := range append(append([]string{}, DefaultImageHosts...), extra...) {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		patterns = append(patterns, p)
	}
	return &ImageHosts{patterns: patterns}
}

// Patterns returns a copy of the configured patterns.
func (h *ImageHosts) Patterns() []string {
	return append([]string(nil), h.patterns...)
}

// Allowed reports whether raw is an absolute https URL on an allowed host.
func (h *ImageHosts) Allowed(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, p := range h.patterns {
		if suffix, ok := strings.CutPrefix(p, "*."); ok {
			if strings.HasSuffix(host, "."+suffix) {
				return true
			}
			continue
		}
		if host == p {
			return true
		}
	}
	return false
}
