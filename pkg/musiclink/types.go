// Package musiclink classifies music links by the platform that serves them.
package musiclink

import (
	"net/url"
	"strings"

	"odesli/pkg/odesli"
)

// Resolver recognizes the links of one platform.
type Resolver interface {
	// Platform returns the platform this resolver recognizes.
	Platform() odesli.Platform

	// CanResolve checks if this resolver can handle the given URL.
	CanResolve(url string) bool
}

// hostResolver matches a URL's hostname against a set of domains.
type hostResolver struct {
	platform odesli.Platform
	match    func(hostname string) bool
}

func (r *hostResolver) Platform() odesli.Platform {
	return r.platform
}

func (r *hostResolver) CanResolve(rawURL string) bool {
	hostname, ok := hostnameOf(rawURL)
	if !ok {
		return false
	}
	return r.match(hostname)
}

// hostnameOf returns the lowercased hostname without a leading "www.".
func hostnameOf(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}
	hostname := strings.ToLower(u.Hostname())
	if hostname == "" {
		return "", false
	}
	return strings.TrimPrefix(hostname, "www."), true
}

// domains matches any of the given domains or their subdomains.
func domains(names ...string) func(string) bool {
	return func(hostname string) bool {
		for _, name := range names {
			if hostname == name || strings.HasSuffix(hostname, "."+name) {
				return true
			}
		}
		return false
	}
}

// exact matches only the given hostnames.
func exact(names ...string) func(string) bool {
	return func(hostname string) bool {
		for _, name := range names {
			if hostname == name {
				return true
			}
		}
		return false
	}
}

// anyTLD matches "<label>.<tld>" for any country TLD, e.g. amazon.co.uk.
func anyTLD(label string) func(string) bool {
	return func(hostname string) bool {
		return strings.HasPrefix(hostname, label+".")
	}
}
