package core

import (
	"net/url"
	"strings"
)

const (
	ExternalTarget = "_blank"
	ExternalRel    = "noopener noreferrer"
)

// Site describes the hosting site as far as rendering cares.
type Site struct {
	Host string
}

// IsExternal reports whether rawURL points at a host other than the site's.
// Relative URLs, fragments and URLs without a host are internal. Hosts compare
// case-insensitively and without ports. An absolute URL that does not parse
// still has its host compared, and a host that cannot be read is external.
func (s Site) IsExternal(rawURL string) bool {
	host := linkHost(strings.TrimSpace(rawURL))
	if host == "" {
		return false
	}
	return host != normalizeHost(s.Host)
}

func linkHost(raw string) string {
	if u, err := url.Parse(raw); err == nil {
		return strings.ToLower(u.Hostname())
	}
	return strings.ToLower(authorityHost(raw))
}

// authorityHost reads the host from "scheme://authority" or "//authority"
// without validating the rest of the URL. An unterminated IPv6 literal is
// returned as is so it never matches a site host.
func authorityHost(raw string) string {
	rest, ok := strings.CutPrefix(raw, "//")
	if !ok {
		scheme, after, found := strings.Cut(raw, "://")
		if !found || scheme == "" || strings.ContainsAny(scheme, "/?#") {
			return ""
		}
		rest = after
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.LastIndexByte(rest, '@'); i >= 0 {
		rest = rest[i+1:]
	}
	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return rest
		}
		return rest[1:end]
	}
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if !strings.Contains(host, "://") {
		host = "//" + host
	}
	u, err := url.Parse(host)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
