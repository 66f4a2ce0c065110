package utils

import (
	"net"
	"net/http"
	"strings"
)

// ParseHostNoPort strips an optional port from host:port.
func ParseHostNoPort(s string) string {
	if host, _, err := net.SplitHostPort(s); err == nil {
		return host
	}
	return s
}

// FirstForwardedFor returns the first (client) entry of an
// X-Forwarded-For header, or "" when the header is empty.
func FirstForwardedFor(xff string) string {
	if xff == "" {
		return ""
	}
	parts := strings.Split(xff, ",")
	return strings.TrimSpace(parts[0])
}

// ClientIP resolves the real client IP.
// When trustProxy is true, proxy headers win over RemoteAddr
// (use only behind a trusted reverse proxy).
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); ip != "" {
			return ip
		}
		if ip := FirstForwardedFor(r.Header.Get("X-Forwarded-For")); ip != "" {
			return ip
		}
		if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}
	return ParseHostNoPort(r.RemoteAddr)
}
