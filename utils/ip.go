package utils

import (
	"net"
	"net/http"
	"strings"
)

// RealClientIP resolves the originating client address. Behind a proxy the
// first entry of X-Forwarded-For is the client; without one the remote
// address is used directly.
func RealClientIP(r *http.Request) string {
	if xfwd := r.Header.Get("X-Forwarded-For"); xfwd != "" {
		first, _, _ := strings.Cut(xfwd, ",")
		return strings.TrimSpace(first)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
