package web

import (
	"context"
	"net"
	"net/http"

	"github.com/JonMunkholm/budget/internal/core"
)

// WithRequestMetadata adds the client IP and User-Agent to ctx for the
// import log entries.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	ip, ok := clientIP(r.RemoteAddr)
	if !ok {
		ip = r.RemoteAddr
	}
	ctx = core.ContextWithIPAddress(ctx, ip)
	ctx = core.ContextWithUserAgent(ctx, r.UserAgent())
	return ctx
}

// clientIP strips the port from a RemoteAddr already resolved by
// TrustedRealIP.
func clientIP(remoteAddr string) (string, bool) {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host, true
	}
	if ip := net.ParseIP(remoteAddr); ip != nil {
		return ip.String(), true
	}
	return "", false
}
