//
//  internal/requestinfo/requestinfo.go
//
//  Lightweight per-request metadata: request ID, client address,
//  user-agent fingerprint, and timestamp.  These structs are inert—no
//  database handles, no large buffers—so they are safe to log or
//  JSON-encode.
//

package requestinfo

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	surfer "github.com/avct/uasurfer"
)

// UA holds the parsed user-agent properties templates and analytics need.
type UA struct {
	Raw     string // entire User-Agent header
	Browser string // "Chrome", "Firefox", "Safari", ...
	OS      string // "Android", "iOS", "Windows", ...
	IsBot   bool   // true if UA matches a crawler signature
}

// RequestInfo is attached to the request context by Enrich.
type RequestInfo struct {
	ID        string // uuid, echoed in logs and the X-Request-Id header
	RemoteIP  net.IP
	UA        UA
	Timestamp time.Time
}

type ctxKey struct{} // unexported, collision-proof

// FromContext returns the pointer previously stored by Enrich, or nil when
// the middleware has not run.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

// parseUA converts a raw header into our UA struct using uasurfer.
func parseUA(raw string) UA {
	u := surfer.Parse(raw)
	return UA{
		Raw:     raw,
		Browser: strings.TrimPrefix(u.Browser.Name.String(), "Browser"),
		OS:      strings.TrimPrefix(u.OS.Name.String(), "OS"),
		IsBot:   u.IsBot(),
	}
}

// remoteIP extracts the client address without the port.
func remoteIP(r *http.Request) net.IP {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return net.ParseIP(host)
}
