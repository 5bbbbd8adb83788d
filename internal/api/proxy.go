package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/oscy/oscy-web/internal/api/respond"
)

// Proxy forwards /api/* and /openapi.json to the backend origin.
type Proxy struct {
	origin *url.URL
	rp     *httputil.ReverseProxy
	logger *slog.Logger
}

// NewProxy creates a proxy for origin, e.g. "https://oscy-api.vercel.app".
func NewProxy(origin string, logger *slog.Logger) (*Proxy, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parse backend origin: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend origin %q must be absolute", origin)
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &Proxy{origin: u, logger: logger}
	p.rp = &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(u)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			p.logger.Warn("proxy error", "path", r.URL.Path, "error", err)
			respond.WriteError(w, http.StatusBadGateway, respond.CodeUpstream, "Backend unavailable")
		},
	}
	return p, nil
}

// Docs redirects /api/docs to the backend's own documentation page.
func (p *Proxy) Docs(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, p.origin.JoinPath("docs").String(), http.StatusTemporaryRedirect)
}

// OpenAPI forwards /openapi.json unchanged.
func (p *Proxy) OpenAPI(w http.ResponseWriter, r *http.Request) {
	p.rp.ServeHTTP(w, r)
}

// API forwards /api/<rest>?<query> to <origin>/<rest>?<query>.
func (p *Proxy) API(w http.ResponseWriter, r *http.Request) {
	out := r.Clone(r.Context())
	out.URL.Path = "/" + strings.TrimPrefix(strings.TrimPrefix(r.URL.Path, "/api"), "/")
	out.URL.RawPath = ""
	p.rp.ServeHTTP(w, out)
}
