package util

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
)

type HTTPClientOptions struct {
	Timeout   time.Duration
	UserAgent string
	// Cookies copied out of the authenticated browser session. They are only
	// sent back to the hosts and paths they were issued for.
	Cookies []*http.Cookie
	// CookieURL scopes cookies that carry no Domain.
	CookieURL   string
	Transport   http.RoundTripper
	DebugLogger interface {
		Debugf(string, ...any)
	}
}

func NewHTTPClient(opts HTTPClientOptions) *http.Client {
	jar, _ := cookiejar.New(nil)
	seeded := SeedJar(jar, opts.Cookies, opts.CookieURL)

	baseTransport := opts.Transport
	if baseTransport == nil {
		baseTransport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        16,
			MaxIdleConnsPerHost: 8,
			ForceAttemptHTTP2:   true,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: roundTripper{
			base: cloudflarebp.AddCloudFlareByPass(baseTransport),
			ua:   PickUserAgent(opts.UserAgent),
			log:  opts.DebugLogger,
		},
		Jar: jar,
	}

	if opts.DebugLogger != nil {
		opts.DebugLogger.Debugf("HTTP client initialized (timeout=%s, cookies=%d/%d)", opts.Timeout, seeded, len(opts.Cookies))
	}

	return client
}

type roundTripper struct {
	base http.RoundTripper
	ua   string
	log  interface{ Debugf(string, ...any) }
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if rt.ua != "" {
		req.Header.Set("User-Agent", rt.ua)
	}

	if rt.log != nil {
		rt.log.Debugf("HTTP %s %s", req.Method, req.URL.String())
	}

	return rt.base.RoundTrip(req)
}

// SeedJar stores browser cookies in jar under the host and path each one was
// issued for. A Domain with a leading dot is kept as a domain cookie, any other
// Domain becomes host-only, and cookies without a Domain are scoped to
// fallback. It returns how many cookies were stored.
func SeedJar(jar http.CookieJar, cookies []*http.Cookie, fallback string) int {
	var fb *url.URL
	if fallback != "" {
		fb, _ = url.Parse(fallback)
	}

	n := 0
	for _, c := range cookies {
		if c == nil || c.Name == "" {
			continue
		}

		host := strings.TrimPrefix(c.Domain, ".")
		if host == "" {
			if fb == nil || fb.Hostname() == "" {
				continue
			}
			host = fb.Hostname()
		}

		path := c.Path
		if path == "" {
			path = "/"
		}

		cc := *c
		if !strings.HasPrefix(c.Domain, ".") {
			cc.Domain = ""
		}
		cc.Path = path

		jar.SetCookies(&url.URL{Scheme: "https", Host: host, Path: path}, []*http.Cookie{&cc})
		n++
	}
	return n
}

func PickUserAgent(override string) string {
	if override != "" {
		return override
	}

	return "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
}
