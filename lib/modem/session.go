package modem

import (
	"crypto/tls"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// session owns the HTTP client and cookie jar for one authenticated
// conversation with the modem. Sessions are never reused across credential
// changes; Login replaces the whole session when credentials differ.
type session struct {
	client     *http.Client
	jar        http.CookieJar
	cookieName string
	ttl        time.Duration
	expiresAt  time.Time
}

func newSession(cookieName string, ttl, timeout time.Duration, ignoreCert bool) *session {
	jar, _ := cookiejar.New(nil)

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if ignoreCert {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &session{
		client: &http.Client{
			Jar:       jar,
			Timeout:   timeout,
			Transport: transport,
		},
		jar:        jar,
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// hasCookie reports whether the named session cookie is present for u.
func (s *session) hasCookie(u *url.URL) bool {
	for _, c := range s.jar.Cookies(u) {
		if c.Name == s.cookieName {
			return true
		}
	}
	return false
}

// alive reports whether the session cookie exists and the tracked deadline
// has not passed yet.
func (s *session) alive(u *url.URL) bool {
	return s.hasCookie(u) && time.Now().Before(s.expiresAt)
}

// touch pushes the session deadline forward. The admin UI does not renew
// its server-side timeout on normal traffic, so the client tracks the
// deadline itself and refreshes it after every successful action.
func (s *session) touch() {
	s.expiresAt = time.Now().Add(s.ttl)
}

// close releases idle connections held by the session's transport.
func (s *session) close() {
	s.client.CloseIdleConnections()
}
