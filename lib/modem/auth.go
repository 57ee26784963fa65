package modem

import (
	"net/url"

	"github.com/automodemadmin/modemadm/lib/log"
)

// authenticator is the vendor-specific login handshake. Each concrete model
// implements it; authModem only decides when it has to run.
type authenticator interface {
	authenticate() error
}

// authModem carries the session and credential state shared by every model
// that gates actions behind a login. Invariant: credentials and session stay
// in sync. Changing credentials replaces the session wholesale, and a device
// holds at most one live session.
type authModem struct {
	baseURL    *url.URL
	cookieName string
	creds      *Credentials
	sess       *session
	opts       Options
	auth       authenticator
}

func newAuthModem(baseURL *url.URL, cookieName string, opts Options, auth authenticator) authModem {
	creds := NewCredentials()
	creds.Set(credUsername, opts.Username)
	creds.Set(credPassword, opts.Password)

	m := authModem{
		baseURL:    baseURL,
		cookieName: cookieName,
		creds:      creds,
		opts:       opts,
		auth:       auth,
	}
	m.sess = newSession(cookieName, opts.sessionTTL(), opts.timeout(), opts.IgnoreCert)
	return m
}

// Login replaces the stored credentials and authenticates. A credential
// change invalidates the current session: the next handshake runs against a
// fresh cookie jar.
func (m *authModem) Login(username, password string) error {
	changed := username != m.creds.Get(credUsername) || password != m.creds.Get(credPassword)

	m.creds.Set(credUsername, username)
	m.creds.Set(credPassword, password)

	if changed {
		log.Debugf("Credentials changed, discarding session for %s", m.baseURL.Host)
		m.resetSession()
	}

	return m.auth.authenticate()
}

// IsAuthenticated inspects the session: the named cookie must be present
// and the tracked deadline must not have passed.
func (m *authModem) IsAuthenticated() bool {
	return m.sess != nil && m.sess.alive(m.baseURL)
}

// requireAuth is the login guard wrapped around every admin action:
// authenticate first when the session is missing or expired (exactly one
// attempt), run the action, and on success push the session deadline
// forward.
func (m *authModem) requireAuth(fn func() error) error {
	if !m.IsAuthenticated() {
		log.Debugf("Session for %s is not authenticated, logging in", m.baseURL.Host)
		if err := m.auth.authenticate(); err != nil {
			return err
		}
	}

	if err := fn(); err != nil {
		return err
	}

	m.sess.touch()
	return nil
}

func (m *authModem) resetSession() {
	if m.sess != nil {
		m.sess.close()
	}
	m.sess = newSession(m.cookieName, m.opts.sessionTTL(), m.opts.timeout(), m.opts.IgnoreCert)
}

// Close releases the session's idle connections.
func (m *authModem) Close() {
	if m.sess != nil {
		m.sess.close()
	}
}
