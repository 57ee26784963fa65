package modem

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/automodemadmin/modemadm/lib/log"
	"github.com/automodemadmin/modemadm/lib/utils"
)

const ModelTG1682G = "TG1682G"

// Admin interface paths for the TG1682G (Xfinity XB3). The login handshake
// answers 200 either way; the DUKSID cookie is the only success signal.
const (
	tg1682gCookie       = "DUKSID"
	tg1682gLoginPath    = "/check.jst"
	tg1682gRebootPath   = "/actionHandler/ajaxSet_restore_reboot.jst"
	tg1682gWirelessPath = "/actionHandler/ajaxSet_wireless_network_configuration.jst"
	tg1682gPageTmpl     = "/{page}"
)

// TG1682G drives the Arris TG1682G web admin interface over HTTPS.
type TG1682G struct {
	authModem
}

func NewTG1682G(opts Options) *TG1682G {
	t := &TG1682G{}
	base := &url.URL{Scheme: "https", Host: hostFromAddress(opts.IPAddress)}
	t.authModem = newAuthModem(base, tg1682gCookie, opts, t)
	return t
}

// hostFromAddress wraps bare IPv6 literals in brackets so they form a valid
// URL host. host:port values pass through untouched.
func hostFromAddress(addr string) string {
	if strings.Contains(addr, ":") && !strings.HasPrefix(addr, "[") && utils.IsIP(addr) {
		return "[" + addr + "]"
	}
	return addr
}

func (t *TG1682G) authenticate() error {
	form := url.Values{
		"username": {t.creds.Get(credUsername)},
		"password": {t.creds.Get(credPassword)},
	}

	resp, err := t.sess.client.PostForm(t.absURL(t.path(EndpointLogin, tg1682gLoginPath)), form)
	if err != nil {
		return fmt.Errorf("login request to %s failed: %w", t.baseURL.Host, err)
	}
	defer utils.CloseOrPanic(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("login endpoint returned %s", resp.Status)
	}

	if !t.sess.hasCookie(t.baseURL) {
		return fmt.Errorf("%w: modem did not set %s cookie", ErrInvalidCredentials, t.cookieName)
	}

	t.sess.touch()
	log.Debugf("Authenticated to %s", t.baseURL.Host)
	return nil
}

// Reboot reboots the modem.
func (t *TG1682G) Reboot() error {
	return t.requireAuth(func() error {
		log.Infof("Rebooting modem at %s", t.baseURL.Host)
		return t.postForm(t.path(EndpointReboot, tg1682gRebootPath), url.Values{
			"restore_reboot": {"1"},
		})
	})
}

// GetPage fetches an arbitrary admin page and returns its body.
func (t *TG1682G) GetPage(page string) (string, error) {
	var body string
	err := t.requireAuth(func() error {
		resp, err := t.sess.client.Get(t.absURL(t.pagePath(page)))
		if err != nil {
			return fmt.Errorf("page request to %s failed: %w", t.baseURL.Host, err)
		}
		defer utils.CloseOrPanic(resp.Body)

		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("page %s returned %s", page, resp.Status)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read page body: %w", err)
		}

		body = string(data)
		return nil
	})
	return body, err
}

// ResetWifi power-cycles the radios through the wireless settings handler.
func (t *TG1682G) ResetWifi() error {
	return t.requireAuth(func() error {
		log.Infof("Restarting Wi-Fi radios on %s", t.baseURL.Host)
		return t.postForm(t.path(EndpointWireless, tg1682gWirelessPath), url.Values{
			"wifi_restart": {"true"},
		})
	})
}

// MigrateChannel moves the 2.4 GHz radio to the given channel (0 = auto).
func (t *TG1682G) MigrateChannel(channel int) error {
	if channel < 0 || channel > 13 {
		return fmt.Errorf("channel %d is out of range (0-13, 0 = auto)", channel)
	}

	return t.requireAuth(func() error {
		log.Infof("Moving %s to 2.4 GHz channel %d", t.baseURL.Host, channel)
		return t.postForm(t.path(EndpointWireless, tg1682gWirelessPath), url.Values{
			"channel_24": {strconv.Itoa(channel)},
		})
	})
}

func (t *TG1682G) postForm(path string, form url.Values) error {
	resp, err := t.sess.client.PostForm(t.absURL(path), form)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer utils.CloseOrPanic(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s returned %s", path, resp.Status)
	}
	return nil
}

// path returns the configured override for an endpoint, or the built-in
// default.
func (t *TG1682G) path(name, def string) string {
	if p := t.opts.Endpoints[name]; p != "" {
		return p
	}
	return def
}

func (t *TG1682G) pagePath(page string) string {
	tmpl := t.path(EndpointPage, tg1682gPageTmpl)
	return fasttemplate.ExecuteString(tmpl, "{", "}", map[string]interface{}{
		"page": page,
	})
}

func (t *TG1682G) absURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return t.baseURL.String() + path
}
