package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// stubModem records calls and returns canned results.
type stubModem struct {
	authenticated bool
	rebootErr     error
	rebootCalls   int
	pageBody      string
	lastPage      string
	lastChannel   int
}

func (m *stubModem) Login(username, password string) error { return nil }
func (m *stubModem) IsAuthenticated() bool                 { return m.authenticated }
func (m *stubModem) Reboot() error {
	m.rebootCalls++
	return m.rebootErr
}
func (m *stubModem) GetPage(page string) (string, error) {
	m.lastPage = page
	return m.pageBody, nil
}
func (m *stubModem) ResetWifi() error { return nil }
func (m *stubModem) MigrateChannel(channel int) error {
	m.lastChannel = channel
	return nil
}
func (m *stubModem) Close() {}

func newTestServer(dev *stubModem) *Server {
	return NewServer("127.0.0.1:0", dev, "TG1682G", "10.0.0.1")
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	var wrapper struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &wrapper); err != nil {
		t.Fatalf("Failed to decode response wrapper: %v", err)
	}
	if err := json.Unmarshal(wrapper.Data, out); err != nil {
		t.Fatalf("Failed to decode response data: %v", err)
	}
}

func TestHandleStatus(t *testing.T) {
	dev := &stubModem{authenticated: true}
	srv := newTestServer(dev)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Status code = %d, want 200", rec.Code)
	}

	var status StatusResponse
	decodeData(t, rec, &status)

	if status.Model != "TG1682G" || status.Address != "10.0.0.1" || !status.Authenticated {
		t.Errorf("Unexpected status: %+v", status)
	}
}

func TestHandleReboot(t *testing.T) {
	dev := &stubModem{}
	srv := newTestServer(dev)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/reboot", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Status code = %d, want 200", rec.Code)
	}

	if dev.rebootCalls != 1 {
		t.Errorf("Reboot calls = %d, want 1", dev.rebootCalls)
	}
}

func TestHandleReboot_DeviceFailure(t *testing.T) {
	dev := &stubModem{rebootErr: errors.New("connection refused")}
	srv := newTestServer(dev)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("POST", "/api/v1/reboot", nil))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("Status code = %d, want 502", rec.Code)
	}
}

func TestHandlePage(t *testing.T) {
	dev := &stubModem{pageBody: "<html>ok</html>"}
	srv := newTestServer(dev)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/page/at_a_glance.jst", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Status code = %d, want 200", rec.Code)
	}

	var page PageResponse
	decodeData(t, rec, &page)

	if page.Page != "at_a_glance.jst" || page.Body != "<html>ok</html>" {
		t.Errorf("Unexpected page response: %+v", page)
	}
}

func TestHandleWifiChannel(t *testing.T) {
	dev := &stubModem{}
	srv := newTestServer(dev)

	body, _ := json.Marshal(WifiChannelRequest{Channel: 6})
	req := httptest.NewRequest("POST", "/api/v1/wifi/channel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status code = %d, want 200", rec.Code)
	}

	if dev.lastChannel != 6 {
		t.Errorf("Channel = %d, want 6", dev.lastChannel)
	}
}

func TestContentTypeEnforced(t *testing.T) {
	dev := &stubModem{}
	srv := newTestServer(dev)

	req := httptest.NewRequest("POST", "/api/v1/wifi/channel", bytes.NewReader([]byte(`{"channel":6}`)))
	req.Header.Set("Content-Type", "text/plain")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status code = %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&stubModem{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("Health = %d %q, want 200 OK", rec.Code, rec.Body.String())
	}
}
