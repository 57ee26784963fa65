package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// StatusResponse describes the managed device
type StatusResponse struct {
	Model         string `json:"model"`
	Address       string `json:"address"`
	Authenticated bool   `json:"authenticated"`
}

// ActionResponse reports the outcome of a modem action
type ActionResponse struct {
	Action string `json:"action"`
	Result string `json:"result"`
}

// PageResponse carries a fetched admin page
type PageResponse struct {
	Page string `json:"page"`
	Body string `json:"body"`
}

// WifiChannelRequest selects the 2.4 GHz channel (0 = auto)
type WifiChannelRequest struct {
	Channel int `json:"channel"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	authenticated := s.dev.IsAuthenticated()
	s.mu.Unlock()

	RespondOK(w, StatusResponse{
		Model:         s.model,
		Address:       s.addr,
		Authenticated: authenticated,
	})
}

func (s *Server) handleReboot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.dev.Reboot()
	s.mu.Unlock()

	if err != nil {
		RespondBadGateway(w, fmt.Sprintf("Failed to reboot modem: %v", err))
		return
	}

	RespondOK(w, ActionResponse{Action: "reboot", Result: "ok"})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")

	s.mu.Lock()
	body, err := s.dev.GetPage(page)
	s.mu.Unlock()

	if err != nil {
		RespondBadGateway(w, fmt.Sprintf("Failed to fetch page %s: %v", page, err))
		return
	}

	RespondOK(w, PageResponse{Page: page, Body: body})
}

func (s *Server) handleWifiReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	err := s.dev.ResetWifi()
	s.mu.Unlock()

	if err != nil {
		RespondBadGateway(w, fmt.Sprintf("Failed to reset Wi-Fi: %v", err))
		return
	}

	RespondOK(w, ActionResponse{Action: "wifi_reset", Result: "ok"})
}

func (s *Server) handleWifiChannel(w http.ResponseWriter, r *http.Request) {
	var req WifiChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondValidationError(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	s.mu.Lock()
	err := s.dev.MigrateChannel(req.Channel)
	s.mu.Unlock()

	if err != nil {
		RespondBadGateway(w, fmt.Sprintf("Failed to change channel: %v", err))
		return
	}

	RespondOK(w, ActionResponse{Action: "wifi_channel", Result: "ok"})
}
