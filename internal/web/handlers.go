package web

import (
	"net/http"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/web/templates"
)

// handleRoot identifies the service. Browsers get a small landing page.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if wantsHTML(r) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := templates.Home(s.cfg.App.Name, s.cfg.App.Version).Render(r.Context(), w); err != nil {
			s.fail(w, r, err)
		}
		return
	}
	writeJSON(w, map[string]string{
		"message": s.cfg.App.Name,
		"version": s.cfg.App.Version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var reg core.Registration
	if err := decodeJSON(w, r, &reg); err != nil {
		s.fail(w, r, err)
		return
	}
	tok, err := s.service.Register(r.Context(), reg)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, tok)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds core.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		s.fail(w, r, err)
		return
	}
	tok, err := s.service.Login(r.Context(), creds)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, tok)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.service.CurrentUser(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, user)
}
