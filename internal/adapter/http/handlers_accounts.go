package adapthttp

import (
	"errors"
	"net/http"

	"microblog/internal/app"
	"microblog/internal/domain"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	// Visiting the login page ends any existing session.
	w.Header().Set("Set-Cookie", s.accounts.ClearSession().Cookie())
	s.render(w, "login.html", map[string]any{
		"Error": r.URL.Query().Get("error") != "",
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.render(w, "register.html", map[string]any{
		"Error": r.URL.Query().Get("error") != "",
	})
}

func (s *Server) handleAccountNew(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	_, err := s.accounts.CreateAccount(r.Context(),
		r.PostFormValue("email"),
		r.PostFormValue("password"),
		r.PostFormValue("display_name"),
	)
	if errors.Is(err, domain.ErrDuplicateEmail) {
		http.Redirect(w, r, "/register?error=taken", http.StatusFound)
		return
	}
	if err != nil {
		s.log.Error("create account", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleSessionNew(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	token, err := s.accounts.CreateSession(r.Context(),
		r.PostFormValue("email"),
		r.PostFormValue("password"),
	)
	if errors.Is(err, app.ErrInvalidCredentials) {
		http.Redirect(w, r, "/login?error=invalid", http.StatusFound)
		return
	}
	if err != nil {
		s.log.Error("create session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sessionsIssuedTotal.Inc()
	w.Header().Set("Set-Cookie", token.Cookie())
	http.Redirect(w, r, "/", http.StatusFound)
}
