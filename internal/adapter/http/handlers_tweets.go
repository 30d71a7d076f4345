package adapthttp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"microblog/internal/app"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	home, err := s.tweets.ListTweets(r.Context())
	if err != nil {
		s.log.Error("list tweets", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, "home.html", home)
}

func (s *Server) handleTweetNew(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if err := s.tweets.CreateTweet(r.Context(), user, r.PostFormValue("message")); err != nil {
		s.log.Error("create tweet", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	tweetsCreatedTotal.Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleTweetDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	err = s.tweets.DeleteTweet(r.Context(), user, id)
	if errors.Is(err, app.ErrForbidden) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	if err != nil {
		s.log.Error("delete tweet", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
