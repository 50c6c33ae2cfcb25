package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/colonel51/KardesLastik/internal/session"
)

// LoginViewModel holds data for the admin login page.
type LoginViewModel struct {
	Error    string
	Username string
}

// LoginForm renders the admin login page.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	// Already logged in, go straight to the dashboard
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if _, err := h.store.Get(cookie.Value); err == nil {
			http.Redirect(w, r, "/yonetim/dashboard", http.StatusFound)
			return
		}
	}
	h.render(w, r, "login.html", LoginViewModel{})
}

// Login exchanges the submitted credentials for a token pair at the remote
// API and persists the session locally.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, "login.html", LoginViewModel{Error: "Geçersiz form gönderimi."})
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if username == "" || password == "" {
		h.render(w, r, "login.html", LoginViewModel{Error: "Kullanıcı adı ve şifre zorunludur.", Username: username})
		return
	}

	res, err := h.public.Login(r.Context(), username, password)
	if err != nil {
		h.log.Infow("login rejected", "username", username, "error", err)
		h.render(w, r, "login.html", LoginViewModel{
			Error:    errorMessage(err, "Giriş başarısız. Bilgilerinizi kontrol edin."),
			Username: username,
		})
		return
	}

	sess := &session.Session{
		Token:        session.NewToken(),
		AccessToken:  res.Access,
		RefreshToken: res.Refresh,
		User:         res.User,
		ExpiresAt:    time.Now().Add(SessionDuration),
	}
	if err := h.store.Save(sess); err != nil {
		h.log.Errorw("session save failed", "error", err)
		h.render(w, r, "login.html", LoginViewModel{Error: "Bir hata oluştu. Lütfen tekrar deneyin.", Username: username})
		return
	}

	h.setSessionCookie(w, sess.Token)
	http.Redirect(w, r, "/yonetim/dashboard", http.StatusFound)
}

// Logout deletes the stored session and its cookie. There is no server-side
// invalidation call; the token pair is simply discarded.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := h.store.Delete(cookie.Value); err != nil {
			h.log.Errorw("session delete failed", "error", err)
		}
	}
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/yonetim/login", http.StatusFound)
}
