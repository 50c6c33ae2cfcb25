package web

import (
	"context"
	"net/http"
)

// RequireSession gates the admin routes: requests without a valid stored
// session are redirected to the admin login page before any view renders.
func (h *Handlers) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/yonetim/login", http.StatusFound)
			return
		}

		sess, err := h.store.Get(cookie.Value)
		if err != nil {
			// Unknown or expired session, clear the cookie
			h.clearSessionCookie(w)
			http.Redirect(w, r, "/yonetim/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
