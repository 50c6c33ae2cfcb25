// Package web holds the HTML views of the site: the public marketing pages
// and the admin back-office under /yonetim. Handlers call the remote API
// through the typed client and never keep business state locally.
package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/colonel51/KardesLastik/internal/api"
	"github.com/colonel51/KardesLastik/internal/session"
)

// Context key type to avoid collisions.
type contextKey string

const (
	sessionContextKey contextKey = "session"
	// SessionCookieName is the name of the admin session cookie.
	SessionCookieName = "kl_session"
	// SessionDuration is how long admin sessions last locally. The remote
	// API can cut a session short at any time by answering 401.
	SessionDuration = 7 * 24 * time.Hour
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	store        session.Store
	transport    *api.Transport
	public       *api.Public
	templateDir  string
	secureCookie bool
	log          *zap.SugaredLogger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store session.Store, transport *api.Transport, templateDir string, secureCookie bool, log *zap.SugaredLogger) *Handlers {
	return &Handlers{
		store:        store,
		transport:    transport,
		public:       api.NewPublic(transport),
		templateDir:  templateDir,
		secureCookie: secureCookie,
		log:          log,
	}
}

// SessionFromContext retrieves the authenticated session from request context.
func SessionFromContext(r *http.Request) *session.Session {
	if s, ok := r.Context().Value(sessionContextKey).(*session.Session); ok {
		return s
	}
	return nil
}

// storeTokens adapts the persisted session to the api.TokenSource contract:
// a rejected token deletes the stored session.
type storeTokens struct {
	store session.Store
	sess  *session.Session
}

func (t storeTokens) AccessToken() string { return t.sess.AccessToken }
func (t storeTokens) Invalidate()         { _ = t.store.Delete(t.sess.Token) }

// adminClient builds the authenticated API client for this request's session.
func (h *Handlers) adminClient(r *http.Request) *api.Admin {
	return api.NewAdmin(h.transport, storeTokens{store: h.store, sess: SessionFromContext(r)})
}

func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// fail surfaces a failed mutation. A 401 already tore the stored session
// down inside the client, so it ends on the login page; anything else
// flashes the server's message (or the fallback) and redirects back.
func (h *Handlers) fail(w http.ResponseWriter, r *http.Request, err error, fallback, backTo string) {
	if errors.Is(err, api.ErrUnauthorized) {
		h.clearSessionCookie(w)
		http.Redirect(w, r, "/yonetim/login", http.StatusFound)
		return
	}
	h.log.Errorw("api call failed", "path", r.URL.Path, "error", err)
	h.setFlash(w, flashError, errorMessage(err, fallback))
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}

// unauthorized handles the 401 case for read-only views; it reports whether
// the request was redirected.
func (h *Handlers) unauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if errors.Is(err, api.ErrUnauthorized) {
		h.clearSessionCookie(w)
		http.Redirect(w, r, "/yonetim/login", http.StatusFound)
		return true
	}
	return false
}

// errorMessage prefers the server's own message payload over the generic
// fallback text.
func errorMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
