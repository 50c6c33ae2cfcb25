package web

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookieName = "kl_flash"

const (
	flashSuccess = "success"
	flashError   = "error"
	flashWarning = "warning"
)

// Flash is a one-shot notification consumed by the next rendered page,
// standing in for the alert dialogs of the browser client.
type Flash struct {
	Kind    string
	Message string
}

// IsSuccess reports whether the flash is a success notification; templates
// use it to pick the alert style.
func (f *Flash) IsSuccess() bool { return f.Kind == flashSuccess }

// IsWarning reports whether the flash is a warning.
func (f *Flash) IsWarning() bool { return f.Kind == flashWarning }

func (h *Handlers) setFlash(w http.ResponseWriter, kind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(kind + "|" + message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads and clears the flash cookie.
func (h *Handlers) popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(raw, "|")
	if !ok || message == "" {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}
