package web

import (
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/colonel51/KardesLastik/internal/api"
)

// page wraps every view model with what the layouts need: the one-shot
// flash and, on admin pages, the logged-in user.
type page struct {
	Flash *Flash
	User  *api.User
	Data  any
}

// ConfirmViewModel drives the shared confirmation page. Cancel is a plain
// link back, so declining issues no mutation.
type ConfirmViewModel struct {
	Title     string
	Question  string
	Action    string
	CancelURL string
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, viewName string, data any) {
	h.renderBase(w, r, "base.html", viewName, data)
}

func (h *Handlers) renderAdmin(w http.ResponseWriter, r *http.Request, viewName string, data any) {
	h.renderBase(w, r, "admin.html", viewName, data)
}

func (h *Handlers) renderBase(w http.ResponseWriter, r *http.Request, base, viewName string, data any) {
	tmpl, err := template.ParseFiles(filepath.Join(h.templateDir, base), filepath.Join(h.templateDir, viewName))
	if err != nil {
		h.log.Errorw("template parse failed", "view", viewName, "error", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	p := page{Flash: h.popFlash(w, r), Data: data}
	if sess := SessionFromContext(r); sess != nil {
		p.User = &sess.User
	}
	if err := tmpl.ExecuteTemplate(w, base, p); err != nil {
		h.log.Errorw("template execution failed", "view", viewName, "error", err)
	}
}

// displayTime renders an API timestamp for the tables; unparseable input is
// shown as-is.
func displayTime(iso string) string {
	if iso == "" {
		return "-"
	}
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t.Format("02.01.2006 15:04")
	}
	if t, err := time.Parse("2006-01-02", iso); err == nil {
		return t.Format("02.01.2006")
	}
	return iso
}
