package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires all routes. Admin paths live under /yonetim behind the
// session guard; the login pair sits outside it.
func NewRouter(h *Handlers, staticDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)

	// Public site
	r.Get("/", h.Home)
	r.Get("/hakkimizda", h.About)
	r.Get("/hizmetlerimiz", h.Services)
	r.Get("/galeri", h.PublicGallery)
	r.Get("/iletisim", h.ContactForm)
	r.Post("/iletisim", h.ContactSubmit)

	r.Get("/yonetim/login", h.LoginForm)
	r.Post("/yonetim/login", h.Login)

	r.Group(func(admin chi.Router) {
		admin.Use(h.RequireSession)

		admin.Get("/yonetim", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/yonetim/dashboard", http.StatusFound)
		})
		admin.Get("/yonetim/dashboard", h.Dashboard)
		admin.Post("/yonetim/cikis", h.Logout)

		admin.Get("/yonetim/debts", h.Debts)
		admin.Get("/yonetim/debts/new", h.NewDebtForm)
		admin.Post("/yonetim/debts", h.CreateDebt)
		admin.Get("/yonetim/debts/{id}/edit", h.EditDebtForm)
		admin.Post("/yonetim/debts/{id}", h.UpdateDebt)
		admin.Post("/yonetim/debts/{id}/mark-paid", h.MarkDebtPaid)
		admin.Post("/yonetim/debts/{id}/mark-unpaid", h.MarkDebtUnpaid)
		admin.Get("/yonetim/debts/{id}/delete", h.DeleteDebtConfirm)
		admin.Post("/yonetim/debts/{id}/delete", h.DeleteDebt)

		admin.Get("/yonetim/customers/new", h.NewCustomerForm)
		admin.Post("/yonetim/customers", h.CreateCustomer)

		admin.Get("/yonetim/contact-messages", h.ContactMessages)
		admin.Get("/yonetim/contact-messages/{id}", h.ContactMessage)
		admin.Get("/yonetim/contact-messages/{id}/delete", h.DeleteContactMessageConfirm)
		admin.Post("/yonetim/contact-messages/{id}/delete", h.DeleteContactMessage)

		admin.Get("/yonetim/gallery", h.AdminGallery)
		admin.Get("/yonetim/gallery/new", h.NewGalleryImageForm)
		admin.Post("/yonetim/gallery", h.CreateGalleryImage)
		admin.Get("/yonetim/gallery/{id}/edit", h.EditGalleryImageForm)
		admin.Post("/yonetim/gallery/{id}", h.UpdateGalleryImage)
		admin.Get("/yonetim/gallery/{id}/delete", h.DeleteGalleryImageConfirm)
		admin.Post("/yonetim/gallery/{id}/delete", h.DeleteGalleryImage)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	r.NotFound(h.NotFound)

	return r
}
