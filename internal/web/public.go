package web

import (
	"net/http"
	"strings"

	"github.com/colonel51/KardesLastik/internal/api"
)

// ServiceItem is one entry of the service catalogue on the public pages.
type ServiceItem struct {
	Icon        string
	Title       string
	Description string
}

var services = []ServiceItem{
	{"🛞", "Lastik Satışı", "Tüm marka ve ebatlarda lastik satışı"},
	{"🔧", "Lastik Montajı", "Profesyonel lastik montaj ve sökme hizmeti"},
	{"⚖️", "Balans Ayarı", "Hassas balans ayarı ile güvenli sürüş"},
	{"🎯", "Rot Ayarı", "Rot balans ayarı ve ön düzen kontrolü"},
	{"🏗️", "Demir Doğrama", "Kapı, pencere ve korkuluk imalatı"},
	{"🏠", "Çatı İşlemleri", "Çatı kaplama ve onarım işleri"},
	{"⚙️", "Demir İşleri", "Her türlü demir işçiliği"},
	{"🚜", "Ziraat Aletleri", "Ziraat aletleri satışı ve tamiri"},
}

// HomeViewModel holds data for the landing page.
type HomeViewModel struct {
	Services []ServiceItem
}

// Home renders the landing page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home.html", HomeViewModel{Services: services[:4]})
}

// About renders the about page.
func (h *Handlers) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "about.html", nil)
}

// Services renders the full service catalogue.
func (h *Handlers) Services(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "services.html", HomeViewModel{Services: services})
}

// GalleryViewModel holds data for the public gallery page.
type GalleryViewModel struct {
	Images []GalleryItem
	Error  string
}

// PublicGallery renders the visitor gallery. It uses the public client, so
// browsing works the same whether or not an admin session exists.
func (h *Handlers) PublicGallery(w http.ResponseWriter, r *http.Request) {
	active := true
	images, err := h.public.ListGalleryImages(r.Context(), &active)
	vm := GalleryViewModel{}
	if err != nil {
		h.log.Errorw("public gallery load failed", "error", err)
		vm.Error = "Galeri yüklenirken bir hata oluştu."
	}
	for _, img := range images {
		vm.Images = append(vm.Images, GalleryItem{GalleryImage: img, Created: displayTime(img.CreatedAt)})
	}
	h.render(w, r, "gallery.html", vm)
}

// ContactViewModel holds the visitor contact form state.
type ContactViewModel struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Error   string
}

// ContactForm renders the contact page with an empty form.
func (h *Handlers) ContactForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "contact.html", ContactViewModel{})
}

// ContactSubmit handles the visitor contact form. The message goes through
// the public client; no authentication is involved.
func (h *Handlers) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, "contact.html", ContactViewModel{Error: "Geçersiz form gönderimi."})
		return
	}

	vm := ContactViewModel{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   strings.TrimSpace(r.FormValue("email")),
		Phone:   strings.TrimSpace(r.FormValue("phone")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}
	if vm.Name == "" || vm.Email == "" || vm.Message == "" {
		vm.Error = "Ad, e-posta ve mesaj alanları zorunludur."
		h.render(w, r, "contact.html", vm)
		return
	}

	_, err := h.public.CreateContactMessage(r.Context(), api.NewContactMessage{
		Name:    vm.Name,
		Email:   vm.Email,
		Phone:   vm.Phone,
		Message: vm.Message,
	})
	if err != nil {
		h.log.Errorw("contact message submit failed", "error", err)
		vm.Error = errorMessage(err, "Mesaj gönderilirken bir hata oluştu. Lütfen daha sonra tekrar deneyin.")
		h.render(w, r, "contact.html", vm)
		return
	}

	h.setFlash(w, flashSuccess, "Mesajınız alındı! En kısa sürede size dönüş yapacağız.")
	http.Redirect(w, r, "/iletisim", http.StatusSeeOther)
}

// NotFound renders the 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.render(w, r, "notfound.html", nil)
}
