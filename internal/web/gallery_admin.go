package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/colonel51/KardesLastik/internal/api"
)

const maxUploadBytes = 10 << 20

// GalleryItem is one card of the gallery grids.
type GalleryItem struct {
	api.GalleryImage
	Created string
}

// AdminGalleryViewModel holds the admin gallery grid state.
type AdminGalleryViewModel struct {
	Images []GalleryItem
	Error  string
}

// AdminGallery renders the management grid. The listing itself goes through
// the public client, unfiltered, so inactive images show up for editing.
func (h *Handlers) AdminGallery(w http.ResponseWriter, r *http.Request) {
	vm := AdminGalleryViewModel{}
	images, err := h.public.ListGalleryImages(r.Context(), nil)
	if err != nil {
		h.log.Errorw("gallery load failed", "error", err)
		vm.Error = errorMessage(err, "Galeri yüklenirken bir hata oluştu.")
	}
	for _, img := range images {
		vm.Images = append(vm.Images, GalleryItem{GalleryImage: img, Created: displayTime(img.CreatedAt)})
	}
	h.renderAdmin(w, r, "gallery_admin.html", vm)
}

// GalleryFormValues carries the raw gallery form fields.
type GalleryFormValues struct {
	Title       string
	Description string
	Order       string
	IsActive    bool
}

// GalleryFormViewModel holds the create/edit form state. On edit the stored
// image URL is shown as a preview; the binary itself is not replaceable,
// re-uploading means delete and create.
type GalleryFormViewModel struct {
	IsEdit   bool
	ImageID  int64
	ImageURL string
	Values   GalleryFormValues
	Error    string
}

// NewGalleryImageForm renders the upload form.
func (h *Handlers) NewGalleryImageForm(w http.ResponseWriter, r *http.Request) {
	h.renderAdmin(w, r, "gallery_form.html", GalleryFormViewModel{
		Values: GalleryFormValues{IsActive: true, Order: "0"},
	})
}

// CreateGalleryImage handles the upload. A missing file or title is rejected
// here with an error on the form; no upstream call is made in that case.
func (h *Handlers) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.renderAdmin(w, r, "gallery_form.html", GalleryFormViewModel{Error: "Geçersiz form gönderimi."})
		return
	}

	values := GalleryFormValues{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Order:       r.FormValue("order"),
		IsActive:    r.FormValue("is_active") != "",
	}
	if values.Title == "" {
		h.renderAdmin(w, r, "gallery_form.html", GalleryFormViewModel{Values: values, Error: "Başlık zorunludur."})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.renderAdmin(w, r, "gallery_form.html", GalleryFormViewModel{Values: values, Error: "Lütfen bir resim seçin."})
		return
	}
	defer file.Close()

	// parseInt(order) || 0, as the browser client did
	order, _ := strconv.Atoi(values.Order)

	_, err = h.adminClient(r).CreateGalleryImage(r.Context(), api.NewGalleryImage{
		Title:       values.Title,
		Description: values.Description,
		FileName:    header.Filename,
		File:        file,
		IsActive:    &values.IsActive,
		Order:       &order,
	})
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("gallery create failed", "error", err)
		h.renderAdmin(w, r, "gallery_form.html", GalleryFormViewModel{Values: values, Error: errorMessage(err, "İşlem başarısız oldu.")})
		return
	}

	h.setFlash(w, flashSuccess, "Resim başarıyla eklendi.")
	http.Redirect(w, r, "/yonetim/gallery", http.StatusSeeOther)
}

// EditGalleryImageForm renders the metadata edit form.
func (h *Handlers) EditGalleryImageForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	img, err := h.public.GetGalleryImage(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Resim yüklenemedi.", "/yonetim/gallery")
		return
	}

	h.renderAdmin(w, r, "gallery_form.html", GalleryFormViewModel{
		IsEdit:   true,
		ImageID:  img.ID,
		ImageURL: img.ImageURL,
		Values: GalleryFormValues{
			Title:       img.Title,
			Description: img.Description,
			Order:       strconv.Itoa(img.Order),
			IsActive:    img.IsActive,
		},
	})
}

// UpdateGalleryImage patches the metadata of an existing image.
func (h *Handlers) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	values := GalleryFormValues{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Order:       r.FormValue("order"),
		IsActive:    r.FormValue("is_active") != "",
	}
	if values.Title == "" {
		h.renderAdmin(w, r, "gallery_form.html", GalleryFormViewModel{IsEdit: true, ImageID: id, Values: values, Error: "Başlık zorunludur."})
		return
	}
	order, _ := strconv.Atoi(values.Order)

	_, err = h.adminClient(r).UpdateGalleryImage(r.Context(), id, api.GalleryImageUpdate{
		Title:       &values.Title,
		Description: &values.Description,
		IsActive:    &values.IsActive,
		Order:       &order,
	})
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("gallery update failed", "id", id, "error", err)
		h.renderAdmin(w, r, "gallery_form.html", GalleryFormViewModel{IsEdit: true, ImageID: id, Values: values, Error: errorMessage(err, "İşlem başarısız oldu.")})
		return
	}

	h.setFlash(w, flashSuccess, "Resim başarıyla güncellendi.")
	http.Redirect(w, r, "/yonetim/gallery", http.StatusSeeOther)
}

// DeleteGalleryImageConfirm renders the confirmation page; no API call.
func (h *Handlers) DeleteGalleryImageConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.renderAdmin(w, r, "confirm.html", ConfirmViewModel{
		Title:     "Silmek istediğinize emin misiniz?",
		Question:  "Bu resmi silmek istediğinize emin misiniz? Bu işlem geri alınamaz!",
		Action:    fmt.Sprintf("/yonetim/gallery/%d/delete", id),
		CancelURL: "/yonetim/gallery",
	})
}

// DeleteGalleryImage performs the confirmed deletion.
func (h *Handlers) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := h.adminClient(r).DeleteGalleryImage(r.Context(), id); err != nil {
		h.fail(w, r, err, "Silme işlemi başarısız oldu.", "/yonetim/gallery")
		return
	}
	h.setFlash(w, flashSuccess, "Resim başarıyla silindi.")
	http.Redirect(w, r, "/yonetim/gallery", http.StatusSeeOther)
}
