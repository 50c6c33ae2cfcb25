package web

import (
	"fmt"
	"net/http"

	"github.com/colonel51/KardesLastik/internal/api"
)

// InboxItem is one row of the contact inbox.
type InboxItem struct {
	api.ContactMessage
	Received string
}

// InboxViewModel holds the inbox state. The counts describe the currently
// fetched list, matching the filter buttons of the page.
type InboxViewModel struct {
	Messages []InboxItem
	Filter   string
	Total    int
	Unread   int
	Read     int
	Error    string
}

// ContactMessages renders the admin inbox with its three-way read filter.
func (h *Handlers) ContactMessages(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filtre")

	var isRead *bool
	switch filter {
	case "okunmus":
		isRead = boolPtr(true)
	case "okunmamis":
		isRead = boolPtr(false)
	default:
		filter = ""
	}

	vm := InboxViewModel{Filter: filter}

	messages, err := h.adminClient(r).ListContactMessages(r.Context(), isRead)
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("contact messages load failed", "error", err)
		vm.Error = errorMessage(err, "Mesajlar yüklenirken bir hata oluştu.")
		h.renderAdmin(w, r, "contact_messages.html", vm)
		return
	}

	vm.Total = len(messages)
	for _, m := range messages {
		if !m.IsRead {
			vm.Unread++
		}
		vm.Messages = append(vm.Messages, InboxItem{ContactMessage: m, Received: displayTime(m.CreatedAt)})
	}
	vm.Read = vm.Total - vm.Unread

	h.renderAdmin(w, r, "contact_messages.html", vm)
}

// MessageViewModel holds the detail view of one message.
type MessageViewModel struct {
	Message  api.ContactMessage
	Received string
}

// ContactMessage renders a message's detail view. Viewing is what marks a
// message read: the mark-read call fires only while the record still reports
// unread, and a failure is logged but never blocks viewing.
func (h *Handlers) ContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	client := h.adminClient(r)
	msg, err := client.GetContactMessage(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Mesaj yüklenemedi.", "/yonetim/contact-messages")
		return
	}

	if !msg.IsRead {
		if updated, err := client.MarkContactMessageRead(r.Context(), msg.ID); err != nil {
			h.log.Errorw("mark as read failed", "id", msg.ID, "error", err)
		} else {
			msg = updated
		}
	}

	h.renderAdmin(w, r, "contact_message.html", MessageViewModel{
		Message:  *msg,
		Received: displayTime(msg.CreatedAt),
	})
}

// DeleteContactMessageConfirm renders the confirmation page; no API call.
func (h *Handlers) DeleteContactMessageConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.renderAdmin(w, r, "confirm.html", ConfirmViewModel{
		Title:     "Silmek istediğinize emin misiniz?",
		Question:  "Bu mesajı silmek istediğinize emin misiniz? Bu işlem geri alınamaz!",
		Action:    fmt.Sprintf("/yonetim/contact-messages/%d/delete", id),
		CancelURL: "/yonetim/contact-messages",
	})
}

// DeleteContactMessage performs the confirmed deletion.
func (h *Handlers) DeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := h.adminClient(r).DeleteContactMessage(r.Context(), id); err != nil {
		h.fail(w, r, err, "Silme işlemi başarısız oldu.", "/yonetim/contact-messages")
		return
	}
	h.setFlash(w, flashSuccess, "Mesaj başarıyla silindi.")
	http.Redirect(w, r, "/yonetim/contact-messages", http.StatusSeeOther)
}
