package web

import (
	"fmt"
	"net/http"

	"github.com/colonel51/KardesLastik/internal/ledger"
)

// DashboardViewModel holds the back-office statistics. Everything is
// computed here from plain list fetches; the API has no stats endpoint.
type DashboardViewModel struct {
	TotalCustomers  int
	ActiveCustomers int
	TotalDebts      int
	UnpaidDebts     int
	UnreadMessages  int
	TotalDebtAmount string
	TotalPaidAmount string
	Error           string
}

// Dashboard renders the admin landing page.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	client := h.adminClient(r)
	vm := DashboardViewModel{TotalDebtAmount: "0.00", TotalPaidAmount: "0.00"}

	customers, err := client.ListCustomers(r.Context(), nil)
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("dashboard customers load failed", "error", err)
		vm.Error = "İstatistikler yüklenirken bir hata oluştu."
		h.renderAdmin(w, r, "dashboard.html", vm)
		return
	}

	debts, err := client.ListDebts(r.Context(), nil)
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("dashboard debts load failed", "error", err)
		vm.Error = "İstatistikler yüklenirken bir hata oluştu."
		h.renderAdmin(w, r, "dashboard.html", vm)
		return
	}

	vm.TotalCustomers = len(customers)
	for _, c := range customers {
		if c.IsActive {
			vm.ActiveCustomers++
		}
	}

	vm.TotalDebts = len(debts)
	var paid float64
	for _, d := range debts {
		if !d.IsPaid {
			vm.UnpaidDebts++
		} else {
			paid += ledger.Amount(d.Amount)
		}
	}
	vm.TotalDebtAmount = fmt.Sprintf("%.2f", ledger.TotalUnpaid(debts))
	vm.TotalPaidAmount = fmt.Sprintf("%.2f", paid)

	// The unread badge is best effort; the inbox itself is one click away.
	if messages, err := client.ListContactMessages(r.Context(), boolPtr(false)); err == nil {
		vm.UnreadMessages = len(messages)
	} else {
		h.log.Debugw("unread count load failed", "error", err)
	}

	h.renderAdmin(w, r, "dashboard.html", vm)
}

func boolPtr(b bool) *bool { return &b }
