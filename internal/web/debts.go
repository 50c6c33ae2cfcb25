package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/colonel51/KardesLastik/internal/api"
	"github.com/colonel51/KardesLastik/internal/ledger"
)

// DebtRow is one table row of the ledger page.
type DebtRow struct {
	api.Debt
	AmountDisplay string
	Created       string
	Due           string
}

// DebtsViewModel holds the ledger page state: the server-filtered,
// search-matched rows plus the unpaid total over exactly that set.
type DebtsViewModel struct {
	Rows        []DebtRow
	Query       string
	Filter      string
	TotalUnpaid string
	Error       string
}

// Debts renders the debt ledger. The paid/unpaid filter (durum) is applied
// by the server; the free-text search (q) runs in memory over the fetched
// list, strictly in that order.
func (h *Handlers) Debts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	filter := r.URL.Query().Get("durum")

	var isPaid *bool
	switch filter {
	case "paid":
		isPaid = boolPtr(true)
	case "unpaid":
		isPaid = boolPtr(false)
	default:
		filter = ""
	}

	vm := DebtsViewModel{Query: query, Filter: filter, TotalUnpaid: "0.00"}

	debts, err := h.adminClient(r).ListDebts(r.Context(), isPaid)
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("debts load failed", "error", err)
		vm.Error = "Borçlar yüklenirken bir hata oluştu."
		h.renderAdmin(w, r, "debts.html", vm)
		return
	}

	matched := ledger.Search(debts, query)
	vm.TotalUnpaid = fmt.Sprintf("%.2f", ledger.TotalUnpaid(matched))
	for _, d := range matched {
		vm.Rows = append(vm.Rows, DebtRow{
			Debt:          d,
			AmountDisplay: fmt.Sprintf("%.2f", ledger.Amount(d.Amount)),
			Created:       displayTime(d.CreatedAt),
			Due:           displayTime(d.DueDate),
		})
	}

	h.renderAdmin(w, r, "debts.html", vm)
}

// DebtFormValues carries the raw form fields so a rejected submission can be
// re-rendered without losing input.
type DebtFormValues struct {
	CustomerID  string
	DebtType    string
	Amount      string
	Description string
	DueDate     string
}

// DebtFormViewModel holds the create/edit form state.
type DebtFormViewModel struct {
	IsEdit    bool
	DebtID    int64
	Customers []api.Customer
	Values    DebtFormValues
	Error     string
}

// NewDebtForm renders the create form with the active-customer pick list.
func (h *Handlers) NewDebtForm(w http.ResponseWriter, r *http.Request) {
	customers, err := h.adminClient(r).ListCustomers(r.Context(), boolPtr(true))
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("customers load failed", "error", err)
	}
	h.renderAdmin(w, r, "debt_form.html", DebtFormViewModel{
		Customers: customers,
		Values:    DebtFormValues{DebtType: string(api.DebtTypeDebt)},
	})
}

// EditDebtForm renders the edit form pre-filled from the record.
func (h *Handlers) EditDebtForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	client := h.adminClient(r)
	debt, err := client.GetDebt(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "Borç kaydı yüklenemedi.", "/yonetim/debts")
		return
	}
	customers, err := client.ListCustomers(r.Context(), boolPtr(true))
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("customers load failed", "error", err)
	}

	h.renderAdmin(w, r, "debt_form.html", DebtFormViewModel{
		IsEdit:    true,
		DebtID:    debt.ID,
		Customers: customers,
		Values: DebtFormValues{
			CustomerID:  strconv.FormatInt(debt.CustomerID, 10),
			DebtType:    string(debt.DebtType),
			Amount:      debt.Amount,
			Description: debt.Description,
			DueDate:     debt.DueDate,
		},
	})
}

// debtInput coerces the form fields into the API payload. Customer and
// amount mirror the numeric coercion of the browser client; anything that
// does not parse is reported back on the form.
func debtInput(r *http.Request) (api.DebtInput, DebtFormValues, string) {
	values := DebtFormValues{
		CustomerID:  r.FormValue("customer_id"),
		DebtType:    r.FormValue("debt_type"),
		Amount:      strings.TrimSpace(r.FormValue("amount")),
		Description: strings.TrimSpace(r.FormValue("description")),
		DueDate:     r.FormValue("due_date"),
	}

	customerID, err := strconv.ParseInt(values.CustomerID, 10, 64)
	if err != nil {
		return api.DebtInput{}, values, "Lütfen bir müşteri seçin."
	}
	amount, err := strconv.ParseFloat(values.Amount, 64)
	if err != nil {
		return api.DebtInput{}, values, "Geçerli bir tutar girin."
	}
	debtType := api.DebtType(values.DebtType)
	if debtType != api.DebtTypeDebt && debtType != api.DebtTypeCredit {
		debtType = api.DebtTypeDebt
	}

	return api.DebtInput{
		CustomerID:  customerID,
		DebtType:    debtType,
		Amount:      amount,
		Description: values.Description,
		DueDate:     values.DueDate,
	}, values, ""
}

// CreateDebt handles the create form submission.
func (h *Handlers) CreateDebt(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	client := h.adminClient(r)
	input, values, formErr := debtInput(r)
	if formErr != "" {
		h.rerenderDebtForm(w, r, DebtFormViewModel{Values: values, Error: formErr})
		return
	}

	if _, err := client.CreateDebt(r.Context(), input); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("debt create failed", "error", err)
		h.rerenderDebtForm(w, r, DebtFormViewModel{Values: values, Error: errorMessage(err, "İşlem başarısız oldu.")})
		return
	}

	h.setFlash(w, flashSuccess, "Borç kaydı eklendi.")
	http.Redirect(w, r, "/yonetim/debts", http.StatusSeeOther)
}

// UpdateDebt handles the edit form submission (full replace).
func (h *Handlers) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	client := h.adminClient(r)
	input, values, formErr := debtInput(r)
	if formErr != "" {
		h.rerenderDebtForm(w, r, DebtFormViewModel{IsEdit: true, DebtID: id, Values: values, Error: formErr})
		return
	}

	if _, err := client.UpdateDebt(r.Context(), id, input); err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("debt update failed", "id", id, "error", err)
		h.rerenderDebtForm(w, r, DebtFormViewModel{IsEdit: true, DebtID: id, Values: values, Error: errorMessage(err, "İşlem başarısız oldu.")})
		return
	}

	h.setFlash(w, flashSuccess, "Borç kaydı güncellendi.")
	http.Redirect(w, r, "/yonetim/debts", http.StatusSeeOther)
}

// rerenderDebtForm re-fetches the customer pick list and shows the form
// again with the entered values. The pick list fetch is best effort here;
// the primary error is the one being displayed.
func (h *Handlers) rerenderDebtForm(w http.ResponseWriter, r *http.Request, vm DebtFormViewModel) {
	customers, err := h.adminClient(r).ListCustomers(r.Context(), boolPtr(true))
	if err != nil {
		h.log.Debugw("customers reload failed", "error", err)
	}
	vm.Customers = customers
	h.renderAdmin(w, r, "debt_form.html", vm)
}

// MarkDebtPaid flips a record to paid and refreshes the list.
func (h *Handlers) MarkDebtPaid(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if _, err := h.adminClient(r).MarkDebtPaid(r.Context(), id); err != nil {
		h.fail(w, r, err, "İşlem başarısız oldu.", "/yonetim/debts")
		return
	}
	h.setFlash(w, flashSuccess, "Borç ödendi olarak işaretlendi.")
	http.Redirect(w, r, "/yonetim/debts", http.StatusSeeOther)
}

// MarkDebtUnpaid flips a record back to unpaid and refreshes the list.
func (h *Handlers) MarkDebtUnpaid(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if _, err := h.adminClient(r).MarkDebtUnpaid(r.Context(), id); err != nil {
		h.fail(w, r, err, "İşlem başarısız oldu.", "/yonetim/debts")
		return
	}
	h.setFlash(w, flashSuccess, "Borç ödenmedi olarak işaretlendi.")
	http.Redirect(w, r, "/yonetim/debts", http.StatusSeeOther)
}

// DeleteDebtConfirm renders the confirmation page; it issues no API call.
func (h *Handlers) DeleteDebtConfirm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	h.renderAdmin(w, r, "confirm.html", ConfirmViewModel{
		Title:     "Silmek istediğinize emin misiniz?",
		Question:  "Bu borç kaydını silmek istediğinize emin misiniz? Bu işlem geri alınamaz!",
		Action:    fmt.Sprintf("/yonetim/debts/%d/delete", id),
		CancelURL: "/yonetim/debts",
	})
}

// DeleteDebt performs the confirmed deletion.
func (h *Handlers) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := h.adminClient(r).DeleteDebt(r.Context(), id); err != nil {
		h.fail(w, r, err, "Silme işlemi başarısız oldu.", "/yonetim/debts")
		return
	}
	h.setFlash(w, flashSuccess, "Borç kaydı başarıyla silindi.")
	http.Redirect(w, r, "/yonetim/debts", http.StatusSeeOther)
}

// CustomerFormViewModel holds the inline new-customer form state. Opening it
// from the debt form leaves the ledger flow; there is no automatic return.
type CustomerFormViewModel struct {
	Values CustomerFormValues
	Error  string
}

// CustomerFormValues carries the raw customer form fields.
type CustomerFormValues struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Address   string
}

// NewCustomerForm renders the customer create form.
func (h *Handlers) NewCustomerForm(w http.ResponseWriter, r *http.Request) {
	h.renderAdmin(w, r, "customer_form.html", CustomerFormViewModel{})
}

// CreateCustomer handles the customer form submission.
func (h *Handlers) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	values := CustomerFormValues{
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
		Phone:     strings.TrimSpace(r.FormValue("phone")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Address:   strings.TrimSpace(r.FormValue("address")),
	}
	if values.FirstName == "" || values.LastName == "" || values.Phone == "" {
		h.renderAdmin(w, r, "customer_form.html", CustomerFormViewModel{Values: values, Error: "Ad, soyad ve telefon zorunludur."})
		return
	}

	_, err := h.adminClient(r).CreateCustomer(r.Context(), api.NewCustomer{
		FirstName: values.FirstName,
		LastName:  values.LastName,
		Phone:     values.Phone,
		Email:     values.Email,
		Address:   values.Address,
	})
	if err != nil {
		if h.unauthorized(w, r, err) {
			return
		}
		h.log.Errorw("customer create failed", "error", err)
		h.renderAdmin(w, r, "customer_form.html", CustomerFormViewModel{Values: values, Error: errorMessage(err, "Müşteri eklenemedi.")})
		return
	}

	h.setFlash(w, flashSuccess, "Müşteri başarıyla eklendi.")
	http.Redirect(w, r, "/yonetim/debts", http.StatusSeeOther)
}
