// Package ledger holds the in-memory stage of the debt list pipeline. The
// server is queried with the structural paid/unpaid filter first; these pure
// functions then run over the already-fetched records.
package ledger

import (
	"strconv"
	"strings"

	"github.com/colonel51/KardesLastik/internal/api"
)

// Search returns the debts whose customer name or description contains query
// as a case-insensitive substring. An empty query matches everything.
func Search(debts []api.Debt, query string) []api.Debt {
	query = strings.TrimSpace(query)
	if query == "" {
		return debts
	}
	needle := strings.ToLower(query)

	matched := make([]api.Debt, 0, len(debts))
	for _, d := range debts {
		if strings.Contains(strings.ToLower(d.CustomerName), needle) ||
			strings.Contains(strings.ToLower(d.Description), needle) {
			matched = append(matched, d)
		}
	}
	return matched
}

// TotalUnpaid sums the amounts of unpaid DEBT-type records. Amounts arrive
// as decimal strings; an unparseable amount counts as zero.
func TotalUnpaid(debts []api.Debt) float64 {
	var total float64
	for _, d := range debts {
		if d.DebtType != api.DebtTypeDebt || d.IsPaid {
			continue
		}
		total += Amount(d.Amount)
	}
	return total
}

// Amount parses a decimal amount string, returning 0 for anything invalid.
func Amount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
