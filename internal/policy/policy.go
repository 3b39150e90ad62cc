// Package policy memusatkan aturan akses yang tadinya tersebar di tiap
// handler: satu predikat, tidak bergantung pada framework HTTP.
package policy

import "koperasi-backend/internal/model"

type Action string

const (
	LoanList         Action = "loan.list"
	LoanCreate       Action = "loan.create"
	LoanDecide       Action = "loan.decide" // approve / reject
	SavingRead       Action = "saving.read"
	SavingWrite      Action = "saving.write" // create / update / delete
	SettlementList   Action = "settlement.list"
	SettlementCreate Action = "settlement.create"
	SettlementDecide Action = "settlement.decide"
)

// Allow memutuskan boleh/tidaknya caller melakukan action terhadap resource.
// resource boleh nil untuk action yang tidak terikat ke satu record.
func Allow(caller *model.User, action Action, resource interface{}) bool {
	if caller == nil {
		return false
	}

	switch action {
	case LoanList, LoanCreate:
		// Semua user login boleh; pembatasan data milik sendiri
		// terjadi di query, bukan di sini
		return true

	case LoanDecide, SavingWrite, SettlementList, SettlementDecide:
		return caller.IsAdmin()

	case SavingRead:
		saving, ok := resource.(*model.Saving)
		if !ok {
			return false
		}
		return caller.IsAdmin() || saving.UserID == caller.ID

	case SettlementCreate:
		// Hanya pemilik pinjaman, admin pun tidak bisa atas nama orang lain
		loan, ok := resource.(*model.Loan)
		if !ok {
			return false
		}
		return loan.UserID == caller.ID
	}

	return false
}
