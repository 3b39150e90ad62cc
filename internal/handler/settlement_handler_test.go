package handler_test

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"koperasi-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedLoan(t *testing.T, db *gorm.DB, userID uint, status string) *model.Loan {
	t.Helper()
	loan := &model.Loan{UserID: userID, ApplicationDate: "2025-01-10", Amount: 100000, Phone: "0812", Address: "Jl. Test", Status: status}
	require.NoError(t, db.Create(loan).Error)
	return loan
}

func TestSettlementCreateByOwner(t *testing.T) {
	app, db := setupApp(t)
	budi := seedUser(t, db, "Budi", "budi@koperasi.com", model.RoleKaryawan)
	loan := seedLoan(t, db, budi.ID, model.StatusApproved)

	body, ct := settlementForm(t, fmt.Sprint(loan.ID), "2025-03-01", "bukti.png", []byte("isi file png"))
	resp := doForm(t, app, http.MethodPost, "/api/settlements", login(t, app, budi.Email), body, ct)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody(t, resp)
	assert.Equal(t, "applied", created["status"])
	assert.Equal(t, float64(loan.ID), created["loan_id"])
	assert.NotEmpty(t, created["proof"])

	var settlement model.Settlement
	require.NoError(t, db.First(&settlement).Error)
	assert.Equal(t, loan.ID, settlement.LoanID)
}

func TestSettlementCreateNonOwnerForbidden(t *testing.T) {
	app, db := setupApp(t)
	budi := seedUser(t, db, "Budi", "budi@koperasi.com", model.RoleKaryawan)
	siti := seedUser(t, db, "Siti", "siti@koperasi.com", model.RoleKaryawan)
	loan := seedLoan(t, db, budi.ID, model.StatusApproved)

	body, ct := settlementForm(t, fmt.Sprint(loan.ID), "2025-03-01", "bukti.png", []byte("isi"))
	resp := doForm(t, app, http.MethodPost, "/api/settlements", login(t, app, siti.Email), body, ct)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var count int64
	db.Model(&model.Settlement{}).Count(&count)
	assert.Zero(t, count)
}

func TestSettlementProofExtensionRejected(t *testing.T) {
	app, db := setupApp(t)
	budi := seedUser(t, db, "Budi", "budi@koperasi.com", model.RoleKaryawan)
	loan := seedLoan(t, db, budi.ID, model.StatusApproved)

	body, ct := settlementForm(t, fmt.Sprint(loan.ID), "2025-03-01", "bukti.txt", []byte("bukan gambar"))
	resp := doForm(t, app, http.MethodPost, "/api/settlements", login(t, app, budi.Email), body, ct)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errs := decodeBody(t, resp)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "proof")
}

func TestSettlementProofTooLarge(t *testing.T) {
	app, db := setupApp(t)
	budi := seedUser(t, db, "Budi", "budi@koperasi.com", model.RoleKaryawan)
	loan := seedLoan(t, db, budi.ID, model.StatusApproved)

	oversize := bytes.Repeat([]byte("a"), 2048*1024+1)
	body, ct := settlementForm(t, fmt.Sprint(loan.ID), "2025-03-01", "bukti.jpg", oversize)
	resp := doForm(t, app, http.MethodPost, "/api/settlements", login(t, app, budi.Email), body, ct)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errs := decodeBody(t, resp)["errors"].(map[string]interface{})
	assert.Contains(t, errs, "proof")
}

func TestSettlementUnknownLoanRejected(t *testing.T) {
	app, db := setupApp(t)
	budi := seedUser(t, db, "Budi", "budi@koperasi.com", model.RoleKaryawan)

	body, ct := settlementForm(t, "99", "2025-03-01", "bukti.png", []byte("isi"))
	resp := doForm(t, app, http.MethodPost, "/api/settlements", login(t, app, budi.Email), body, ct)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSettlementCreateAllowedOnUnapprovedLoanByDefault(t *testing.T) {
	app, db := setupApp(t)
	budi := seedUser(t, db, "Budi", "budi@koperasi.com", model.RoleKaryawan)
	loan := seedLoan(t, db, budi.ID, model.StatusApplied)

	// Perilaku default: status pinjaman tidak dicek
	body, ct := settlementForm(t, fmt.Sprint(loan.ID), "2025-03-01", "bukti.png", []byte("isi"))
	resp := doForm(t, app, http.MethodPost, "/api/settlements", login(t, app, budi.Email), body, ct)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestSettlementRequireApprovedLoanFlag(t *testing.T) {
	app, db := setupApp(t)
	t.Setenv("SETTLEMENT_REQUIRE_APPROVED_LOAN", "true")

	budi := seedUser(t, db, "Budi", "budi@koperasi.com", model.RoleKaryawan)
	loan := seedLoan(t, db, budi.ID, model.StatusApplied)
	token := login(t, app, budi.Email)

	body, ct := settlementForm(t, fmt.Sprint(loan.ID), "2025-03-01", "bukti.png", []byte("isi"))
	resp := doForm(t, app, http.MethodPost, "/api/settlements", token, body, ct)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// Setelah pinjaman approved, pengajuan diterima
	require.NoError(t, db.Model(loan).Update("status", model.StatusApproved).Error)
	body, ct = settlementForm(t, fmt.Sprint(loan.ID), "2025-03-01", "bukti.png", []byte("isi"))
	resp = doForm(t, app, http.MethodPost, "/api/settlements", token, body, ct)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestSettlementListAdminOnly(t *testing.T) {
	app, db := setupApp(t)
	admin := seedUser(t, db, "Admin", "admin@koperasi.com", model.RoleAdmin)
	budi := seedUser(t, db, "Budi", "budi@koperasi.com", model.RoleKaryawan)
	loan := seedLoan(t, db, budi.ID, model.StatusApproved)
	require.NoError(t, db.Create(&model.Settlement{LoanID: loan.ID, SettlementDate: "2025-03-01", Status: model.StatusApplied}).Error)

	resp := doJSON(t, app, http.MethodGet, "/api/settlements", login(t, app, budi.Email), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/settlements", login(t, app, admin.Email), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := decodeList(t, resp)
	require.Len(t, list, 1)
	// Relasi berantai ikut terkirim: settlement -> loan -> user
	loanBody, ok := list[0]["loan"].(map[string]interface{})
	require.True(t, ok)
	assert.NotNil(t, loanBody["user"])
}

func TestSettlementDecide(t *testing.T) {
	app, db := setupApp(t)
	admin := seedUser(t, db, "Admin", "admin@koperasi.com", model.RoleAdmin)
	budi := seedUser(t, db, "Budi", "budi@koperasi.com", model.RoleKaryawan)
	loan := seedLoan(t, db, budi.ID, model.StatusApproved)

	settlement := model.Settlement{LoanID: loan.ID, SettlementDate: "2025-03-01", Status: model.StatusApplied}
	require.NoError(t, db.Create(&settlement).Error)
	path := fmt.Sprintf("/api/settlements/%d/approve", settlement.ID)

	// Anggota ditolak dan record tidak berubah
	resp := doJSON(t, app, http.MethodPost, path, login(t, app, budi.Email), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var after model.Settlement
	require.NoError(t, db.First(&after, settlement.ID).Error)
	assert.Equal(t, model.StatusApplied, after.Status)

	// Admin berhasil
	resp = doJSON(t, app, http.MethodPost, path, login(t, app, admin.Email), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "approved", decodeBody(t, resp)["status"])
}
