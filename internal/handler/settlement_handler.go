package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"koperasi-backend/config"
	"koperasi-backend/internal/mailer"
	"koperasi-backend/internal/model"
	"koperasi-backend/internal/policy"
	"koperasi-backend/internal/repository"
	"koperasi-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Batas upload bukti pembayaran: 2048 KB
const maxProofSize = 2048 * 1024

var allowedProofExt = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".pdf":  true,
}

type SettlementHandler struct {
	settlements repository.SettlementRepository
	loans       repository.LoanRepository
	users       repository.UserRepository
}

func NewSettlementHandler(settlements repository.SettlementRepository, loans repository.LoanRepository, users repository.UserRepository) *SettlementHandler {
	return &SettlementHandler{settlements: settlements, loans: loans, users: users}
}

func (h *SettlementHandler) GetAll(c *fiber.Ctx) error {
	caller := currentUser(c)
	if !policy.Allow(caller, policy.SettlementList, nil) {
		return unauthorized(c)
	}

	settlements, err := h.settlements.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pelunasan"})
	}

	return c.JSON(settlements)
}

type CreateSettlementRequest struct {
	LoanID         uint   `json:"loan_id" validate:"required"`
	SettlementDate string `json:"settlement_date" validate:"required,datetime=2006-01-02"`
}

func (h *SettlementHandler) Create(c *fiber.Ctx) error {
	caller := currentUser(c)

	// Dikirim sebagai multipart form karena ada file bukti
	loanID, _ := strconv.Atoi(c.FormValue("loan_id"))
	req := CreateSettlementRequest{
		LoanID:         uint(loanID),
		SettlementDate: c.FormValue("settlement_date"),
	}
	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}

	file, err := c.FormFile("proof")
	if err != nil {
		return validationFailed(c, map[string]string{"proof": "File bukti pembayaran wajib diupload"})
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedProofExt[ext] {
		return validationFailed(c, map[string]string{"proof": "File harus berupa jpeg, png, jpg, atau pdf"})
	}
	if file.Size > maxProofSize {
		return validationFailed(c, map[string]string{"proof": "Ukuran file maksimal 2048 KB"})
	}

	loan, err := h.loans.GetByID(req.LoanID)
	if err != nil {
		return validationFailed(c, map[string]string{"loan_id": "Pinjaman tidak ditemukan"})
	}

	// Hanya pemilik pinjaman yang boleh mengajukan pelunasan
	if !policy.Allow(caller, policy.SettlementCreate, loan) {
		return unauthorized(c)
	}

	// Opsional: pelunasan hanya untuk pinjaman yang sudah approved
	if config.SettlementRequireApprovedLoan() && loan.Status != model.StatusApproved {
		return validationFailed(c, map[string]string{"loan_id": "Pinjaman belum disetujui"})
	}

	// Simpan file dulu, baru insert row. Kalau insert gagal, file yatim
	// dibiarkan (tidak ada kompensasi).
	uploadDir := filepath.Join(config.UploadDir(), "proofs")
	if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
		os.MkdirAll(uploadDir, 0755)
	}
	filename := fmt.Sprintf("%d_%d_%s", req.LoanID, time.Now().Unix(), filepath.Base(file.Filename))
	proofPath := filepath.Join(uploadDir, filename)
	if err := c.SaveFile(file, proofPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan file bukti"})
	}

	settlement := model.Settlement{
		LoanID:         req.LoanID,
		SettlementDate: req.SettlementDate,
		Proof:          strings.TrimPrefix(filepath.ToSlash(proofPath), "./"),
		Status:         model.StatusApplied,
	}

	if err := h.settlements.Create(&settlement); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengajukan pelunasan"})
	}

	return c.Status(fiber.StatusCreated).JSON(settlement)
}

func (h *SettlementHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, model.StatusApproved)
}

func (h *SettlementHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, model.StatusRejected)
}

func (h *SettlementHandler) decide(c *fiber.Ctx, status string) error {
	caller := currentUser(c)
	if !policy.Allow(caller, policy.SettlementDecide, nil) {
		return unauthorized(c)
	}

	id, _ := strconv.Atoi(c.Params("id"))
	settlement, err := h.settlements.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Pelunasan tidak ditemukan"})
	}

	if config.StrictStatusTransitions() && settlement.Status != model.StatusApplied {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Pelunasan sudah diproses"})
	}

	settlement.Status = status
	if err := h.settlements.Update(settlement); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update status"})
	}

	if settlement.Loan != nil {
		if owner, err := h.users.FindByID(settlement.Loan.UserID); err == nil {
			go mailer.SendDecision(owner.Email, owner.Name, "pelunasan", status)
		}
	}

	return c.JSON(settlement)
}
