package handler

import (
	"strconv"

	"koperasi-backend/config"
	"koperasi-backend/internal/mailer"
	"koperasi-backend/internal/model"
	"koperasi-backend/internal/policy"
	"koperasi-backend/internal/repository"
	"koperasi-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type LoanHandler struct {
	loans repository.LoanRepository
	users repository.UserRepository
}

func NewLoanHandler(loans repository.LoanRepository, users repository.UserRepository) *LoanHandler {
	return &LoanHandler{loans: loans, users: users}
}

func (h *LoanHandler) GetAll(c *fiber.Ctx) error {
	caller := currentUser(c)

	var (
		loans []model.Loan
		err   error
	)
	if caller.IsAdmin() {
		loans, err = h.loans.GetAll()
	} else {
		// Anggota hanya melihat pinjaman miliknya sendiri
		loans, err = h.loans.GetByUserID(caller.ID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pinjaman"})
	}

	return c.JSON(loans)
}

type CreateLoanRequest struct {
	ApplicationDate string   `json:"application_date" validate:"required,datetime=2006-01-02"`
	Amount          *float64 `json:"amount" validate:"required,gte=0"`
	Phone           string   `json:"phone" validate:"required"`
	Address         string   `json:"address" validate:"required"`
	Status          string   `json:"status"` // diabaikan: status selalu applied
}

func (h *LoanHandler) Create(c *fiber.Ctx) error {
	caller := currentUser(c)

	var req CreateLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}

	// user_id dan status dipaksa dari server, apapun kiriman client
	loan := model.Loan{
		UserID:          caller.ID,
		ApplicationDate: req.ApplicationDate,
		Amount:          *req.Amount,
		Phone:           req.Phone,
		Address:         req.Address,
		Status:          model.StatusApplied,
	}

	if err := h.loans.Create(&loan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengajukan pinjaman"})
	}

	return c.Status(fiber.StatusCreated).JSON(loan)
}

func (h *LoanHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, model.StatusApproved)
}

func (h *LoanHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, model.StatusRejected)
}

func (h *LoanHandler) decide(c *fiber.Ctx, status string) error {
	caller := currentUser(c)
	if !policy.Allow(caller, policy.LoanDecide, nil) {
		return unauthorized(c)
	}

	id, _ := strconv.Atoi(c.Params("id"))
	loan, err := h.loans.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Pinjaman tidak ditemukan"})
	}

	// Default-nya status ditimpa begitu saja; mode strict menolak
	// transisi dari status yang sudah final
	if config.StrictStatusTransitions() && loan.Status != model.StatusApplied {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Pinjaman sudah diproses"})
	}

	loan.Status = status
	if err := h.loans.Update(loan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update status"})
	}

	// Kabari pemilik pinjaman lewat email, jalan di background
	if owner, err := h.users.FindByID(loan.UserID); err == nil {
		go mailer.SendDecision(owner.Email, owner.Name, "pinjaman", status)
	}

	return c.JSON(loan)
}
