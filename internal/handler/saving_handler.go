package handler

import (
	"strconv"

	"koperasi-backend/internal/model"
	"koperasi-backend/internal/policy"
	"koperasi-backend/internal/repository"
	"koperasi-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type SavingHandler struct {
	savings repository.SavingRepository
	users   repository.UserRepository
}

func NewSavingHandler(savings repository.SavingRepository, users repository.UserRepository) *SavingHandler {
	return &SavingHandler{savings: savings, users: users}
}

func (h *SavingHandler) GetAll(c *fiber.Ctx) error {
	caller := currentUser(c)

	var (
		savings []model.Saving
		err     error
	)
	if caller.IsAdmin() {
		savings, err = h.savings.GetAll()
	} else {
		savings, err = h.savings.GetByUserID(caller.ID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data simpanan"})
	}

	return c.JSON(savings)
}

func (h *SavingHandler) GetByID(c *fiber.Ctx) error {
	caller := currentUser(c)

	id, _ := strconv.Atoi(c.Params("id"))
	saving, err := h.savings.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Simpanan tidak ditemukan"})
	}

	if !policy.Allow(caller, policy.SavingRead, saving) {
		return unauthorized(c)
	}

	return c.JSON(saving)
}

type SavingRequest struct {
	UserID uint     `json:"user_id" validate:"required"`
	Type   string   `json:"type" validate:"required,oneof=wajib pokok"`
	Amount *float64 `json:"amount" validate:"required,gte=0"`
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
}

func (h *SavingHandler) Create(c *fiber.Ctx) error {
	caller := currentUser(c)
	if !policy.Allow(caller, policy.SavingWrite, nil) {
		return unauthorized(c)
	}

	var req SavingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}
	// Setara exists:users,id
	if !h.users.Exists(req.UserID) {
		return validationFailed(c, map[string]string{"user_id": "User tidak ditemukan"})
	}

	saving := model.Saving{
		UserID: req.UserID,
		Type:   req.Type,
		Amount: *req.Amount,
		Date:   req.Date,
	}

	if err := h.savings.Create(&saving); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan simpanan"})
	}

	return c.Status(fiber.StatusCreated).JSON(saving)
}

func (h *SavingHandler) Update(c *fiber.Ctx) error {
	caller := currentUser(c)
	if !policy.Allow(caller, policy.SavingWrite, nil) {
		return unauthorized(c)
	}

	id, _ := strconv.Atoi(c.Params("id"))
	saving, err := h.savings.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Simpanan tidak ditemukan"})
	}

	var req SavingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if fields := validation.Struct(req); fields != nil {
		return validationFailed(c, fields)
	}
	if !h.users.Exists(req.UserID) {
		return validationFailed(c, map[string]string{"user_id": "User tidak ditemukan"})
	}

	saving.UserID = req.UserID
	saving.Type = req.Type
	saving.Amount = *req.Amount
	saving.Date = req.Date

	if err := h.savings.Update(saving); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update simpanan"})
	}

	return c.JSON(saving)
}

func (h *SavingHandler) Delete(c *fiber.Ctx) error {
	caller := currentUser(c)
	if !policy.Allow(caller, policy.SavingWrite, nil) {
		return unauthorized(c)
	}

	id, _ := strconv.Atoi(c.Params("id"))
	if _, err := h.savings.GetByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Simpanan tidak ditemukan"})
	}

	if err := h.savings.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus simpanan"})
	}

	return c.JSON(fiber.Map{"message": "Saving deleted successfully"})
}

// YearlyProfit menghitung estimasi SHU tahunan dari total simpanan wajib.
// Konstanta dan urutan operasinya baku, jangan diubah-ubah.
func (h *SavingHandler) YearlyProfit(c *fiber.Ctx) error {
	caller := currentUser(c)

	// Admin melihat agregat seluruh anggota, anggota hanya miliknya
	var userID uint
	if !caller.IsAdmin() {
		userID = caller.ID
	}

	totalWajib, err := h.savings.SumByType(model.SavingWajib, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung simpanan wajib"})
	}

	yearlyProfit := (((totalWajib * 0.93) * 0.1) / 12) * 0.6

	return c.JSON(fiber.Map{
		"total_wajib":   totalWajib,
		"yearly_profit": yearlyProfit,
	})
}
