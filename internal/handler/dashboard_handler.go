package handler

import (
	"koperasi-backend/internal/model"
	"koperasi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	users       repository.UserRepository
	loans       repository.LoanRepository
	savings     repository.SavingRepository
	settlements repository.SettlementRepository
}

func NewDashboardHandler(users repository.UserRepository, loans repository.LoanRepository, savings repository.SavingRepository, settlements repository.SettlementRepository) *DashboardHandler {
	return &DashboardHandler{users: users, loans: loans, savings: savings, settlements: settlements}
}

// GetSummary mengembalikan angka-angka ringkasan untuk halaman dashboard.
// Admin melihat agregat seluruh koperasi, anggota hanya datanya sendiri.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	caller := currentUser(c)

	var userID uint
	if !caller.IsAdmin() {
		userID = caller.ID
	}

	totalWajib, _ := h.savings.SumByType(model.SavingWajib, userID)
	totalPokok, _ := h.savings.SumByType(model.SavingPokok, userID)

	loanApplied, _ := h.loans.CountByStatus(model.StatusApplied, userID)
	loanApproved, _ := h.loans.CountByStatus(model.StatusApproved, userID)
	loanRejected, _ := h.loans.CountByStatus(model.StatusRejected, userID)

	settlementPending, _ := h.settlements.CountByStatus(model.StatusApplied, userID)

	summary := fiber.Map{
		"total_wajib":         totalWajib,
		"total_pokok":         totalPokok,
		"loans_applied":       loanApplied,
		"loans_approved":      loanApproved,
		"loans_rejected":      loanRejected,
		"settlements_pending": settlementPending,
	}

	if caller.IsAdmin() {
		memberCount, _ := h.users.CountMembers()
		summary["member_count"] = memberCount
	}

	return c.JSON(fiber.Map{"data": summary})
}
