package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"dompetku/internal/domain"
	"dompetku/internal/service"
)

// DebtHandler handles debt HTTP requests.
type DebtHandler struct {
	auth  *service.AuthService
	debts *service.DebtService
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(auth *service.AuthService, debts *service.DebtService) *DebtHandler {
	return &DebtHandler{auth: auth, debts: debts}
}

// HandleCreate records a new debt.
// POST /debts
// Request: {"creditor_name":"...","amount":...,"remaining_amount":...,"description":"...","due_date":"YYYY-MM-DD"}
func (h *DebtHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		CreditorName    string   `json:"creditor_name"`
		Amount          float64  `json:"amount"`
		RemainingAmount *float64 `json:"remaining_amount"`
		Description     string   `json:"description"`
		DueDate         string   `json:"due_date"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	debt, err := h.debts.Create(r.Context(), user.ID, service.DebtInput{
		CreditorName:    req.CreditorName,
		Amount:          req.Amount,
		RemainingAmount: req.RemainingAmount,
		Description:     req.Description,
		DueDate:         req.DueDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create debt", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"debt": toDebtDTO(debt),
	})
}

// HandleList returns the user's debts: unpaid first, then soonest due.
// GET /debts
func (h *DebtHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	debts, err := h.debts.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("list debts", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"debts": toDebtDTOs(debts),
	})
}

// HandleMarkPaid settles a debt: remaining amount drops to zero and the
// paid flag is set, whatever the prior remaining value.
// PATCH /debts/{id}/mark-paid
func (h *DebtHandler) HandleMarkPaid(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid debt ID.")
		return
	}

	debt, err := h.debts.MarkPaid(r.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Debt not found.")
			return
		}
		slog.Error("mark debt paid", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"debt": toDebtDTO(debt),
	})
}

// HandleDelete removes one of the user's debts.
// DELETE /debts/{id}
func (h *DebtHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid debt ID.")
		return
	}

	if err := h.debts.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Debt not found.")
			return
		}
		slog.Error("delete debt", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Debt deleted."})
}
