package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"dompetku/internal/domain"
	"dompetku/internal/service"
)

// TransactionHandler handles transaction HTTP requests.
type TransactionHandler struct {
	auth *service.AuthService
	txns *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(auth *service.AuthService, txns *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{auth: auth, txns: txns}
}

// HandleCreate records a new income or expense entry.
// POST /transactions
// Request: {"type":"income|expense","amount":...,"description":"...","category":"...","date":"YYYY-MM-DD"}
func (h *TransactionHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		Type        string  `json:"type"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Date        string  `json:"date"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	txn, err := h.txns.Create(r.Context(), user.ID, service.TransactionInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create transaction", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"transaction": toTransactionDTO(*txn),
	})
}

// HandleList returns all of the user's transactions, newest first.
// GET /transactions
func (h *TransactionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	txns, err := h.txns.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("list transactions", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"transactions": toTransactionDTOs(txns),
	})
}

// HandleDelete removes one of the user's transactions. A transaction that
// does not exist or belongs to someone else reports the same 404.
// DELETE /transactions/{id}
func (h *TransactionHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid transaction ID.")
		return
	}

	if err := h.txns.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transaction not found.")
			return
		}
		slog.Error("delete transaction", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted."})
}
