package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"dompetku/internal/domain"
	"dompetku/internal/service"
)

// SavingsHandler handles savings goal HTTP requests.
type SavingsHandler struct {
	auth  *service.AuthService
	goals *service.SavingsService
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(auth *service.AuthService, goals *service.SavingsService) *SavingsHandler {
	return &SavingsHandler{auth: auth, goals: goals}
}

// HandleCreate records a new savings goal.
// POST /savings
// Request: {"goal_name":"...","target_amount":...,"current_amount":...,"target_date":"YYYY-MM-DD","description":"..."}
func (h *SavingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	var req struct {
		GoalName      string  `json:"goal_name"`
		TargetAmount  float64 `json:"target_amount"`
		CurrentAmount float64 `json:"current_amount"`
		TargetDate    string  `json:"target_date"`
		Description   string  `json:"description"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	goal, err := h.goals.Create(r.Context(), user.ID, service.SavingsGoalInput{
		GoalName:      req.GoalName,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    req.TargetDate,
		Description:   req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("create savings goal", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"goal": toSavingsGoalDTO(goal),
	})
}

// HandleList returns the user's savings goals, newest first.
// GET /savings
func (h *SavingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	goals, err := h.goals.List(r.Context(), user.ID)
	if err != nil {
		slog.Error("list savings goals", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"goals": toSavingsGoalDTOs(goals),
	})
}

// HandleUpdateProgress adds to or subtracts from a goal's saved amount.
// Subtraction floors at zero.
// PATCH /savings/{id}/update-progress
// Request: {"amount":...,"isAdd":true|false}
func (h *SavingsHandler) HandleUpdateProgress(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid goal ID.")
		return
	}

	var req struct {
		Amount float64 `json:"amount"`
		IsAdd  bool    `json:"isAdd"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	goal, err := h.goals.UpdateProgress(r.Context(), user.ID, id, req.Amount, req.IsAdd)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Savings goal not found.")
			return
		}
		slog.Error("update savings progress", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"goal": toSavingsGoalDTO(goal),
	})
}

// HandleDelete removes one of the user's savings goals.
// DELETE /savings/{id}
func (h *SavingsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid goal ID.")
		return
	}

	if err := h.goals.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Savings goal not found.")
			return
		}
		slog.Error("delete savings goal", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Savings goal deleted."})
}
