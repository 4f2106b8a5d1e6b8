package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"dompetku/internal/service"
)

// ExportHandler serves the spreadsheet report download.
type ExportHandler struct {
	auth   *service.AuthService
	export *service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(auth *service.AuthService, export *service.ExportService) *ExportHandler {
	return &ExportHandler{auth: auth, export: export}
}

// HandleExcel builds and returns the xlsx report.
// GET /export/excel?transactions=true&debts=true&savings=true&startDate=...&endDate=...
// The date range applies to transactions only; bounds are inclusive and
// independently optional. The export fails atomically: no partial file is
// ever returned.
func (h *ExportHandler) HandleExcel(w http.ResponseWriter, r *http.Request) {
	user := currentUser(r, h.auth)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	q := r.URL.Query()
	opts := service.ExportOptions{
		IncludeTransactions: q.Get("transactions") == "true",
		IncludeDebts:        q.Get("debts") == "true",
		IncludeSavings:      q.Get("savings") == "true",
		StartDate:           q.Get("startDate"),
		EndDate:             q.Get("endDate"),
	}

	for _, date := range []string{opts.StartDate, opts.EndDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			writeError(w, http.StatusBadRequest, "Dates must be formatted as YYYY-MM-DD.")
			return
		}
	}

	data, err := h.export.Excel(r.Context(), user, opts)
	if err != nil {
		slog.Error("excel export", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred while building the export.")
		return
	}

	filename := fmt.Sprintf("laporan-keuangan-dompetku-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("write export response", "error", err)
	}
}
