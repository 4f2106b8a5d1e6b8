package handler

import (
	"net/http"

	"dompetku/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Registration
// and login are public; every other route sits behind the session gate.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	txns *service.TransactionService,
	debts *service.DebtService,
	goals *service.SavingsService,
	dash *service.DashboardService,
	export *service.ExportService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	txnHandler := NewTransactionHandler(auth, txns)
	debtHandler := NewDebtHandler(auth, debts)
	savingsHandler := NewSavingsHandler(auth, goals)
	dashHandler := NewDashboardHandler(auth, dash)
	exportHandler := NewExportHandler(auth, export)

	protected := func(h http.HandlerFunc) http.Handler {
		return RequireSession(auth, h)
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /auth/register", authHandler.HandleRegister)
	mux.HandleFunc("POST /auth/login", authHandler.HandleLogin)
	mux.Handle("POST /auth/logout", protected(authHandler.HandleLogout))
	mux.Handle("GET /auth/me", protected(authHandler.HandleMe))

	mux.Handle("GET /transactions", protected(txnHandler.HandleList))
	mux.Handle("POST /transactions", protected(txnHandler.HandleCreate))
	mux.Handle("DELETE /transactions/{id}", protected(txnHandler.HandleDelete))

	mux.Handle("GET /debts", protected(debtHandler.HandleList))
	mux.Handle("POST /debts", protected(debtHandler.HandleCreate))
	mux.Handle("PATCH /debts/{id}/mark-paid", protected(debtHandler.HandleMarkPaid))
	mux.Handle("DELETE /debts/{id}", protected(debtHandler.HandleDelete))

	mux.Handle("GET /savings", protected(savingsHandler.HandleList))
	mux.Handle("POST /savings", protected(savingsHandler.HandleCreate))
	mux.Handle("PATCH /savings/{id}/update-progress", protected(savingsHandler.HandleUpdateProgress))
	mux.Handle("DELETE /savings/{id}", protected(savingsHandler.HandleDelete))

	mux.Handle("GET /dashboard", protected(dashHandler.HandleOverview))
	mux.Handle("GET /insights", protected(dashHandler.HandleInsights))

	mux.Handle("GET /export/excel", protected(exportHandler.HandleExcel))
}
