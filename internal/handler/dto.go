package handler

import (
	"time"

	"dompetku/internal/domain"
	"dompetku/internal/service"
)

// UserDTO is the JSON representation of a user. The password hash never
// appears here.
type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// TransactionDTO is the JSON representation of a transaction.
type TransactionDTO struct {
	ID          int64   `json:"id"`
	UserID      string  `json:"user_id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func toTransactionDTO(t domain.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func toTransactionDTOs(txns []domain.Transaction) []TransactionDTO {
	dtos := make([]TransactionDTO, len(txns))
	for i, t := range txns {
		dtos[i] = toTransactionDTO(t)
	}
	return dtos
}

// DebtDTO is the JSON representation of a debt.
type DebtDTO struct {
	ID              int64   `json:"id"`
	UserID          string  `json:"user_id"`
	CreditorName    string  `json:"creditor_name"`
	Amount          float64 `json:"amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	Description     *string `json:"description"`
	DueDate         *string `json:"due_date"`
	IsPaid          bool    `json:"is_paid"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func toDebtDTO(d *domain.Debt) DebtDTO {
	return DebtDTO{
		ID:              d.ID,
		UserID:          d.UserID,
		CreditorName:    d.CreditorName,
		Amount:          d.Amount,
		RemainingAmount: d.RemainingAmount,
		Description:     d.Description,
		DueDate:         d.DueDate,
		IsPaid:          d.IsPaid,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       d.UpdatedAt.Format(time.RFC3339),
	}
}

func toDebtDTOs(debts []domain.Debt) []DebtDTO {
	dtos := make([]DebtDTO, len(debts))
	for i := range debts {
		dtos[i] = toDebtDTO(&debts[i])
	}
	return dtos
}

// SavingsGoalDTO is the JSON representation of a savings goal.
type SavingsGoalDTO struct {
	ID            int64   `json:"id"`
	UserID        string  `json:"user_id"`
	GoalName      string  `json:"goal_name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    *string `json:"target_date"`
	Description   *string `json:"description"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func toSavingsGoalDTO(g *domain.SavingsGoal) SavingsGoalDTO {
	return SavingsGoalDTO{
		ID:            g.ID,
		UserID:        g.UserID,
		GoalName:      g.GoalName,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
		Description:   g.Description,
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     g.UpdatedAt.Format(time.RFC3339),
	}
}

func toSavingsGoalDTOs(goals []domain.SavingsGoal) []SavingsGoalDTO {
	dtos := make([]SavingsGoalDTO, len(goals))
	for i := range goals {
		dtos[i] = toSavingsGoalDTO(&goals[i])
	}
	return dtos
}

// MonthlyStatsDTO mirrors domain.MonthlyStats for JSON output.
type MonthlyStatsDTO struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	IncomeCount   int     `json:"income_count"`
	ExpenseCount  int     `json:"expense_count"`
}

// DebtSummaryDTO mirrors domain.DebtSummary.
type DebtSummaryDTO struct {
	TotalDebts     int     `json:"total_debts"`
	TotalRemaining float64 `json:"total_debt_amount"`
	UnpaidDebts    int     `json:"unpaid_debts"`
}

// SavingsSummaryDTO mirrors domain.SavingsSummary.
type SavingsSummaryDTO struct {
	TotalGoals  int     `json:"total_goals"`
	TotalTarget float64 `json:"total_target"`
	TotalSaved  float64 `json:"total_saved"`
}

// TrendPointDTO is one month of the income/expense trend.
type TrendPointDTO struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// CategorySpendDTO is one category of the current-month expense breakdown.
type CategorySpendDTO struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

// OverviewDTO bundles the full dashboard payload.
type OverviewDTO struct {
	Stats        MonthlyStatsDTO    `json:"stats"`
	Debts        DebtSummaryDTO     `json:"debts"`
	Savings      SavingsSummaryDTO  `json:"savings"`
	MonthlyData  []TrendPointDTO    `json:"monthlyData"`
	CategoryData []CategorySpendDTO `json:"categoryData"`
	Recent       []TransactionDTO   `json:"recentTransactions"`
}

func toOverviewDTO(o *service.Overview) OverviewDTO {
	monthly := make([]TrendPointDTO, len(o.MonthlyData))
	for i, m := range o.MonthlyData {
		monthly[i] = TrendPointDTO{Month: m.Month, Income: m.Income, Expense: m.Expense, Balance: m.Balance}
	}
	categories := make([]CategorySpendDTO, len(o.CategoryData))
	for i, c := range o.CategoryData {
		categories[i] = CategorySpendDTO{Category: c.Category, Amount: c.Amount, Count: c.Count}
	}
	return OverviewDTO{
		Stats: MonthlyStatsDTO{
			TotalIncome:   o.Stats.TotalIncome,
			TotalExpenses: o.Stats.TotalExpenses,
			IncomeCount:   o.Stats.IncomeCount,
			ExpenseCount:  o.Stats.ExpenseCount,
		},
		Debts: DebtSummaryDTO{
			TotalDebts:     o.Debts.TotalDebts,
			TotalRemaining: o.Debts.TotalRemaining,
			UnpaidDebts:    o.Debts.UnpaidDebts,
		},
		Savings: SavingsSummaryDTO{
			TotalGoals:  o.Savings.TotalGoals,
			TotalTarget: o.Savings.TotalTarget,
			TotalSaved:  o.Savings.TotalSaved,
		},
		MonthlyData:  monthly,
		CategoryData: categories,
		Recent:       toTransactionDTOs(o.Recent),
	}
}

// BiggestExpenseDTO is the top expense category insight.
type BiggestExpenseDTO struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// SpendingComparisonDTO contrasts this month's spending with last month's.
type SpendingComparisonDTO struct {
	CurrentMonth float64 `json:"current_month_spending"`
	LastMonth    float64 `json:"last_month_spending"`
}

// SavingsPaceDTO is the nearest unmet savings goal insight.
type SavingsPaceDTO struct {
	GoalName      string  `json:"goal_name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    *string `json:"target_date"`
}

// InsightsDTO is the response body of the insights endpoint. Nil members
// serialize as JSON null, meaning the insight has no underlying data.
type InsightsDTO struct {
	BiggestExpense     *BiggestExpenseDTO     `json:"biggestExpense"`
	SpendingComparison *SpendingComparisonDTO `json:"spendingComparison"`
	SavingsPace        *SavingsPaceDTO        `json:"savingsPace"`
}

func toInsightsDTO(in *service.Insights) InsightsDTO {
	dto := InsightsDTO{
		SpendingComparison: &SpendingComparisonDTO{
			CurrentMonth: in.SpendingComparison.CurrentMonth,
			LastMonth:    in.SpendingComparison.LastMonth,
		},
	}
	if in.BiggestExpense != nil {
		dto.BiggestExpense = &BiggestExpenseDTO{
			Category: in.BiggestExpense.Category,
			Total:    in.BiggestExpense.Total,
		}
	}
	if in.SavingsPace != nil {
		dto.SavingsPace = &SavingsPaceDTO{
			GoalName:      in.SavingsPace.GoalName,
			TargetAmount:  in.SavingsPace.TargetAmount,
			CurrentAmount: in.SavingsPace.CurrentAmount,
			TargetDate:    in.SavingsPace.TargetDate,
		}
	}
	return dto
}
