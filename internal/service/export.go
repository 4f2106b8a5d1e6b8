package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"dompetku/internal/domain"
)

// ExportOptions selects which sheets to build. The date range applies to
// transactions only; either bound may be empty.
type ExportOptions struct {
	IncludeTransactions bool
	IncludeDebts        bool
	IncludeSavings      bool
	StartDate           string
	EndDate             string
}

// ExportService assembles a multi-sheet spreadsheet report from a user's
// raw rows and their rollups. The workbook is built in full before any
// byte is returned; a failed fetch aborts the whole export.
type ExportService struct {
	txns  domain.TransactionRepository
	debts domain.DebtRepository
	goals domain.SavingsGoalRepository
}

// NewExportService creates a new ExportService.
func NewExportService(txns domain.TransactionRepository, debts domain.DebtRepository, goals domain.SavingsGoalRepository) *ExportService {
	return &ExportService{txns: txns, debts: debts, goals: goals}
}

const (
	sheetSummary      = "Ringkasan"
	sheetTransactions = "Transaksi"
	sheetDebts        = "Hutang"
	sheetSavings      = "Tabungan"

	// Indonesian Rupiah, no fraction digits.
	currencyNumFmt = `"Rp"#,##0`
)

type exportStyles struct {
	title    int
	section  int
	header   int
	total    int
	currency int
}

// Excel builds the report workbook for the given user and returns it as
// xlsx bytes.
func (s *ExportService) Excel(ctx context.Context, user *domain.User, opts ExportOptions) ([]byte, error) {
	txns, err := s.txns.ListByUser(ctx, user.ID, domain.TransactionFilter{
		StartDate: opts.StartDate,
		EndDate:   opts.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}

	debts, err := s.debts.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch debts: %w", err)
	}

	goals, err := s.goals.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("fetch savings goals: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	styles, err := newExportStyles(f)
	if err != nil {
		return nil, fmt.Errorf("build styles: %w", err)
	}

	if err := s.writeSummarySheet(f, styles, user, txns, debts, goals); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}

	if opts.IncludeTransactions {
		if err := s.writeTransactionsSheet(f, styles, user, txns); err != nil {
			return nil, fmt.Errorf("transactions sheet: %w", err)
		}
	}

	if opts.IncludeDebts {
		if err := s.writeDebtsSheet(f, styles, debts); err != nil {
			return nil, fmt.Errorf("debts sheet: %w", err)
		}
	}

	if opts.IncludeSavings {
		if err := s.writeSavingsSheet(f, styles, goals); err != nil {
			return nil, fmt.Errorf("savings sheet: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func newExportStyles(f *excelize.File) (*exportStyles, error) {
	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2E5B9A"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	section, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DCE6F1"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	total, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, err
	}

	numFmt := currencyNumFmt
	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, err
	}

	return &exportStyles{title: title, section: section, header: header, total: total, currency: currency}, nil
}

func (s *ExportService) writeSummarySheet(f *excelize.File, styles *exportStyles, user *domain.User, txns []domain.Transaction, debts []domain.Debt, goals []domain.SavingsGoal) error {
	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetSummary, "A", "B", 30); err != nil {
		return err
	}

	var totalIncome, totalExpenses float64
	for _, t := range txns {
		if t.Type == domain.TransactionIncome {
			totalIncome += t.Amount
		} else {
			totalExpenses += t.Amount
		}
	}

	var totalRemaining float64
	paidDebts := 0
	for _, d := range debts {
		totalRemaining += d.RemainingAmount
		if d.IsPaid {
			paidDebts++
		}
	}

	var totalSaved, totalTarget float64
	for _, g := range goals {
		totalSaved += g.CurrentAmount
		totalTarget += g.TargetAmount
	}

	expenseRatio := 0.0
	if totalIncome > 0 {
		expenseRatio = totalExpenses / totalIncome * 100
	}
	savingsRatio := 0.0
	if totalTarget > 0 {
		savingsRatio = totalSaved / totalTarget * 100
	}

	rows := []struct {
		label string
		value any
	}{
		{fmt.Sprintf("RINGKASAN KEUANGAN - %s", user.Name), nil},
		{"", nil},
		{"Ringkasan Transaksi", nil},
		{"Total Pemasukan", totalIncome},
		{"Total Pengeluaran", totalExpenses},
		{"Saldo", totalIncome - totalExpenses},
		{"Rasio Pengeluaran", progressBar(expenseRatio)},
		{"", nil},
		{"Ringkasan Hutang", nil},
		{"Total Sisa Hutang", totalRemaining},
		{"Hutang Lunas", fmt.Sprintf("%d dari %d", paidDebts, len(debts))},
		{"", nil},
		{"Ringkasan Tabungan", nil},
		{"Total Terkumpul", totalSaved},
		{"Total Target", totalTarget},
		{"Progress Tabungan", progressBar(savingsRatio)},
	}

	for i, row := range rows {
		n := i + 1
		if row.label != "" {
			if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", n), row.label); err != nil {
				return err
			}
		}
		if row.value == nil {
			continue
		}
		cell := fmt.Sprintf("B%d", n)
		if err := f.SetCellValue(sheetSummary, cell, row.value); err != nil {
			return err
		}
		if _, isNumber := row.value.(float64); isNumber {
			if err := f.SetCellStyle(sheetSummary, cell, cell, styles.currency); err != nil {
				return err
			}
		}
	}

	// Merged, styled banner rows.
	for _, banner := range []struct {
		row   int
		style int
	}{
		{1, styles.title},
		{3, styles.section},
		{9, styles.section},
		{13, styles.section},
	} {
		span := fmt.Sprintf("A%d", banner.row)
		end := fmt.Sprintf("B%d", banner.row)
		if err := f.MergeCell(sheetSummary, span, end); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetSummary, span, end, banner.style); err != nil {
			return err
		}
	}

	return nil
}

func (s *ExportService) writeTransactionsSheet(f *excelize.File, styles *exportStyles, user *domain.User, txns []domain.Transaction) error {
	if _, err := f.NewSheet(sheetTransactions); err != nil {
		return err
	}
	for col, width := range map[string]float64{"A": 15, "B": 25, "C": 40, "D": 20} {
		if err := f.SetColWidth(sheetTransactions, col, col, width); err != nil {
			return err
		}
	}

	var income, expense []domain.Transaction
	var totalIncome, totalExpenses float64
	for _, t := range txns {
		if t.Type == domain.TransactionIncome {
			income = append(income, t)
			totalIncome += t.Amount
		} else {
			expense = append(expense, t)
			totalExpenses += t.Amount
		}
	}

	if err := f.SetCellValue(sheetTransactions, "A1", fmt.Sprintf("LAPORAN TRANSAKSI - %s", user.Name)); err != nil {
		return err
	}
	if err := f.MergeCell(sheetTransactions, "A1", "D1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetTransactions, "A1", "D1", styles.title); err != nil {
		return err
	}

	row := 3
	var err error
	row, err = s.writeTransactionBlock(f, styles, row, "PEMASUKAN", "Total Pemasukan", income, totalIncome)
	if err != nil {
		return err
	}
	row++ // spacer between the blocks
	_, err = s.writeTransactionBlock(f, styles, row, "PENGELUARAN", "Total Pengeluaran", expense, totalExpenses)
	return err
}

// writeTransactionBlock writes a section banner, a header row, the data
// rows, and a trailing total row. It returns the next free row. An empty
// slice still produces the banner, header, and a zero total.
func (s *ExportService) writeTransactionBlock(f *excelize.File, styles *exportStyles, row int, banner, totalLabel string, txns []domain.Transaction, total float64) (int, error) {
	span, end := fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row)
	if err := f.SetCellValue(sheetTransactions, span, banner); err != nil {
		return 0, err
	}
	if err := f.MergeCell(sheetTransactions, span, end); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheetTransactions, span, end, styles.section); err != nil {
		return 0, err
	}
	row++

	headerStart, headerEnd := fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row)
	if err := f.SetSheetRow(sheetTransactions, headerStart, &[]any{"Tanggal", "Kategori", "Deskripsi", "Jumlah"}); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheetTransactions, headerStart, headerEnd, styles.header); err != nil {
		return 0, err
	}
	row++

	for _, t := range txns {
		if err := f.SetSheetRow(sheetTransactions, fmt.Sprintf("A%d", row),
			&[]any{displayDate(&t.Date), t.Category, t.Description, t.Amount}); err != nil {
			return 0, err
		}
		amountCell := fmt.Sprintf("D%d", row)
		if err := f.SetCellStyle(sheetTransactions, amountCell, amountCell, styles.currency); err != nil {
			return 0, err
		}
		row++
	}

	if err := f.SetSheetRow(sheetTransactions, fmt.Sprintf("A%d", row), &[]any{"", "", totalLabel, total}); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheetTransactions, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), styles.total); err != nil {
		return 0, err
	}
	totalCell := fmt.Sprintf("D%d", row)
	if err := f.SetCellStyle(sheetTransactions, totalCell, totalCell, styles.currency); err != nil {
		return 0, err
	}
	return row + 1, nil
}

func (s *ExportService) writeDebtsSheet(f *excelize.File, styles *exportStyles, debts []domain.Debt) error {
	if _, err := f.NewSheet(sheetDebts); err != nil {
		return err
	}
	if err := setRecordColWidths(f, sheetDebts); err != nil {
		return err
	}

	if err := f.SetSheetRow(sheetDebts, "A1",
		&[]any{"Kreditor", "Jumlah Total", "Sisa Hutang", "Status", "Jatuh Tempo", "Deskripsi"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetDebts, "A1", "F1", styles.header); err != nil {
		return err
	}

	for i, d := range debts {
		row := i + 2
		status := "Belum Lunas"
		if d.IsPaid {
			status = "Lunas"
		}
		if err := f.SetSheetRow(sheetDebts, fmt.Sprintf("A%d", row),
			&[]any{d.CreditorName, d.Amount, d.RemainingAmount, status, displayDate(d.DueDate), displayOptional(d.Description)}); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetDebts, fmt.Sprintf("B%d", row), fmt.Sprintf("C%d", row), styles.currency); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeSavingsSheet(f *excelize.File, styles *exportStyles, goals []domain.SavingsGoal) error {
	if _, err := f.NewSheet(sheetSavings); err != nil {
		return err
	}
	if err := setRecordColWidths(f, sheetSavings); err != nil {
		return err
	}

	if err := f.SetSheetRow(sheetSavings, "A1",
		&[]any{"Nama Target", "Jumlah Target", "Terkumpul", "Progress (%)", "Target Tanggal", "Deskripsi"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSavings, "A1", "F1", styles.header); err != nil {
		return err
	}

	for i, g := range goals {
		row := i + 2
		progress := "N/A"
		if g.TargetAmount > 0 {
			progress = fmt.Sprintf("%.1f%%", g.CurrentAmount/g.TargetAmount*100)
		}
		if err := f.SetSheetRow(sheetSavings, fmt.Sprintf("A%d", row),
			&[]any{g.GoalName, g.TargetAmount, g.CurrentAmount, progress, displayDate(g.TargetDate), displayOptional(g.Description)}); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetSavings, fmt.Sprintf("B%d", row), fmt.Sprintf("C%d", row), styles.currency); err != nil {
			return err
		}
	}
	return nil
}

func setRecordColWidths(f *excelize.File, sheet string) error {
	for col, width := range map[string]float64{"A": 25, "B": 20, "C": 20, "D": 15, "E": 15, "F": 40} {
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

// progressBar renders a percentage as a 10-cell text bar, one cell per 10%,
// rounded to the nearest cell. Values beyond 100% render as a full bar with
// the true percentage alongside.
func progressBar(percentage float64) string {
	filled := int(math.Round(percentage / 10))
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return fmt.Sprintf("[%s%s] %.1f%%", strings.Repeat("█", filled), strings.Repeat("░", 10-filled), percentage)
}

// displayDate renders an optional YYYY-MM-DD date as dd/mm/yyyy, or "-"
// when absent.
func displayDate(date *string) string {
	if date == nil || *date == "" {
		return "-"
	}
	t, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return *date
	}
	return t.Format("02/01/2006")
}

func displayOptional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
