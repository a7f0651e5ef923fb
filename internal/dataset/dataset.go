// Package dataset builds the in-memory tables that seed the expense workbook.
package dataset

import (
	"github.com/shopspring/decimal"
)

// Sheet titles used across the workbook. Downstream formulas reference these
// by name, so they must match the exported sheet titles exactly.
const (
	SheetExpenses     = "Expenses"
	SheetCategories   = "Categories"
	SheetFamily       = "Family"
	SheetPaymentModes = "Payment_Modes"
	SheetBudget       = "Monthly_Budget"
)

// Table is a named grid with a fixed column order, one table per workbook sheet.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// ExpenseRow represents a single row in the Expenses sheet. The field order
// mirrors the 18-column A-R layout that every dashboard formula hardcodes.
type ExpenseRow struct {
	Date         string // ISO yyyy-mm-dd, stored as text; formulas DATEVALUE it
	Month        string // seed value only; an array formula re-derives it remotely
	Year         int
	Category     string
	SubCategory  string
	Description  string
	Amount       decimal.Decimal
	PaymentMode  string
	Account      string
	PaidBy       string
	ForWhom      string
	ExpenseType  string
	Frequency    string
	Vendor       string
	Bill         string
	Reimbursable string
	Tags         string
	Notes        string
}

// CategoryRow represents a single row in the Categories taxonomy sheet.
type CategoryRow struct {
	Category    string
	SubCategory string
}

// MemberRow represents a single row in the Family sheet.
type MemberRow struct {
	Name string
	Role string
}

// PaymentModeRow represents a single row in the Payment_Modes sheet.
type PaymentModeRow struct {
	Mode    string
	Account string
}

// BudgetRow represents a single row in the Monthly_Budget sheet.
type BudgetRow struct {
	Month    string
	Category string
	Amount   decimal.Decimal
}

// Build returns the five workbook tables in export order. It is pure and
// deterministic: the same tables come back on every call.
func Build() []Table {
	return []Table{
		expensesTable(SampleExpenses()),
		categoriesTable(SampleCategories()),
		familyTable(SampleFamily()),
		paymentModesTable(SamplePaymentModes()),
		budgetTable(SampleBudget()),
	}
}

func expensesTable(rows []ExpenseRow) Table {
	t := Table{
		Name: SheetExpenses,
		Columns: []string{
			"Date", "Month", "Year", "Category", "Sub-Category", "Description", "Amount",
			"Payment Mode", "Account", "Paid By", "For Whom", "Expense Type", "Frequency",
			"Vendor", "Bill?", "Reimbursable", "Tags", "Notes",
		},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.Date, r.Month, r.Year, r.Category, r.SubCategory, r.Description,
			r.Amount.InexactFloat64(), r.PaymentMode, r.Account, r.PaidBy, r.ForWhom,
			r.ExpenseType, r.Frequency, r.Vendor, r.Bill, r.Reimbursable, r.Tags, r.Notes,
		})
	}
	return t
}

func categoriesTable(rows []CategoryRow) Table {
	t := Table{Name: SheetCategories, Columns: []string{"Category", "Sub-Category"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Category, r.SubCategory})
	}
	return t
}

func familyTable(rows []MemberRow) Table {
	t := Table{Name: SheetFamily, Columns: []string{"Member Name", "Role"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Name, r.Role})
	}
	return t
}

func paymentModesTable(rows []PaymentModeRow) Table {
	t := Table{Name: SheetPaymentModes, Columns: []string{"Payment Mode", "Account"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Mode, r.Account})
	}
	return t
}

func budgetTable(rows []BudgetRow) Table {
	t := Table{Name: SheetBudget, Columns: []string{"Month", "Category", "Budget Amount"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Month, r.Category, r.Amount.InexactFloat64()})
	}
	return t
}
