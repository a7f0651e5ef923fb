package layout

import (
	"fmt"
	"strings"

	"github.com/kodiarasan/sheetflow/internal/dataset"
)

// Monthly_Budget sheet columns referenced by the budget join. The budget
// sheet has its own three-column layout (Month, Category, Budget Amount).
const (
	budgetCategoryCol = "B"
	budgetAmountCol   = "C"
)

// colRange returns a whole-column reference like "Expenses!G:G", or an
// open-ended one like "Expenses!G2:G" when fromRow is positive.
func colRange(sheet string, c Column, fromRow int) string {
	if fromRow > 0 {
		return fmt.Sprintf("%s!%s%d:%s", sheet, c.Letter(), fromRow, c.Letter())
	}
	return fmt.Sprintf("%s!%s:%s", sheet, c.Letter(), c.Letter())
}

// expenseDataRange returns the full Expenses grid reference ("Expenses!A:R").
func expenseDataRange() string {
	return fmt.Sprintf("%s!%s:%s", dataset.SheetExpenses, ColDate.Letter(), ColNotes.Letter())
}

// latestMonthExpr derives the most recent month label present in the data.
// This is the one canonical derivation: both the current-month KPI and the
// budget staging query use it, so they can never disagree. Blank dates are
// skipped, and tied maximum dates share a single month label.
func latestMonthExpr() string {
	dates := colRange(dataset.SheetExpenses, ColDate, 2)
	return fmt.Sprintf(`TEXT(MAX(IF(%s="",,DATEVALUE(%s))),"mmm-yyyy")`, dates, dates)
}

// MonthFormula derives the month label from the date column for every data
// row, propagating blank for blank dates.
func MonthFormula() string {
	dates := colRange(dataset.SheetExpenses, ColDate, 2)
	return fmt.Sprintf(`=ARRAYFORMULA(IF(%s="","",TEXT(%s,"mmm-yyyy")))`, dates, dates)
}

// YearFormula derives the year number from the date column for every data
// row, propagating blank for blank dates.
func YearFormula() string {
	dates := colRange(dataset.SheetExpenses, ColDate, 2)
	return fmt.Sprintf(`=ARRAYFORMULA(IF(%s="","",YEAR(%s)))`, dates, dates)
}

// TotalExpenseFormula sums every amount in the data sheet.
func TotalExpenseFormula() string {
	return fmt.Sprintf("=SUM(%s)", colRange(dataset.SheetExpenses, ColAmount, 0))
}

// CurrentMonthTotalFormula sums the rows whose month label equals the most
// recent month present in the data. It depends only on the data, never on
// the wall clock, so historical datasets stay correct.
func CurrentMonthTotalFormula() string {
	dates := colRange(dataset.SheetExpenses, ColDate, 2)
	amounts := colRange(dataset.SheetExpenses, ColAmount, 2)
	return fmt.Sprintf(
		`=SUM(ARRAYFORMULA(IF(TEXT(IF(%s="",,DATEVALUE(%s)),"mmm-yyyy") = %s,%s*1,0)))`,
		dates, dates, latestMonthExpr(), amounts)
}

// HighestExpenseFormula returns the maximum single amount.
func HighestExpenseFormula() string {
	return fmt.Sprintf("=MAX(%s)", colRange(dataset.SheetExpenses, ColAmount, 0))
}

// groupSumFormula builds a QUERY that groups the full expense range by one
// column, sums the amounts, and sorts descending by the sum.
func groupSumFormula(key Column, keyLabel string) string {
	k := key.Letter()
	g := ColAmount.Letter()
	a := ColDate.Letter()
	return fmt.Sprintf(
		`=QUERY(%s,"select %s,sum(%s) where %s is not null group by %s order by sum(%s) desc label %s '%s', sum(%s) 'Amount'")`,
		expenseDataRange(), k, g, a, k, g, k, keyLabel, g)
}

// CategorySummaryFormula groups expenses by category.
func CategorySummaryFormula() string {
	return groupSumFormula(ColCategory, "Category")
}

// PaymentModeSummaryFormula groups expenses by payment mode.
func PaymentModeSummaryFormula() string {
	return groupSumFormula(ColPaymentMode, "Payment Mode")
}

// ForWhomSummaryFormula groups expenses by the responsible household member.
func ForWhomSummaryFormula() string {
	return groupSumFormula(ColForWhom, "For Whom")
}

// BudgetActualStagingFormula computes per-category actual spend restricted to
// the most recent month, for the budget join to look up.
func BudgetActualStagingFormula() string {
	categories := colRange(dataset.SheetExpenses, ColCategory, 2)
	dates := colRange(dataset.SheetExpenses, ColDate, 2)
	amounts := colRange(dataset.SheetExpenses, ColAmount, 2)
	return fmt.Sprintf(
		`=QUERY({%s, ARRAYFORMULA(IF(TEXT(IF(%s="",,DATEVALUE(%s)),"mmm-yyyy") = %s, %s, 0))},`+
			`"select Col1, sum(Col2) where Col2 > 0 group by Col1 label Col1 'Category', sum(Col2) 'Actual'", 0)`,
		categories, dates, dates, latestMonthExpr(), amounts)
}

// BudgetVsActualFormula joins the budget table against the staging columns by
// category, producing (category, budgeted, actual, variance) rows. Budget
// rows that do not exist come out as an empty string, not zero and not an
// error. stagingCols is the dashboard-local column pair holding the staging
// query, e.g. "J:K".
func BudgetVsActualFormula(stagingCols string) string {
	cats := fmt.Sprintf("%s!%s2:%s", dataset.SheetBudget, budgetCategoryCol, budgetCategoryCol)
	amounts := fmt.Sprintf("%s!%s2:%s", dataset.SheetBudget, budgetAmountCol, budgetAmountCol)
	lookup := fmt.Sprintf("IFERROR(VLOOKUP(%s, %s, 2, FALSE), 0)", cats, stagingCols)
	return fmt.Sprintf(
		`=ARRAYFORMULA(IF(LEN(%s), {%s, %s, %s, %s - %s}, ""))`,
		cats, cats, amounts, lookup, amounts, lookup)
}

// MaxAmountHighlightFormula matches every data row tied for the maximum
// amount, for the conditional highlight on the Expenses sheet.
func MaxAmountHighlightFormula() string {
	g := ColAmount.Letter()
	return fmt.Sprintf("=%s2=MAX($%s$2:$%s)", g, g, g)
}

// MissingMandatoryFormula matches rows missing any of the three mandatory
// fields (date, category, amount).
func MissingMandatoryFormula() string {
	cols := []Column{ColDate, ColCategory, ColAmount}
	terms := make([]string, len(cols))
	for i, c := range cols {
		terms[i] = fmt.Sprintf(`$%s2=""`, c.Letter())
	}
	return fmt.Sprintf("=OR(%s)", strings.Join(terms, ", "))
}
