package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivedColumnFormulas(t *testing.T) {
	assert.Equal(t,
		`=ARRAYFORMULA(IF(Expenses!A2:A="","",TEXT(Expenses!A2:A,"mmm-yyyy")))`,
		MonthFormula())
	assert.Equal(t,
		`=ARRAYFORMULA(IF(Expenses!A2:A="","",YEAR(Expenses!A2:A)))`,
		YearFormula())
}

func TestKPIFormulas(t *testing.T) {
	assert.Equal(t, "=SUM(Expenses!G:G)", TotalExpenseFormula())
	assert.Equal(t, "=MAX(Expenses!G:G)", HighestExpenseFormula())
}

// The current-month KPI must identify the latest month from the data itself,
// never from the wall clock: historical datasets would otherwise sum to zero.
func TestCurrentMonthTotalFormula_DataDriven(t *testing.T) {
	f := CurrentMonthTotalFormula()

	assert.NotContains(t, f, "TODAY")
	assert.NotContains(t, f, "NOW")
	assert.Contains(t, f, `MAX(IF(Expenses!A2:A="",,DATEVALUE(Expenses!A2:A)))`)
	assert.Contains(t, f, "Expenses!G2:G")
}

// Both consumers of "most recent month" must share the single canonical
// derivation so they cannot disagree about which month is current.
func TestLatestMonthDerivation_Canonical(t *testing.T) {
	derivation := latestMonthExpr()

	assert.Contains(t, CurrentMonthTotalFormula(), derivation)
	assert.Contains(t, BudgetActualStagingFormula(), derivation)
}

func TestSummaryFormulas(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		key     string
		label   string
	}{
		{name: "category", formula: CategorySummaryFormula(), key: "D", label: "Category"},
		{name: "payment mode", formula: PaymentModeSummaryFormula(), key: "H", label: "Payment Mode"},
		{name: "for whom", formula: ForWhomSummaryFormula(), key: "K", label: "For Whom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.formula, "=QUERY(Expenses!A:R,")
			assert.Contains(t, tt.formula, "select "+tt.key+",sum(G)")
			assert.Contains(t, tt.formula, "where A is not null")
			assert.Contains(t, tt.formula, "group by "+tt.key)
			assert.Contains(t, tt.formula, "order by sum(G) desc")
			assert.Contains(t, tt.formula, "label "+tt.key+" '"+tt.label+"', sum(G) 'Amount'")
		})
	}
}

func TestCategorySummaryFormula_Exact(t *testing.T) {
	assert.Equal(t,
		`=QUERY(Expenses!A:R,"select D,sum(G) where A is not null group by D order by sum(G) desc label D 'Category', sum(G) 'Amount'")`,
		CategorySummaryFormula())
}

func TestBudgetActualStagingFormula(t *testing.T) {
	f := BudgetActualStagingFormula()

	assert.True(t, strings.HasPrefix(f, "=QUERY({Expenses!D2:D,"), "keys on the category column")
	assert.Contains(t, f, "select Col1, sum(Col2)")
	assert.Contains(t, f, "where Col2 > 0")
	assert.Contains(t, f, `label Col1 'Category', sum(Col2) 'Actual'`)
}

func TestBudgetVsActualFormula(t *testing.T) {
	f := BudgetVsActualFormula("J:K")

	// Joined by category against the staging columns.
	assert.Contains(t, f, "VLOOKUP(Monthly_Budget!B2:B, J:K, 2, FALSE)")
	// Variance is budget minus looked-up actual.
	assert.Contains(t, f, "Monthly_Budget!C2:C - IFERROR(VLOOKUP(Monthly_Budget!B2:B, J:K, 2, FALSE), 0)")
	// Missing budget rows become empty strings, not zeros and not errors.
	assert.True(t, strings.HasSuffix(f, `, ""))`), "absent rows yield empty string")
	// A lookup miss inside an existing row falls back to 0 actual.
	assert.Contains(t, f, "IFERROR(")
}

func TestMaxAmountHighlightFormula_MatchesTies(t *testing.T) {
	// Plain equality against MAX matches every row tied for the maximum.
	assert.Equal(t, "=G2=MAX($G$2:$G)", MaxAmountHighlightFormula())
}

func TestMissingMandatoryFormula(t *testing.T) {
	require.Equal(t, `=OR($A2="", $D2="", $G2="")`, MissingMandatoryFormula())
}

func TestColRange(t *testing.T) {
	assert.Equal(t, "Expenses!G:G", colRange("Expenses", ColAmount, 0))
	assert.Equal(t, "Expenses!G2:G", colRange("Expenses", ColAmount, 2))
}
