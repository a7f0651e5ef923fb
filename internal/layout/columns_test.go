package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodiarasan/sheetflow/internal/dataset"
)

func TestColumnLetters(t *testing.T) {
	assert.Equal(t, "A", ColDate.Letter())
	assert.Equal(t, "D", ColCategory.Letter())
	assert.Equal(t, "G", ColAmount.Letter())
	assert.Equal(t, "H", ColPaymentMode.Letter())
	assert.Equal(t, "K", ColForWhom.Letter())
	assert.Equal(t, "R", ColNotes.Letter())
	assert.Equal(t, 18, ExpenseColumnCount)
}

// The Expenses column layout is load-bearing: every dashboard formula
// hardcodes these letters. The exported workbook must carry exactly the
// headers the layout schema declares, in the same order.
func TestExpenseHeaders_LockstepWithDataset(t *testing.T) {
	tables := dataset.Build()
	require.Equal(t, dataset.SheetExpenses, tables[0].Name)
	assert.Equal(t, ExpenseHeaders(), tables[0].Columns)
}

func TestValidationRules(t *testing.T) {
	rules := ValidationRules()
	require.Len(t, rules, 12)

	seen := make(map[Column]bool)
	for _, rule := range rules {
		assert.NotEmpty(t, rule.Values, "column %s", rule.Column.Letter())
		assert.False(t, seen[rule.Column], "column %s ruled twice", rule.Column.Letter())
		seen[rule.Column] = true
	}

	// Free-text columns carry no dropdown.
	for _, free := range []Column{ColDate, ColMonth, ColYear, ColDescription, ColAmount, ColNotes} {
		assert.False(t, seen[free], "column %s must stay free-form", free.Letter())
	}
}

// Strict validation governs new input only; pre-validation seed values stay
// untouched. Still, the classification columns of the sample data must sit
// inside their vocabularies or the sheet flags its own seed rows on edit.
func TestSampleData_WithinVocabularies(t *testing.T) {
	byColumn := make(map[Column][]string)
	for _, rule := range ValidationRules() {
		byColumn[rule.Column] = rule.Values
	}

	for _, row := range dataset.SampleExpenses() {
		checks := map[Column]string{
			ColCategory:     row.Category,
			ColSubCategory:  row.SubCategory,
			ColPaymentMode:  row.PaymentMode,
			ColAccount:      row.Account,
			ColExpenseType:  row.ExpenseType,
			ColFrequency:    row.Frequency,
			ColBill:         row.Bill,
			ColReimbursable: row.Reimbursable,
			ColTags:         row.Tags,
		}
		for col, value := range checks {
			assert.Contains(t, byColumn[col], value,
				"expense %q value %q outside %s vocabulary", row.Description, value, col.Letter())
		}
	}
}
