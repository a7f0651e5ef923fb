// Package layout turns a freshly-uploaded, data-only spreadsheet into the
// expense dashboard by issuing a strictly ordered sequence of Sheets API
// mutations.
package layout

// Column identifies one of the eighteen fixed Expenses columns (A through R).
// Every dashboard formula hardcodes these positions, so the enum is the single
// source of truth for column letters: add or move a column here and every
// generated formula follows.
type Column int

// The Expenses sheet column order.
const (
	ColDate Column = iota
	ColMonth
	ColYear
	ColCategory
	ColSubCategory
	ColDescription
	ColAmount
	ColPaymentMode
	ColAccount
	ColPaidBy
	ColForWhom
	ColExpenseType
	ColFrequency
	ColVendor
	ColBill
	ColReimbursable
	ColTags
	ColNotes

	// ExpenseColumnCount is the width of the Expenses sheet.
	ExpenseColumnCount = int(ColNotes) + 1
)

// Letter returns the spreadsheet column letter ("A" through "R").
func (c Column) Letter() string {
	return string(rune('A' + int(c)))
}

// Index returns the 0-based column index used in GridRange coordinates.
func (c Column) Index() int64 {
	return int64(c)
}

// Header returns the column's header text.
func (c Column) Header() string {
	return expenseHeaders[c]
}

var expenseHeaders = [ExpenseColumnCount]string{
	"Date", "Month", "Year", "Category", "Sub-Category", "Description", "Amount",
	"Payment Mode", "Account", "Paid By", "For Whom", "Expense Type", "Frequency",
	"Vendor", "Bill?", "Reimbursable", "Tags", "Notes",
}

// ExpenseHeaders returns the full header row in column order.
func ExpenseHeaders() []string {
	return expenseHeaders[:]
}

// ValidationRule pairs a categorical column with its allowed values.
type ValidationRule struct {
	Column Column
	Values []string
}

// ValidationRules returns the restricted-choice vocabulary for every
// categorical input column, in column order. All rules are enforced strictly.
func ValidationRules() []ValidationRule {
	return []ValidationRule{
		{ColCategory, []string{"Food", "Transport", "Health", "Utilities", "Rent", "Education", "Loans", "Shopping", "Travel", "Entertainment", "Savings", "Investment"}},
		{ColSubCategory, []string{"Groceries", "Dining", "Fuel", "Medicines", "Electricity", "Internet", "EMI", "Fees", "Flight", "Hotel", "Shopping", "Insurance"}},
		{ColPaymentMode, []string{"Cash", "UPI", "Credit Card", "Debit Card", "Bank Transfer"}},
		{ColAccount, []string{"Cash", "Navi", "PhonePe", "Paytm", "SBI", "Kotak811", "CRED", "Imobile"}},
		{ColPaidBy, []string{"Chandru", "Karthi", "Appa", "Amma", "Pothu"}},
		{ColForWhom, []string{"Self", "Appa", "Amma", "Thambi", "Anna", "Anni", "Family", "Friends"}},
		{ColExpenseType, []string{"Essential", "Discretionary", "Savings", "Investment", "Loan"}},
		{ColFrequency, []string{"One-time", "Daily", "Weekly", "Monthly", "Quarterly", "Yearly"}},
		{ColVendor, []string{"Amazon", "Flipkart", "Uber", "Ola", "Local Store", "Pharmacy", "TNEB", "Jio", "Woman Self Help Group"}},
		{ColBill, []string{"Yes", "No"}},
		{ColReimbursable, []string{"Yes", "No"}},
		{ColTags, []string{"Personal", "Family", "Office", "Medical", "Travel", "Emergency", "Education", "Tax"}},
	}
}
