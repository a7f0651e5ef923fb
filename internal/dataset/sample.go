package dataset

import "github.com/shopspring/decimal"

// SampleExpenses returns the seed expense rows the workbook ships with.
func SampleExpenses() []ExpenseRow {
	return []ExpenseRow{
		{
			Date: "2026-01-04", Month: "Jan-2026", Year: 2026,
			Category: "Loans", SubCategory: "EMI", Description: "Apty Kalanchiam",
			Amount:      decimal.NewFromInt(5000),
			PaymentMode: "Cash", Account: "Cash", PaidBy: "Deiva", ForWhom: "Mother",
			ExpenseType: "Loan", Frequency: "Monthly", Vendor: "Veni Anni Sangam",
			Bill: "Yes", Reimbursable: "No", Tags: "Family", Notes: "Note3",
		},
		{
			Date: "2026-01-05", Month: "Jan-2026", Year: 2026,
			Category: "Loans", SubCategory: "EMI", Description: "Kotak Due",
			Amount:      decimal.NewFromInt(4313),
			PaymentMode: "Bank Transfer", Account: "Kotak811", PaidBy: "Chandru", ForWhom: "Anna",
			ExpenseType: "Loan", Frequency: "Monthly", Vendor: "Vendor1",
			Bill: "Yes", Reimbursable: "No", Tags: "Family", Notes: "PAID",
		},
		{
			Date: "2026-01-09", Month: "Jan-2026", Year: 2026,
			Category: "Loans", SubCategory: "EMI", Description: "Kalanchiam Kmpty",
			Amount:      decimal.NewFromInt(7000),
			PaymentMode: "Cash", Account: "Cash", PaidBy: "Chandru", ForWhom: "Family",
			ExpenseType: "Loan", Frequency: "Monthly", Vendor: "Vendor2",
			Bill: "Yes", Reimbursable: "No", Tags: "Family", Notes: "Note2",
		},
	}
}

// SampleCategories returns the category taxonomy rows.
func SampleCategories() []CategoryRow {
	return []CategoryRow{
		{Category: "Food", SubCategory: "Groceries"},
		{Category: "Food", SubCategory: "Dining"},
		{Category: "Transport", SubCategory: "Fuel"},
		{Category: "Health", SubCategory: "Medicines"},
		{Category: "Loans", SubCategory: "Repayments"},
	}
}

// SampleFamily returns the household member rows.
func SampleFamily() []MemberRow {
	return []MemberRow{
		{Name: "Chandru", Role: "Self"},
		{Name: "Karthi", Role: "Brother"},
		{Name: "Appa", Role: "Father"},
		{Name: "Amma", Role: "Mother"},
		{Name: "Pothu", Role: "Anni"},
	}
}

// SamplePaymentModes returns the payment instrument rows.
func SamplePaymentModes() []PaymentModeRow {
	return []PaymentModeRow{
		{Mode: "Cash", Account: "Cash"},
		{Mode: "UPI", Account: "GPay"},
		{Mode: "Card", Account: "Credit Card"},
	}
}

// SampleBudget returns the monthly budget rows.
func SampleBudget() []BudgetRow {
	return []BudgetRow{
		{Month: "Jan-2026", Category: "Loans", Amount: decimal.NewFromInt(12000)},
		{Month: "Feb-2026", Category: "Health", Amount: decimal.NewFromInt(3000)},
	}
}
