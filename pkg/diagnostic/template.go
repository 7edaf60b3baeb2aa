package diagnostic

// DefaultTemplate returns the record a user starts from when nothing has been
// persisted yet. The item ids are stable and part of the contract: the wizard
// keys its rows by them, so renaming an id is a breaking change.
func DefaultTemplate() DiagnosticRecord {
	return DiagnosticRecord{
		Work: WorkProfile{
			DaysPerWeek: 5,
			HoursPerDay: 8,
			IncomeType:  IncomeFixed,
		},
		Income: []FinancialItem{
			{Id: "income-main", Name: "Salário", Value: 0},
			{Id: "income-extra", Name: "Renda extra", Value: 0},
		},
		EstimatedExpenses: []FinancialItem{
			{Id: "estimated-food", Name: "Alimentação", Value: 0},
			{Id: "estimated-transport", Name: "Transporte", Value: 0},
			{Id: "estimated-leisure", Name: "Lazer", Value: 0},
		},
		FixedExpenses: []FinancialItem{
			{Id: "fixed-rent", Name: "Aluguel", Value: 0},
			{Id: "fixed-utilities", Name: "Contas de casa", Value: 0},
			{Id: "fixed-internet", Name: "Internet e telefone", Value: 0},
		},
		CreditCard: CreditCard{
			Cards:        []FinancialItem{},
			Installments: []FinancialItem{},
		},
		Debts:     []DebtItem{},
		IsDefault: true,
	}
}
