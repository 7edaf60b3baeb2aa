package diagnostic

// Merge reconciles a persisted record with the default template so that
// records saved by older versions of the wizard gain newly introduced fields
// without losing any user data.
//
// A nil persisted record yields the template itself, still flagged IsDefault,
// which tells callers not to persist it. Otherwise the persisted record wins
// field by field, with two refinements:
//
//   - Work and CreditCard are reconciled one level deeper: any nested field
//     the persisted record is missing is filled from the template.
//   - The four item lists are only substituted when they are missing (nil).
//     An empty list is a meaningful state the user chose and is kept as-is.
//
// Merge never fails and never mutates its inputs.
func Merge(persisted *DiagnosticRecord, template DiagnosticRecord) DiagnosticRecord {
	if persisted == nil {
		return template
	}

	merged := *persisted
	merged.IsDefault = false

	if merged.Work.DaysPerWeek == 0 {
		merged.Work.DaysPerWeek = template.Work.DaysPerWeek
	}
	if merged.Work.HoursPerDay == 0 {
		merged.Work.HoursPerDay = template.Work.HoursPerDay
	}
	if merged.Work.IncomeType == "" {
		merged.Work.IncomeType = template.Work.IncomeType
	}

	if merged.CreditCard.Cards == nil {
		merged.CreditCard.Cards = template.CreditCard.Cards
	}
	if merged.CreditCard.Installments == nil {
		merged.CreditCard.Installments = template.CreditCard.Installments
	}

	if merged.Income == nil {
		merged.Income = template.Income
	}
	if merged.EstimatedExpenses == nil {
		merged.EstimatedExpenses = template.EstimatedExpenses
	}
	if merged.FixedExpenses == nil {
		merged.FixedExpenses = template.FixedExpenses
	}
	if merged.Debts == nil {
		merged.Debts = template.Debts
	}

	return merged
}
