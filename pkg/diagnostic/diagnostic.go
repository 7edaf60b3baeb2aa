package diagnostic

import "time"

type IncomeType string

const (
	IncomeFixed    IncomeType = "FIXED"
	IncomeVariable IncomeType = "VARIABLE"
	IncomeMixed    IncomeType = "MIXED"
)

// FinancialItem is a single named currency line in one of the record's lists.
// Identity is Id; ids are unique within a list and display order follows
// insertion order. A zero Value means "not yet filled".
type FinancialItem struct {
	Id    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type WorkProfile struct {
	DaysPerWeek int        `json:"daysPerWeek"`
	HoursPerDay int        `json:"hoursPerDay"`
	IncomeType  IncomeType `json:"incomeType"`
}

// DebtItem extends FinancialItem with installment tracking. Both installment
// counts are at least 1 and RemainingInstallments never exceeds
// TotalInstallments after normalization.
type DebtItem struct {
	FinancialItem
	TotalInstallments     int `json:"totalInstallments"`
	RemainingInstallments int `json:"remainingInstallments"`
}

type CreditCard struct {
	Cards        []FinancialItem `json:"cards"`
	Installments []FinancialItem `json:"installments"`
}

// DiagnosticRecord is the full set of a user's financial inputs for one
// analysis session, persisted keyed by user id.
type DiagnosticRecord struct {
	Work              WorkProfile     `json:"work"`
	Income            []FinancialItem `json:"income"`
	EstimatedExpenses []FinancialItem `json:"estimatedExpenses"`
	FixedExpenses     []FinancialItem `json:"fixedExpenses"`
	CreditCard        CreditCard      `json:"creditCard"`
	Debts             []DebtItem      `json:"debts"`
	AIAnalysis        string          `json:"aiAnalysis,omitempty"`
	AIAnalysisHash    string          `json:"aiAnalysisHash,omitempty"`
	LastUpdated       time.Time       `json:"lastUpdated,omitzero"`

	// IsDefault marks a record that is the untouched default template.
	// It replaces the pointer-identity check the frontend used to rely on:
	// a default record must never be persisted as if it were user data.
	IsDefault bool `json:"isDefault,omitempty"`
}

// Normalize enforces the debt installment invariants on the whole record.
// Raising remainingInstallments above totalInstallments raises the total to
// match, so the user-entered remaining count is preserved.
func (r *DiagnosticRecord) Normalize() {
	for i := range r.Debts {
		d := &r.Debts[i]
		if d.TotalInstallments < 1 {
			d.TotalInstallments = 1
		}
		if d.RemainingInstallments < 1 {
			d.RemainingInstallments = 1
		}
		if d.RemainingInstallments > d.TotalInstallments {
			d.TotalInstallments = d.RemainingInstallments
		}
	}
}
