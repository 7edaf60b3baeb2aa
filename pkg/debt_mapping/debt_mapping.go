package debt_mapping

// DebtMapItem is one entry of the debt mapping exercise: a named debt with
// its creditor, the value of one installment and how many installments are
// still open. Entries feed the wizard's debt prefill.
type DebtMapItem struct {
	Id                    string
	Name                  string
	Creditor              string
	InstallmentValue      float64
	RemainingInstallments int
}
