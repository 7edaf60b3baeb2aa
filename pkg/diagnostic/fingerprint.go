package diagnostic

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Fingerprint hashes the financial inputs of the record. A cached analysis
// stays valid while the fingerprint matches; presentation and bookkeeping
// fields do not participate.
func (r DiagnosticRecord) Fingerprint() string {
	inputs := struct {
		Work              WorkProfile     `json:"work"`
		Income            []FinancialItem `json:"income"`
		EstimatedExpenses []FinancialItem `json:"estimatedExpenses"`
		FixedExpenses     []FinancialItem `json:"fixedExpenses"`
		CreditCard        CreditCard      `json:"creditCard"`
		Debts             []DebtItem      `json:"debts"`
	}{r.Work, r.Income, r.EstimatedExpenses, r.FixedExpenses, r.CreditCard, r.Debts}

	raw, err := json.Marshal(inputs)
	if err != nil {
		// Marshalling plain structs of numbers and strings cannot fail.
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
