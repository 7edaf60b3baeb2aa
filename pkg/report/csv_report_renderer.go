package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type ReportRenderer interface {
	RenderReport(report Report) (string, error)
}

type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

func (t *CsvReportRendererImpl) RenderReport(report Report) (string, error) {
	record := report.Record
	totals := report.Totals

	data := make([][]string, 0, 16+len(record.Income)+len(record.FixedExpenses)+len(record.EstimatedExpenses)+len(record.Debts))
	data = append(data, []string{"Seção", "Item", "Valor"})
	data = append(data, itemRows("Renda", record.Income)...)
	data = append(data, itemRows("Despesas fixas", record.FixedExpenses)...)
	data = append(data, itemRows("Despesas variáveis", record.EstimatedExpenses)...)
	for _, debt := range record.Debts {
		data = append(data, []string{
			"Dívidas",
			debt.Name + " (" + strconv.Itoa(debt.RemainingInstallments) + "/" + strconv.Itoa(debt.TotalInstallments) + ")",
			moneyToString(debt.Value),
		})
	}
	data = append(data,
		[]string{"Cartão de crédito", "Cartões", strconv.Itoa(len(record.CreditCard.Cards))},
		[]string{"Cartão de crédito", "Parcelamentos", totals.CardInstallments.StringFixed(2)},
		[]string{"Totais", "Renda", totals.Income.StringFixed(2)},
		[]string{"Totais", "Despesas fixas", totals.FixedExpenses.StringFixed(2)},
		[]string{"Totais", "Despesas variáveis", totals.EstimatedExpenses.StringFixed(2)},
		[]string{"Totais", "Dívidas", totals.Debts.StringFixed(2)},
		[]string{"Totais", "Saldo", totals.Balance.StringFixed(2)},
	)

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func itemRows(section string, items []diagnostic.FinancialItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{section, item.Name, moneyToString(item.Value)})
	}
	return rows
}

func moneyToString(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}
