package insight

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Bucket is a balance range that selects the tone of the insight message.
type Bucket string

const (
	BucketNeutral        Bucket = "NEUTRAL"
	BucketPositiveLow    Bucket = "POSITIVE_LOW"
	BucketPositiveMedium Bucket = "POSITIVE_MEDIUM"
	BucketPositiveHigh   Bucket = "POSITIVE_HIGH"
	BucketNegativeLow    Bucket = "NEGATIVE_LOW"
	BucketNegativeMedium Bucket = "NEGATIVE_MEDIUM"
	BucketNegativeHigh   Bucket = "NEGATIVE_HIGH"
)

// balanceMargin is the band around zero treated as "breaking even".
const balanceMargin = 10.0

func BucketFor(balance float64) Bucket {
	switch {
	case math.Abs(balance) <= balanceMargin:
		return BucketNeutral
	case balance > 0:
		switch {
		case balance <= 200:
			return BucketPositiveLow
		case balance <= 1000:
			return BucketPositiveMedium
		default:
			return BucketPositiveHigh
		}
	default:
		switch {
		case balance >= -200:
			return BucketNegativeLow
		case balance >= -1000:
			return BucketNegativeMedium
		default:
			return BucketNegativeHigh
		}
	}
}

// messages holds the canned texts per bucket. The %s placeholder receives the
// absolute balance formatted as currency.
var messages = map[Bucket][]string{
	BucketNeutral: {
		"Suas contas estão praticamente empatadas: a diferença entre o que entra e o que sai é de apenas %s.",
		"Você fecha o mês no zero a zero, com uma margem de %s. Qualquer imprevisto pode virar dívida.",
		"Receitas e despesas quase se anulam (%s de diferença). É hora de abrir espaço para uma reserva.",
	},
	BucketPositiveLow: {
		"Sobra pouco, mas sobra: %s por mês. Guardar esse valor todo mês já começa a construir sua reserva.",
		"Seu saldo positivo de %s é apertado. Um gasto inesperado pode levá-lo para o vermelho.",
		"Você termina o mês com %s de folga. Pequena, mas consistente, ela pode virar um fundo de emergência.",
	},
	BucketPositiveMedium: {
		"Você fecha o mês com %s de sobra. Com esse valor dá para montar uma reserva de emergência em poucos meses.",
		"Sobram %s por mês no seu orçamento. Considere destinar uma parte fixa para investimentos.",
		"Seu saldo mensal de %s mostra um orçamento saudável. O próximo passo é fazer esse dinheiro render.",
	},
	BucketPositiveHigh: {
		"Excelente: sobram %s todos os meses. Esse valor merece uma estratégia de investimento de verdade.",
		"Com %s de sobra mensal, você pode acelerar objetivos grandes, como quitar financiamentos ou investir a longo prazo.",
		"Seu orçamento gera %s de excedente por mês. Diversificar onde esse dinheiro fica faz diferença no longo prazo.",
	},
	BucketNegativeLow: {
		"Faltam %s para fechar o mês no azul. Um corte pequeno nas despesas variáveis já resolve.",
		"Seu orçamento fecha %s no vermelho. Revise as despesas por categoria para encontrar esse valor.",
		"O déficit mensal é de %s. É pouco, mas repetido todo mês vira uma bola de neve.",
	},
	BucketNegativeMedium: {
		"Suas despesas superam a renda em %s por mês. Priorize renegociar as parcelas mais caras.",
		"O buraco mensal é de %s. Sem um ajuste, ele será coberto por crédito caro.",
		"Faltam %s todo mês. Vale listar as despesas fixas e questionar cada uma delas.",
	},
	BucketNegativeHigh: {
		"Atenção: o déficit mensal chega a %s. Procure renegociar dívidas antes que os juros dominem o orçamento.",
		"Suas contas fecham %s no vermelho por mês. Esse é o momento de um corte estrutural, não de ajustes pequenos.",
		"Com %s de déficit mensal, renegociação e venda de ativos devem entrar na mesa. Um plano de emergência é urgente.",
	},
}

// closingParagraph is appended to every insight message.
const closingParagraph = "Lembre-se: este diagnóstico é um retrato do momento. Pequenas mudanças de hábito, repetidas todo mês, alteram o resultado mais do que qualquer fórmula."

func messagesFor(bucket Bucket) []string {
	return messages[bucket]
}

// formatCurrency renders an absolute amount in Brazilian format, e.g.
// "R$ 1.234,56".
func formatCurrency(amount float64) string {
	fixed := decimal.NewFromFloat(amount).Abs().StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)
	integer, cents := parts[0], parts[1]

	var groups []string
	for len(integer) > 3 {
		groups = append([]string{integer[len(integer)-3:]}, groups...)
		integer = integer[:len(integer)-3]
	}
	groups = append([]string{integer}, groups...)

	return "R$ " + strings.Join(groups, ".") + "," + cents
}
