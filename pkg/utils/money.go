package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrencyPrefix = "R"

// FormatMoney formata um valor monetário com prefixo, duas casas decimais
// e separador de milhar (ex: "R 1,800.00").
func FormatMoney(prefix string, amount decimal.Decimal) string {
	if prefix == "" {
		prefix = DefaultCurrencyPrefix
	}

	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return prefix + " " + sign + groupThousands(intPart) + "." + fracPart
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}

	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// RoundToCents arredonda para duas casas (meio para longe do zero) e devolve float64
// para serialização em JSON.
func RoundToCents(amount decimal.Decimal) float64 {
	return amount.Round(2).InexactFloat64()
}
