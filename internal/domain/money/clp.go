// Package money formatea montos en pesos chilenos.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var clpPrinter = message.NewPrinter(language.MustParse("es-CL"))

// FormatCLP formatea v como peso chileno sin decimales ("$" + miles con punto), redondeando al entero.
func FormatCLP(v decimal.Decimal) string {
	n := v.Round(0).IntPart()
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + "$" + clpPrinter.Sprint(number.Decimal(n, number.MaxFractionDigits(0)))
}
