package hyperplane

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// renderPlaces is the decimal precision used for display only; the
// stored coefficients are never rounded.
const renderPlaces = 3

var one = decimal.NewFromInt(1)

// String renders the equation as "c1x_1 + c2x_2 ... = k":
//   - coefficients rounded to three decimal places, terms that round
//     to zero omitted,
//   - integral values shown without a decimal point,
//   - the leading term suppresses a redundant '+',
//   - coefficients of exactly ±1 shown without the numeral,
//   - an all-zero normal vector renders as "0 = k".
func (h Hyperplane) String() string {
	body := "0"
	if initial, err := h.normal.FirstNonzeroIndex(); err == nil {
		var terms []string
		for i, c := range h.normal.Coords() {
			r := c.Round(renderPlaces)
			if r.IsZero() {
				continue
			}
			terms = append(terms, writeCoefficient(r, i == initial)+fmt.Sprintf("x_%d", i+1))
		}
		body = strings.Join(terms, " ")
	}

	return body + " = " + formatDecimal(h.constant.Round(renderPlaces))
}

// writeCoefficient renders the sign and magnitude prefix of one term.
// The initial term keeps sign and numeral glued to the variable
// ("-x_1", "2x_1"); later terms get a spaced operator ("+ 2", "- ").
func writeCoefficient(c decimal.Decimal, initial bool) string {
	var sb strings.Builder
	if c.IsNegative() {
		sb.WriteString("-")
	}
	if c.IsPositive() && !initial {
		sb.WriteString("+")
	}
	if !initial {
		sb.WriteString(" ")
	}
	if abs := c.Abs(); !abs.Equal(one) {
		sb.WriteString(formatDecimal(abs))
	}

	return sb.String()
}

// formatDecimal prints d without a decimal point when integral and
// without trailing zeros otherwise.
func formatDecimal(d decimal.Decimal) string {
	if d.IsInteger() {
		return d.Truncate(0).String()
	}
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	return s
}
