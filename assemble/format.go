package assemble

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// formatter renders numeric report figures with locale-aware grouping.
type formatter struct {
	printer *message.Printer
}

func newFormatter(tag language.Tag) *formatter {
	return &formatter{printer: message.NewPrinter(tag)}
}

// Money formats a USD amount, rounded to whole dollars: "$1,234,567".
// Zero means the figure is unknown upstream and yields a placeholder.
func (f *formatter) Money(v float64) string {
	if v == 0 {
		return "[figure unavailable]"
	}
	return f.printer.Sprintf("$%v", number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
}

// Percent formats a percentage with at most one fractional digit: "12.4%".
func (f *formatter) Percent(v float64) string {
	return f.printer.Sprintf("%v%%", number.Decimal(v, number.MaxFractionDigits(1)))
}

// Count formats an integer with grouping: "12,500".
func (f *formatter) Count(v int) string {
	return f.printer.Sprintf("%v", number.Decimal(v))
}
