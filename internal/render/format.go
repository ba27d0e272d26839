package render

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dshills/premiocnj/internal/indicator"
)

// DefaultLocale is the locale reports are written in.
const DefaultLocale = "pt-BR"

// Formatter prints numbers with the separators of a locale.
type Formatter struct {
	tag language.Tag
	p   *message.Printer
}

// NewFormatter returns a Formatter for a BCP 47 locale such as "pt-BR".
func NewFormatter(locale string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("render.NewFormatter: %q: %w", locale, err)
	}
	return Formatter{tag: tag, p: message.NewPrinter(tag)}, nil
}

// Locale returns the formatter's language tag.
func (f Formatter) Locale() string {
	return f.tag.String()
}

// Percent renders v with two decimals, e.g. "3,33%".
func (f Formatter) Percent(v float64) string {
	return f.p.Sprintf("%.2f%%", indicator.Round2(v))
}

// Utilization renders a summary utilization with no decimals.
func (f Formatter) Utilization(v float64) string {
	return f.p.Sprintf("%.0f%%", v)
}

// Count renders an integer count.
func (f Formatter) Count(n int) string {
	return f.p.Sprintf("%d", n)
}

// Target renders an indicator goal. A catalog label is used as is; otherwise
// the threshold is printed with at most two decimals, e.g. "≤ 2,5%".
func (f Formatter) Target(label string, threshold float64) string {
	if label != "" {
		return label
	}
	return "≤ " + f.p.Sprint(number.Decimal(threshold, number.MaxFractionDigits(2))) + "%"
}

// Points renders "obtained/possible".
func (f Formatter) Points(obtained, possible int) string {
	return fmt.Sprintf("%d/%d", obtained, possible)
}
