package email

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"gympoint/internal/shared/biztime"
)

// Formatter renders values the way they appear in mails for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

func NewFormatter(locale string) (*Formatter, error) {
	if locale == "" {
		locale = "pt-BR"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid mail locale %q: %w", locale, err)
	}
	return &Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}, nil
}

// BRL formats amount as Brazilian reais with two decimals and locale
// separators, e.g. "R$ 1.234,50" for pt-BR.
func (f *Formatter) BRL(amount float64) string {
	return "R$ " + f.printer.Sprint(number.Decimal(amount, number.Scale(2)))
}

// Name title-cases a person's name.
func (f *Formatter) Name(name string) string {
	// Casers keep state, so one is built per call.
	return cases.Title(f.tag).String(strings.TrimSpace(name))
}

// Date formats a time.Time or *time.Time as a display date in the business
// timezone. Nil and zero values render as an empty string.
func (f *Formatter) Date(value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return biztime.FormatDisplayDate(v)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return biztime.FormatDisplayDate(*v)
	default:
		return ""
	}
}

func (f *Formatter) Months(n int) string {
	if n == 1 {
		return "1 mês"
	}
	return fmt.Sprintf("%d meses", n)
}
